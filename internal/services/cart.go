package service

import (
	"context"
	"time"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/cache"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/errors"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	"github.com/google/uuid"
)

type CartService struct {
	store cache.CartStore
}

func NewCartService(store cache.CartStore) *CartService {
	return &CartService{store: store}
}

func (s *CartService) GetCart(ctx context.Context, profileID uuid.UUID) (*models.CartView, error) {

	cart, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return view(cart), nil
}

// AddItem merges by product id: adding a product already in the cart
// increments its quantity and refreshes the cached display fields.
func (s *CartService) AddItem(ctx context.Context, profileID uuid.UUID, req *models.AddItemRequest) (*models.CartView, error) {

	cart, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	key := req.ProductID.String()

	item := models.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Image:     req.Image,
		Farm:      req.Farm,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
	}

	if existing, ok := cart.Items[key]; ok {
		item.Quantity += existing.Quantity
	}

	cart.Items[key] = item
	cart.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, errors.InternalError("Failed to update cart").WithError(err)
	}

	return view(cart), nil
}

// RemoveItem deletes the entry entirely; a removed product never lingers with
// quantity zero.
func (s *CartService) RemoveItem(ctx context.Context, profileID uuid.UUID, productID uuid.UUID) (*models.CartView, error) {

	cart, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	delete(cart.Items, productID.String())
	cart.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, errors.InternalError("Failed to update cart").WithError(err)
	}

	return view(cart), nil
}

// UpdateQuantity sets the quantity of an existing entry. It does not
// resurrect removed entries and does not clamp; callers send quantity >= 1.
func (s *CartService) UpdateQuantity(ctx context.Context, profileID uuid.UUID, req *models.UpdateQuantityRequest) (*models.CartView, error) {

	cart, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	key := req.ProductID.String()

	item, exists := cart.Items[key]
	if !exists {
		return nil, errors.BadRequestError("Item not found in the cart")
	}

	item.Quantity = req.Quantity
	cart.Items[key] = item
	cart.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, errors.InternalError("Failed to update cart").WithError(err)
	}

	return view(cart), nil
}

func (s *CartService) Clear(ctx context.Context, profileID uuid.UUID) error {

	if err := s.store.Delete(ctx, profileID); err != nil {
		return errors.InternalError("Failed to clear cart").WithError(err)
	}

	return nil
}

// Snapshot returns the raw cart for the checkout flow.
func (s *CartService) Snapshot(ctx context.Context, profileID uuid.UUID) (*models.Cart, error) {
	return s.load(ctx, profileID)
}

func (s *CartService) load(ctx context.Context, profileID uuid.UUID) (*models.Cart, error) {

	cart, err := s.store.Get(ctx, profileID)
	if err != nil {
		return nil, errors.InternalError("Failed to retrieve cart").WithError(err)
	}

	if cart == nil {
		cart = models.NewCart(profileID)
	}

	return cart, nil
}

func view(cart *models.Cart) *models.CartView {
	return &models.CartView{
		Items: cart.Items,
		Total: cart.Total(),
	}
}
