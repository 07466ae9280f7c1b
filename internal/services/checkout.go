package service

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/config"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/errors"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	repository "github.com/AlphaC137/EG-Business-Final-Project/internal/repositories"
	"github.com/google/uuid"
)

// CheckoutService turns a completed checkout form plus the profile's cart
// into durable store rows: one address, one order, one batch of line items,
// written in that order. The store gives no multi-row transaction to the
// client, so failures after the first write are compensated instead of
// rolled back: an order insert failure deletes the orphaned address, an
// items insert failure marks the order "failed".
type CheckoutService struct {
	carts       *CartService
	addressRepo repository.AddressRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	currency    string
	country     string

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewCheckoutService(carts *CartService, addressRepo repository.AddressRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cfg *config.Checkout) *CheckoutService {
	return &CheckoutService{
		carts:       carts,
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		currency:    cfg.Currency,
		country:     cfg.DefaultCountry,
		inFlight:    make(map[uuid.UUID]struct{}),
	}
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, profileID uuid.UUID, req *models.PlaceOrderRequest) (*models.PlaceOrderResponse, error) {

	if profileID == uuid.Nil {
		return nil, errors.UnauthorizedError("Authentication required")
	}

	// one attempt per profile at a time; a second submission while the first
	// is writing would create a duplicate order
	if !s.begin(profileID) {
		return nil, errors.TooManyRequestsError("A checkout is already in progress")
	}
	defer s.end(profileID)

	cart, err := s.carts.Snapshot(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, errors.ValidationError("Cannot place an order with an empty cart")
	}

	for _, item := range cart.Items {
		if item.Quantity < 1 {
			return nil, errors.AddValidationError("quantity", "must be a positive integer")
		}
		if item.UnitPrice < 0 || math.IsNaN(item.UnitPrice) || math.IsInf(item.UnitPrice, 0) {
			return nil, errors.AddValidationError("unit_price", "must be a non-negative finite number")
		}
	}

	// Step 1: persist the shipping address. Abort here on failure, before any
	// order row exists.
	address := &models.Address{
		ID:        uuid.New(),
		ProfileID: profileID,
		Label:     "Shipping",
		FullName:  req.FullName,
		Phone:     req.Phone,
		Street:    req.Street,
		Apartment: req.Apartment,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
		IsDefault: false,
	}

	if address.Country == "" {
		address.Country = s.country
	}

	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.DatabaseError("Failed to place order").WithError(err)
	}

	// Step 2: persist the order row referencing the address.
	order := &models.Order{
		ID:                uuid.New(),
		ProfileID:         profileID,
		Status:            models.OrderStatusPending,
		Currency:          s.currency,
		ShippingAddressID: &address.ID,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {

		if delErr := s.addressRepo.DeleteAddress(ctx, address.ID); delErr != nil {
			slog.Warn("Failed to delete orphaned checkout address",
				slog.String("addressId", address.ID.String()),
				slog.String("error", delErr.Error()))
		}

		return nil, errors.DatabaseError("Failed to place order").WithError(err)
	}

	// Step 3: persist one line item per cart entry. Unit prices are re-read
	// from the catalog at write time; the cart's cached price is only used
	// for products that can no longer be read.
	items := make([]models.OrderItem, 0, len(cart.Items))

	for _, cartItem := range cart.Items {

		unitPrice := cartItem.UnitPrice

		if s.productRepo != nil {
			if current, err := s.productRepo.GetUnitPrice(ctx, cartItem.ProductID); err == nil {
				unitPrice = current
			}
		}

		items = append(items, models.OrderItem{
			OrderID:    order.ID,
			ProductID:  cartItem.ProductID,
			Quantity:   cartItem.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: float64(cartItem.Quantity) * unitPrice,
		})
	}

	if err := s.orderRepo.InsertOrderItems(ctx, items); err != nil {

		if markErr := s.orderRepo.UpdateOrderStatus(ctx, order.ID, models.OrderStatusFailed); markErr != nil {
			slog.Warn("Failed to mark incomplete order as failed",
				slog.String("orderId", order.ID.String()),
				slog.String("error", markErr.Error()))
		}

		return nil, errors.DatabaseError("Failed to place order").WithError(err)
	}

	order.Items = items

	// Snapshot the summary before clearing so the confirmation view can
	// render order contents after the cart is gone. Built from the written
	// line items so re-priced amounts match the persisted order.
	summary := summarize(cart, items)

	if err := s.carts.Clear(ctx, profileID); err != nil {
		slog.Warn("Order placed but cart could not be cleared",
			slog.String("profileId", profileID.String()),
			slog.String("error", err.Error()))
	}

	return &models.PlaceOrderResponse{
		OrderID: order.ID,
		Summary: summary,
	}, nil
}

func (s *CheckoutService) begin(profileID uuid.UUID) bool {

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[profileID]; busy {
		return false
	}

	s.inFlight[profileID] = struct{}{}

	return true
}

func (s *CheckoutService) end(profileID uuid.UUID) {

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, profileID)
}

func summarize(cart *models.Cart, items []models.OrderItem) models.OrderSummary {

	summary := models.OrderSummary{
		Items: make([]models.SummaryItem, 0, len(items)),
	}

	for _, line := range items {
		cartItem := cart.Items[line.ProductID.String()]

		summary.Items = append(summary.Items, models.SummaryItem{
			ID:       line.ProductID,
			Name:     cartItem.Name,
			Image:    cartItem.Image,
			Price:    line.UnitPrice,
			Quantity: line.Quantity,
			Farm:     cartItem.Farm,
		})

		summary.Total += line.TotalPrice
	}

	return summary
}
