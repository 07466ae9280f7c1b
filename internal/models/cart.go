package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one line of a session cart. Display fields (name, image, farm)
// are cached from the catalog at add time so the cart and the confirmation
// summary can render without re-reading the store.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Farm      string    `json:"farm"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

func (i CartItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Cart is owned by exactly one profile. Items are keyed by product id so
// adding an existing product merges quantities instead of duplicating lines.
type Cart struct {
	ProfileID uuid.UUID           `json:"profile_id"`
	Items     map[string]CartItem `json:"items"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewCart(profileID uuid.UUID) *Cart {
	return &Cart{
		ProfileID: profileID,
		Items:     make(map[string]CartItem),
		UpdatedAt: time.Now(),
	}
}

// Total is recomputed from the surviving entries on every call, never cached.
func (c *Cart) Total() float64 {

	var total float64

	for _, item := range c.Items {
		total += item.LineTotal()
	}

	return total
}

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Name      string    `json:"name"       validate:"required"`
	Image     string    `json:"image"`
	Farm      string    `json:"farm"`
	UnitPrice float64   `json:"unit_price" validate:"gte=0"`
	Quantity  int       `json:"quantity"   validate:"required,min=1"`
}

// Quantity is clamped to a minimum of 1 here; removal goes through the
// dedicated remove operation, never through a zero quantity.
type UpdateQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"   validate:"required,min=1"`
}

// CartView is what the API returns: the cart plus its derived total.
type CartView struct {
	Items map[string]CartItem `json:"items"`
	Total float64             `json:"total"`
}
