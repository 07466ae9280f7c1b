package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"

	// OrderStatusFailed marks an order whose line items could not be written.
	// The row is kept (not deleted) so the partial state is visible.
	OrderStatusFailed OrderStatus = "failed"
)

// Address is a persisted shipping address row. Rows are immutable once
// written; a new checkout attempt always inserts a new one.
type Address struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Label     string    `json:"label"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Street    string    `json:"street"`
	Apartment string    `json:"apartment,omitempty"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Country   string    `json:"country"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

// One row per distinct cart line. TotalPrice is computed at write time and
// stored, not re-derived later.
type OrderItem struct {
	OrderID    uuid.UUID `json:"order_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	TotalPrice float64   `json:"total_price"`
}

type Order struct {
	ID                uuid.UUID   `json:"id"`
	ProfileID         uuid.UUID   `json:"profile_id"`
	Status            OrderStatus `json:"status"`
	Currency          string      `json:"currency"`
	ShippingAddressID *uuid.UUID  `json:"shipping_address_id,omitempty"`
	Items             []OrderItem `json:"items"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Total sums the stored line totals.
func (o *Order) Total() float64 {

	var total float64

	for _, item := range o.Items {
		total += item.TotalPrice
	}

	return total
}

// PlaceOrderRequest is the checkout form body: the shipping address for this
// attempt. The items come from the caller's server-side cart, not the body.
type PlaceOrderRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	Phone     string `json:"phone"     validate:"required"`
	Street    string `json:"street"    validate:"required"`
	Apartment string `json:"apartment"`
	City      string `json:"city"      validate:"required"`
	State     string `json:"state"     validate:"required"`
	Zip       string `json:"zip"       validate:"required"`
	Country   string `json:"country"`
}

// SummaryItem mirrors the cart line shape the confirmation screen renders.
type SummaryItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	Farm     string    `json:"farm"`
}

// OrderSummary is the detached snapshot handed from checkout to the
// confirmation view, taken before the cart is cleared.
type OrderSummary struct {
	Items []SummaryItem `json:"items"`
	Total float64       `json:"total"`
}

type PlaceOrderResponse struct {
	OrderID uuid.UUID    `json:"order_id"`
	Summary OrderSummary `json:"summary"`
}
