package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductImage struct {
	URL      string `json:"url"`
	Position *int   `json:"position,omitempty"`
}

type ProductVendor struct {
	FarmName *string `json:"farm_name,omitempty"`
	Location *string `json:"location,omitempty"`
}

// ProductRow is the raw store row with its nested vendor/category/image
// relations, before any display defaulting is applied. Nullable columns stay
// pointers so the projection can tell absent from zero.
type ProductRow struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Price     *float64       `json:"price,omitempty"`
	Stock     *int           `json:"stock,omitempty"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	IsActive  bool           `json:"is_active"`
	Vendor    *ProductVendor `json:"vendor,omitempty"`
	Images    []ProductImage `json:"images,omitempty"`
	Category  *string        `json:"category,omitempty"`
}

// Product is the display-ready projection served to listing screens.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Image       string    `json:"image"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Farm        string    `json:"farm"`
	Location    string    `json:"location"`
	HarvestedAt string    `json:"harvested_at"`
	Organic     bool      `json:"organic"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	Season      string    `json:"season"`
}
