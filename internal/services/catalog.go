package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/errors"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	repository "github.com/AlphaC137/EG-Business-Final-Project/internal/repositories"
)

// Defaults applied when a relation or column is absent on the raw row.
const (
	defaultFarm     = "Farm"
	defaultLocation = "Unknown"
	defaultSeason   = "All Season"
)

type CatalogService struct {
	repo  repository.ProductRepository
	limit int
}

func NewCatalogService(repo repository.ProductRepository, limit int) *CatalogService {
	return &CatalogService{repo: repo, limit: limit}
}

// ListProducts reads the bounded active-product window and projects each raw
// row into its display-ready form.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {

	rows, err := s.repo.ListActive(ctx, s.limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	now := time.Now()

	products := make([]models.Product, 0, len(rows))

	for _, row := range rows {
		products = append(products, Project(row, now))
	}

	return products, nil
}

// Project applies the display defaulting rules to one raw store row.
func Project(row models.ProductRow, now time.Time) models.Product {

	product := models.Product{
		ID:          row.ID,
		Image:       DisplayImage(row.Images),
		Name:        row.Name,
		Farm:        defaultFarm,
		Location:    defaultLocation,
		HarvestedAt: RecencyLabel(row.CreatedAt, now),
		Season:      defaultSeason,
	}

	if row.Price != nil {
		product.Price = *row.Price
	}

	if row.Stock != nil {
		product.Quantity = *row.Stock
	}

	if row.Vendor != nil {
		if row.Vendor.FarmName != nil {
			product.Farm = *row.Vendor.FarmName
		}
		if row.Vendor.Location != nil {
			product.Location = *row.Vendor.Location
		}
	}

	if row.Category != nil {
		product.Category = *row.Category
	}

	return product
}

// DisplayImage picks the first image by ascending position, treating a
// missing position as 0. Falls back to any image, then to the empty string.
func DisplayImage(images []models.ProductImage) string {

	if len(images) == 0 {
		return ""
	}

	sorted := make([]models.ProductImage, len(images))
	copy(sorted, images)

	sort.SliceStable(sorted, func(i, j int) bool {
		return position(sorted[i]) < position(sorted[j])
	})

	if sorted[0].URL != "" {
		return sorted[0].URL
	}

	return images[0].URL
}

func position(image models.ProductImage) int {
	if image.Position == nil {
		return 0
	}
	return *image.Position
}

// RecencyLabel turns the creation timestamp into the human-readable label
// the listing shows: "Today", "Yesterday", or "N days ago". A row without a
// timestamp reads as "Today".
func RecencyLabel(createdAt *time.Time, now time.Time) string {

	if createdAt == nil {
		return "Today"
	}

	days := int(now.Sub(*createdAt).Hours() / 24)

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
