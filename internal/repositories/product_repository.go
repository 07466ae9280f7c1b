package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductRepository interface {
	ListActive(ctx context.Context, limit int) ([]models.ProductRow, error)
	GetUnitPrice(ctx context.Context, id uuid.UUID) (float64, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

// ListActive reads the bounded catalog window: active products with their
// vendor and category relations, then the image rows for that window.
func (r *productRepository) ListActive(ctx context.Context, limit int) ([]models.ProductRow, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.name, p.price, p.stock, p.created_at, p.is_active,
		       v.farm_name, v.location, c.name
		FROM products p
		LEFT JOIN vendors v ON p.vendor_id = v.id
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.is_active = TRUE
		ORDER BY p.created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	var products []models.ProductRow

	for rows.Next() {

		var (
			row       models.ProductRow
			price     sql.NullFloat64
			stock     sql.NullInt64
			createdAt sql.NullTime
			farmName  sql.NullString
			location  sql.NullString
			category  sql.NullString
		)

		err := rows.Scan(&row.ID, &row.Name, &price, &stock, &createdAt, &row.IsActive,
			&farmName, &location, &category)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		if price.Valid {
			row.Price = &price.Float64
		}

		if stock.Valid {
			s := int(stock.Int64)
			row.Stock = &s
		}

		if createdAt.Valid {
			row.CreatedAt = &createdAt.Time
		}

		if farmName.Valid || location.Valid {
			vendor := &models.ProductVendor{}
			if farmName.Valid {
				vendor.FarmName = &farmName.String
			}
			if location.Valid {
				vendor.Location = &location.String
			}
			row.Vendor = vendor
		}

		if category.Valid {
			row.Category = &category.String
		}

		products = append(products, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachImages(dbCtx, products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) attachImages(ctx context.Context, products []models.ProductRow) error {

	if len(products) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(products))
	index := make(map[uuid.UUID]int, len(products))

	for i, p := range products {
		ids[i] = p.ID
		index[p.ID] = i
	}

	query := `
		SELECT product_id, url, position
		FROM product_images
		WHERE product_id = ANY($1)
	`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get product images: %w", err)
	}

	defer rows.Close()

	for rows.Next() {

		var (
			productID uuid.UUID
			image     models.ProductImage
			position  sql.NullInt64
		)

		if err := rows.Scan(&productID, &image.URL, &position); err != nil {
			return fmt.Errorf("failed to scan product image: %w", err)
		}

		if position.Valid {
			p := int(position.Int64)
			image.Position = &p
		}

		if i, ok := index[productID]; ok {
			products[i].Images = append(products[i].Images, image)
		}
	}

	return rows.Err()
}

// GetUnitPrice is the write-time re-pricing read used by checkout.
func (r *productRepository) GetUnitPrice(ctx context.Context, id uuid.UUID) (float64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT price FROM products WHERE id = $1`

	var price sql.NullFloat64

	if err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&price); err != nil {
		return 0, err
	}

	if !price.Valid {
		return 0, nil
	}

	return price.Float64, nil
}
