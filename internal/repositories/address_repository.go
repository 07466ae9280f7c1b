package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/utils"
	"github.com/google/uuid"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO addresses (id, profile_id, label, full_name, phone, street, apartment, city, state, zip, country, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		address.ID, address.ProfileID, address.Label, address.FullName, address.Phone,
		address.Street, address.Apartment, address.City, address.State, address.Zip,
		address.Country, address.IsDefault,
	).Scan(&address.CreatedAt)
}

// DeleteAddress is the compensating action for a checkout attempt whose order
// insert failed after the address insert succeeded.
func (r *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM addresses WHERE id = $1`

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
