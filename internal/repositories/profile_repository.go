package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/utils"
	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
	UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.Profile, error)
	GetPrivacy(ctx context.Context, profileID uuid.UUID) (*models.PrivacySettings, error)
	SavePrivacy(ctx context.Context, settings *models.PrivacySettings) error
}

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepo(db *sql.DB) ProfileRepository {
	return &profileRepository{DB: db}
}

func (r *profileRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, full_name, avatar_url, role, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	profile := &models.Profile{}

	var fullName, avatarURL sql.NullString

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&profile.ID, &fullName, &avatarURL, &profile.Role, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	if fullName.Valid {
		profile.FullName = &fullName.String
	}

	if avatarURL.Valid {
		profile.AvatarURL = &avatarURL.String
	}

	return profile, nil
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO profiles (id, full_name, avatar_url, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		profile.ID, profile.FullName, profile.AvatarURL, profile.Role,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.Profile, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE profiles
		SET full_name = COALESCE($1, full_name),
		    avatar_url = COALESCE($2, avatar_url),
		    updated_at = NOW()
		WHERE id = $3
		RETURNING id, full_name, avatar_url, role, created_at, updated_at
	`

	profile := &models.Profile{}

	var fullName, avatarURL sql.NullString

	err := r.DB.QueryRowContext(dbCtx, query, req.FullName, req.AvatarURL, id).Scan(
		&profile.ID, &fullName, &avatarURL, &profile.Role, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if fullName.Valid {
		profile.FullName = &fullName.String
	}

	if avatarURL.Valid {
		profile.AvatarURL = &avatarURL.String
	}

	return profile, nil
}

func (r *profileRepository) GetPrivacy(ctx context.Context, profileID uuid.UUID) (*models.PrivacySettings, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT show_email, show_phone, show_location, updated_at
		FROM profile_privacy
		WHERE profile_id = $1
	`

	settings := &models.PrivacySettings{ProfileID: profileID}

	err := r.DB.QueryRowContext(dbCtx, query, profileID).Scan(
		&settings.ShowEmail, &settings.ShowPhone, &settings.ShowLocation, &settings.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return settings, nil
}

func (r *profileRepository) SavePrivacy(ctx context.Context, settings *models.PrivacySettings) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO profile_privacy (profile_id, show_email, show_phone, show_location, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (profile_id)
		DO UPDATE SET show_email = $2, show_phone = $3, show_location = $4, updated_at = NOW()
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		settings.ProfileID, settings.ShowEmail, settings.ShowPhone, settings.ShowLocation,
	).Scan(&settings.UpdatedAt)
}
