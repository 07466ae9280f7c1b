package service

import (
	"context"
	"database/sql"
	goerrors "errors"
	"log/slog"
	"time"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/errors"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	repository "github.com/AlphaC137/EG-Business-Final-Project/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ProfileService struct {
	repo      repository.ProfileRepository
	sanitizer *bluemonday.Policy
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// EnsureProfileExists makes sure a profiles row exists for the signed-in
// user, seeding it from the auth provider's token metadata. Failures are
// logged and swallowed: this is background reconciliation, never surfaced.
func (s *ProfileService) EnsureProfileExists(ctx context.Context, claims *models.Claims) {

	_, err := s.repo.GetProfile(ctx, claims.UserID)
	if err == nil {
		return
	}

	if !goerrors.Is(err, sql.ErrNoRows) {
		slog.Error("Profile bootstrap lookup failed",
			slog.String("profileId", claims.UserID.String()),
			slog.String("error", err.Error()))
		return
	}

	fullName := s.sanitizer.Sanitize(claims.FullName)
	if fullName == "" {
		fullName = claims.Email
	}

	profile := &models.Profile{
		ID:   claims.UserID,
		Role: "user",
	}

	if fullName != "" {
		profile.FullName = &fullName
	}

	if claims.AvatarURL != "" {
		avatarURL := claims.AvatarURL
		profile.AvatarURL = &avatarURL
	}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		slog.Error("Profile bootstrap insert failed",
			slog.String("profileId", claims.UserID.String()),
			slog.String("error", err.Error()))
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {

	profile, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Profile not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch profile").WithError(err)
	}

	return profile, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.Profile, error) {

	if req.FullName != nil {
		clean := s.sanitizer.Sanitize(*req.FullName)
		req.FullName = &clean
	}

	profile, err := s.repo.UpdateProfile(ctx, id, req)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Profile not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to update profile").WithError(err)
	}

	return profile, nil
}

// GetPrivacy returns the stored toggles, or the all-off defaults when the
// profile has never saved any.
func (s *ProfileService) GetPrivacy(ctx context.Context, profileID uuid.UUID) (*models.PrivacySettings, error) {

	settings, err := s.repo.GetPrivacy(ctx, profileID)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return &models.PrivacySettings{ProfileID: profileID, UpdatedAt: time.Now()}, nil
		}
		return nil, errors.DatabaseError("Failed to fetch privacy settings").WithError(err)
	}

	return settings, nil
}

func (s *ProfileService) UpdatePrivacy(ctx context.Context, profileID uuid.UUID, req *models.UpdatePrivacyRequest) (*models.PrivacySettings, error) {

	settings := &models.PrivacySettings{
		ProfileID:    profileID,
		ShowEmail:    req.ShowEmail,
		ShowPhone:    req.ShowPhone,
		ShowLocation: req.ShowLocation,
	}

	if err := s.repo.SavePrivacy(ctx, settings); err != nil {
		return nil, errors.DatabaseError("Failed to update privacy settings").WithError(err)
	}

	return settings, nil
}
