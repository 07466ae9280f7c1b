package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Profile struct {
	ID        uuid.UUID `json:"id"`
	FullName  *string   `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty"  validate:"omitempty,max=120"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// PrivacySettings are the per-profile visibility toggles from the privacy
// settings screen.
type PrivacySettings struct {
	ProfileID    uuid.UUID `json:"profile_id"`
	ShowEmail    bool      `json:"show_email"`
	ShowPhone    bool      `json:"show_phone"`
	ShowLocation bool      `json:"show_location"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// The settings modal saves all toggles at once, so the update carries the
// full set rather than a patch.
type UpdatePrivacyRequest struct {
	ShowEmail    bool `json:"show_email"`
	ShowPhone    bool `json:"show_phone"`
	ShowLocation bool `json:"show_location"`
}

// Claims are the verified contents of the external auth provider's bearer
// token. FullName and AvatarURL come from the provider's user metadata and
// seed the profile bootstrap.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	jwt.RegisteredClaims
}
