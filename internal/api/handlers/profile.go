package handlers

import (
	"log/slog"
	"net/http"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/api/middleware"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/errors"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	service "github.com/AlphaC137/EG-Business-Final-Project/internal/services"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/utils"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	validator      *validator.Validate
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validator:      validator.New(),
	}
}

// GetProfile also runs the bootstrap: the first authenticated read creates
// the profiles row from the token metadata if it does not exist yet.
func (h *ProfileHandler) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized profile access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		h.profileService.EnsureProfileExists(r.Context(), claims)

		profile, err := h.profileService.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to get profile", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, profile)
	}
}

func (h *ProfileHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized profile update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.UpdateProfileRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid profile update input")
			return
		}

		profile, err := h.profileService.UpdateProfile(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update profile", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Profile updated")
		response.Success(w, http.StatusOK, profile)
	}
}

func (h *ProfileHandler) GetPrivacy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized privacy settings access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		settings, err := h.profileService.GetPrivacy(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to get privacy settings", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, settings)
	}
}

func (h *ProfileHandler) UpdatePrivacy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized privacy settings update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.UpdatePrivacyRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid privacy settings input", slog.String("error", err.Error()))
			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		settings, err := h.profileService.UpdatePrivacy(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update privacy settings", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Privacy settings updated")
		response.Success(w, http.StatusOK, settings)
	}
}
