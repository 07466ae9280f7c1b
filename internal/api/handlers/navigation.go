package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/api/middleware"
	apperrors "github.com/AlphaC137/EG-Business-Final-Project/internal/errors"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/navigation"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/utils/response"
)

type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Resolve answers the shell's routing question for one logical path. It sits
// behind the identify middleware, not the auth gate: anonymous callers get a
// resolution too, just with gated destinations replaced by their prompt.
func (h *NavigationHandler) Resolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		path := r.URL.Query().Get("path")
		if path == "" {
			response.Error(w, apperrors.BadRequestError("Query parameter 'path' is required"))
			return
		}

		_, authenticated := middleware.ClaimsFromContext(r.Context())

		resolution, err := navigation.Resolve(path, authenticated)
		if err != nil {
			if errors.Is(err, navigation.ErrUnknownPath) {
				response.Error(w, apperrors.NotFoundError("Unknown path").WithDetail(path))
				return
			}
			logger.Error("Failed to resolve path", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resolution)
	}
}
