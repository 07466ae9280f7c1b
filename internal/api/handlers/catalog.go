package handlers

import (
	"log/slog"
	"net/http"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/api/middleware"
	service "github.com/AlphaC137/EG-Business-Final-Project/internal/services"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/utils/response"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts serves the marketplace listing: the bounded active-product
// window in display-ready form. Public, no auth gate.
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.catalogService.ListProducts(r.Context())
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Products listed", slog.Int("count", len(products)))
		response.Success(w, http.StatusOK, products)
	}
}
