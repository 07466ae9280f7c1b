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

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

// PlaceOrder runs one checkout attempt: the body carries the shipping
// address form, the items come from the caller's server-side cart. The
// response carries the new order id plus the detached summary snapshot the
// confirmation screen renders.
func (h *CheckoutHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.PlaceOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		result, err := h.checkoutService.PlaceOrder(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed successfully", slog.String("orderId", result.OrderID.String()))
		response.Success(w, http.StatusCreated, result)
	}
}
