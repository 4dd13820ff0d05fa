package handlers

import (
	"net/http"

	"github.com/am-nutrition/storefront/internal/api/middleware"
	"github.com/am-nutrition/storefront/internal/models"
	"github.com/am-nutrition/storefront/internal/orders"
	"github.com/am-nutrition/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	service   *orders.Service
	validator *validator.Validate
}

func NewOrderHandler(service *orders.Service) *OrderHandler {
	return &OrderHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateOrderRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		order, err := h.service.PlaceOrder(r.Context(), &req)
		if err != nil {
			logger.Error("Order submission failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Order submitted", "orderNumber", order.OrderNumber)
		response.Success(w, http.StatusCreated, order)
	}
}
