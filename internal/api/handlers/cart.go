package handlers

import (
	"net/http"

	"github.com/am-nutrition/storefront/internal/cart"
	"github.com/am-nutrition/storefront/internal/models"
	"github.com/am-nutrition/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	engine    *cart.Engine
	validator *validator.Validate
}

func NewCartHandler(engine *cart.Engine) *CartHandler {
	return &CartHandler{
		engine:    engine,
		validator: validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.engine.State())
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddItemRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		if err := h.engine.AddItem(r.Context(), req.ProductID); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, h.engine.State())
	}
}

func (h *CartHandler) ChangeQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.ChangeQuantityRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		if err := h.engine.ChangeQuantity(r.Context(), req.ProductID, req.Delta); err != nil {
			// A clamped quantity was still persisted; the error only
			// carries the "limit reached" notification.
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, h.engine.State())
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.engine.RemoveItem(r.Context(), r.PathValue("id")); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, h.engine.State())
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.engine.Clear(r.Context()); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, h.engine.State())
	}
}
