package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/am-nutrition/storefront/internal/api/handlers"
	appErrors "github.com/am-nutrition/storefront/internal/errors"
	"github.com/am-nutrition/storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addItemRequest(t *testing.T, productID string) *http.Request {
	t.Helper()

	body, err := json.Marshal(map[string]string{"product_id": productID})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/cart/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return &resp
}

func TestGetCart(t *testing.T) {
	// Arrange
	engine := newTestEngine(t)
	cartHandler := handlers.NewCartHandler(engine)
	require.NoError(t, engine.AddItem(context.Background(), "p1"))

	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	recorder := httptest.NewRecorder()

	// Act
	cartHandler.GetCart()(recorder, req)

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeResponse(t, recorder)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestAddItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		engine := newTestEngine(t)
		cartHandler := handlers.NewCartHandler(engine)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, addItemRequest(t, "p1"))

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		require.Len(t, engine.Lines(), 1)
		assert.Equal(t, 1, engine.Lines()[0].Quantity)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		// Arrange
		engine := newTestEngine(t)
		cartHandler := handlers.NewCartHandler(engine)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, addItemRequest(t, "missing"))

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("Failure - Stock Limit Reached", func(t *testing.T) {
		// Arrange
		engine := newTestEngine(t)
		cartHandler := handlers.NewCartHandler(engine)
		require.NoError(t, engine.AddItem(context.Background(), "p2"))
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, addItemRequest(t, "p2"))

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeStockUnavailable, resp.Error.Code)
		assert.Equal(t, "Maximum available quantity reached", resp.Error.Message)
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		// Arrange
		engine := newTestEngine(t)
		cartHandler := handlers.NewCartHandler(engine)
		req := httptest.NewRequest("POST", "/api/v1/cart/items", nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error.Message, "empty")
	})

	t.Run("Failure - Missing Product ID", func(t *testing.T) {
		// Arrange
		engine := newTestEngine(t)
		cartHandler := handlers.NewCartHandler(engine)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, addItemRequest(t, ""))

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
	})
}

func TestChangeQuantity(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		engine := newTestEngine(t)
		cartHandler := handlers.NewCartHandler(engine)
		require.NoError(t, engine.AddItem(context.Background(), "p1"))

		body, err := json.Marshal(map[string]any{"product_id": "p1", "delta": 2})
		require.NoError(t, err)
		req := httptest.NewRequest("PUT", "/api/v1/cart/items", bytes.NewBuffer(body))
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.ChangeQuantity()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 3, engine.Lines()[0].Quantity)
	})

	t.Run("Clamp Reported As Conflict", func(t *testing.T) {
		// Arrange
		engine := newTestEngine(t)
		cartHandler := handlers.NewCartHandler(engine)
		require.NoError(t, engine.AddItem(context.Background(), "p2"))

		body, err := json.Marshal(map[string]any{"product_id": "p2", "delta": 5})
		require.NoError(t, err)
		req := httptest.NewRequest("PUT", "/api/v1/cart/items", bytes.NewBuffer(body))
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.ChangeQuantity()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)

		// The clamped quantity survives the error
		require.Len(t, engine.Lines(), 1)
		assert.Equal(t, 1, engine.Lines()[0].Quantity)
	})
}

func TestRemoveItem(t *testing.T) {
	// Arrange
	engine := newTestEngine(t)
	cartHandler := handlers.NewCartHandler(engine)
	require.NoError(t, engine.AddItem(context.Background(), "p1"))

	req := httptest.NewRequest("DELETE", "/api/v1/cart/items/p1", nil)
	req.SetPathValue("id", "p1")
	recorder := httptest.NewRecorder()

	// Act
	cartHandler.RemoveItem()(recorder, req)

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, engine.Lines())
}

func TestClearCart(t *testing.T) {
	// Arrange
	engine := newTestEngine(t)
	cartHandler := handlers.NewCartHandler(engine)
	require.NoError(t, engine.AddItem(context.Background(), "p1"))
	require.NoError(t, engine.AddItem(context.Background(), "p2"))

	req := httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	recorder := httptest.NewRecorder()

	// Act
	cartHandler.ClearCart()(recorder, req)

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 0, engine.Count())
}
