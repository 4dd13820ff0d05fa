package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/am-nutrition/storefront/internal/models"
	"github.com/am-nutrition/storefront/internal/utils"
	"github.com/google/uuid"
)

// OrderRepository writes finalized orders to the remote store and returns the
// generated document id.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) (string, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(order.Lines)
	if err != nil {
		return "", fmt.Errorf("failed to marshal order lines: %w", err)
	}

	query := `
		INSERT INTO orders (id, order_number, status, order_type, first_name, last_name,
			phone1, phone2, wilaya, commune, items, cart_total, shipping_fee, grand_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	var id string

	err = r.DB.QueryRowContext(dbCtx, query,
		uuid.NewString(), order.OrderNumber, order.Status, order.OrderType,
		order.FirstName, order.LastName, order.Phone1, nullIfEmpty(order.Phone2),
		order.Wilaya, order.Commune, itemsJSON,
		order.CartTotal, order.ShippingFee, order.GrandTotal, order.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting order: %w", err)
	}

	return id, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
