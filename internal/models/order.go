package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderLine is a cart line frozen into the order payload, with its computed
// line total.
type OrderLine struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

// Order is created once at submission and immutable from the client's
// perspective; ownership transfers to the remote store on successful write.
type Order struct {
	ID          string      `json:"order_id,omitempty"`
	OrderNumber string      `json:"orderNumber"`
	Status      OrderStatus `json:"status"`
	OrderType   string      `json:"orderType"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Phone1      string      `json:"phone1"`
	Phone2      string      `json:"phone2,omitempty"`
	Wilaya      string      `json:"wilaya"`
	Commune     string      `json:"commune"`
	Lines       []OrderLine `json:"cartItems"`
	CartTotal   float64     `json:"cartTotal"`
	ShippingFee int         `json:"shippingPrice"`
	GrandTotal  float64     `json:"grandTotal"`
	CreatedAt   time.Time   `json:"date"`
}

// CreateOrderRequest carries the order form fields. Presence is validated
// here; the assembler re-checks the fields it cannot do without.
type CreateOrderRequest struct {
	OrderType string `json:"order_type" validate:"required"`
	Wilaya    string `json:"wilaya" validate:"required"`
	Commune   string `json:"commune" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone1    string `json:"phone1" validate:"required"`
	Phone2    string `json:"phone2,omitempty"`
}
