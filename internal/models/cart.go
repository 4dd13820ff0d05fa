package models

// CartLine copies the product fields at add-time; Quantity is always positive
// and never exceeds the product's stock snapshot at mutation time.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

func (l CartLine) Total() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart is a read-only view of the engine's state for rendering layers.
type Cart struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type ChangeQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Delta     int    `json:"delta" validate:"required"`
}
