package models

// Product is the remote store's document for a sellable item. The ID is
// assigned by the store; Quantity is the authoritative remaining stock.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
}

// InStock reports whether the product can still be added to a cart.
func (p Product) InStock() bool {
	return p.Quantity > 0
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
