package models

// ShippingQuote is derived from the static fee tables, never stored.
type ShippingQuote struct {
	Region       string `json:"region"`
	DeliveryType string `json:"delivery_type"`
	Fee          int    `json:"fee"`
}

type RegionInfo struct {
	Region     string   `json:"region"`
	Localities []string `json:"localities"`
}
