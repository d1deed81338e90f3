package domain

// Service is a priced shipping offering with a per-kilogram rate.
// Services are never physically deleted; Active hides them from requesters.
type Service struct {
	ID          string  `json:"serviceId"`
	Name        string  `json:"serviceName"`
	PricePerKg  float64 `json:"pricePerWeight"`
	Description string  `json:"description"`
	CreatedBy   string  `json:"createdBy"`
	CreatedAt   int64   `json:"createdAt"` // ms since epoch
	Active      bool    `json:"active"`
}
