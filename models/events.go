package models

import "time"

// OrderPlacedEvent is published to Kafka after an order commits.
type OrderPlacedEvent struct {
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	TotalPrice string    `json:"total_price"`
	ProductIDs []string  `json:"product_ids"`
	PlacedAt   time.Time `json:"placed_at"`
}
