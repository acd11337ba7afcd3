package kafka

import "time"

// OrderPlacedEvent announces a completed checkout.
type OrderPlacedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	OrderIDs     []string  `json:"order_ids"`
	OrderCount   int       `json:"order_count"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Total        int64     `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
