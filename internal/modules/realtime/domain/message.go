package domain

import "time"

// Event names pushed to connected clients.
const (
	EventOrderCreated      = "OrderCreated"
	EventOrderUpdated      = "OrderUpdated"
	EventRestaurantUpdated = "RestaurantUpdated"
)

// Message is the envelope delivered to websocket clients and mirrored to Kafka.
type Message struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewMessage stamps an event envelope with the current UTC time.
func NewMessage(event string, payload interface{}) *Message {
	return &Message{Event: event, Payload: payload, Timestamp: time.Now().UTC()}
}
