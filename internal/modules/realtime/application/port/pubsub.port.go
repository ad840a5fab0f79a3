package port

import (
	"context"

	"mesaPos/internal/modules/realtime/domain"
)

// Broadcaster delivers an event envelope to a single sink (websocket hub,
// Kafka mirror). Delivery is best-effort; implementations log and swallow
// their own failures.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// Publisher is the capability the order and restaurant state machines depend
// on: push a named event with a payload to everyone currently listening.
type Publisher interface {
	Publish(ctx context.Context, event string, payload interface{})
}
