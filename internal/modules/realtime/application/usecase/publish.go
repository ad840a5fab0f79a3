package usecase

import (
	"context"

	"mesaPos/internal/modules/realtime/application/port"
	"mesaPos/internal/modules/realtime/domain"
)

// FanoutPublisher pushes every event to all configured sinks. It never returns
// an error: broadcasting is decoupled from the transaction that triggered it,
// so a failed delivery must not affect the HTTP outcome.
type FanoutPublisher struct {
	sinks []port.Broadcaster
}

func NewFanoutPublisher(sinks ...port.Broadcaster) *FanoutPublisher {
	return &FanoutPublisher{sinks: sinks}
}

func (p *FanoutPublisher) Publish(ctx context.Context, event string, payload interface{}) {
	msg := domain.NewMessage(event, payload)
	for _, sink := range p.sinks {
		sink.Broadcast(ctx, msg)
	}
}

var _ port.Publisher = (*FanoutPublisher)(nil)
