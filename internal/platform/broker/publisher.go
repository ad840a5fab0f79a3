package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"mesaPos/internal/modules/realtime/domain"
)

// KafkaPublisher mirrors broadcast events onto a Kafka topic so other
// services can consume the same stream the websocket clients see. Delivery is
// best-effort: write failures are logged and never surface to the caller.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		},
	}
}

func (p *KafkaPublisher) Broadcast(ctx context.Context, msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("kafka mirror marshal error", slog.Any("error", err))
		return
	}
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(msg.Event),
		Value: data,
	}); err != nil {
		slog.Warn("kafka mirror write failed", slog.String("event", msg.Event), slog.Any("error", err))
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
