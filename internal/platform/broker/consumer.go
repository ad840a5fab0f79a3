package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"mesaPos/internal/modules/realtime/application/port"
	"mesaPos/internal/modules/realtime/domain"
)

// KafkaConsumer reads one external topic and folds its events into the hub.
type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

func (c *KafkaConsumer) Consume(ctx context.Context, sink port.Broadcaster) {
	defer c.reader.Close()
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("kafka read error", slog.String("topic", c.reader.Config().Topic), slog.Any("error", err))
			continue
		}
		sink.Broadcast(ctx, decodeMessage(m))
	}
}

// StartRelay launches a consumer goroutine per external topic, re-broadcasting
// whatever arrives to the websocket hub. Events published by this process are
// not routed through the relay, so nothing is delivered twice.
func StartRelay(ctx context.Context, sink port.Broadcaster, brokers []string, groupID string, topics []string) {
	if len(brokers) == 0 {
		return
	}
	for _, topic := range topics {
		consumer := NewKafkaConsumer(brokers, groupID, topic)
		slog.Info("kafka relay started", slog.String("topic", topic), slog.Any("brokers", brokers))
		go consumer.Consume(ctx, sink)
	}
}

func decodeMessage(m kafka.Message) *domain.Message {
	msg := &domain.Message{Timestamp: time.Now().UTC()}
	if err := json.Unmarshal(m.Value, msg); err != nil || msg.Event == "" {
		// Foreign producers do not always use the envelope; pass it raw.
		msg.Event = m.Topic
		msg.Payload = string(m.Value)
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	return msg
}
