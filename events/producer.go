package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hanksha/tennis-booking-backend/booking"
	"github.com/segmentio/kafka-go"
)

const DefaultTopic = "tennis.attempts"

// AttemptEvent is the payload published for every attempt status change.
type AttemptEvent struct {
	Type         string    `json:"type"`
	AttemptID    string    `json:"attempt_id"`
	Court        string    `json:"court"`
	TargetTime   time.Time `json:"target_time"`
	Owner        string    `json:"owner"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer MessageWriter
	topic  string
	logger *slog.Logger
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return NewProducerWithWriter(writer, topic)
}

func NewProducerWithWriter(writer MessageWriter, topic string) *Producer {
	if topic == "" {
		topic = DefaultTopic
	}

	return &Producer{
		writer: writer,
		topic:  topic,
		logger: slog.Default().With("component", "events"),
	}
}

func (p *Producer) Publish(ctx context.Context, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Debug("event published", "topic", p.topic, "key", key)

	return nil
}

// AttemptUpdated publishes the attempt keyed by its ID, so every event of
// one attempt lands on the same partition.
func (p *Producer) AttemptUpdated(ctx context.Context, attempt booking.Attempt) error {
	event := AttemptEvent{
		Type:       "attempt." + string(attempt.Status),
		AttemptID:  attempt.ID,
		Court:      attempt.Court,
		TargetTime: attempt.TargetTime.UTC(),
		Owner:      attempt.Owner,
		Status:     string(attempt.Status),
		OccurredAt: attempt.UpdatedAt.UTC(),
	}

	if attempt.ErrorMessage != nil {
		event.ErrorMessage = *attempt.ErrorMessage
	}

	return p.Publish(ctx, attempt.ID, event)
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
