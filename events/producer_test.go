package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hanksha/tennis-booking-backend/booking"
	"github.com/hanksha/tennis-booking-backend/events"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestProducer_AttemptUpdated(t *testing.T) {
	ctx := context.Background()

	reason := "court not found"
	attempt := booking.Attempt{
		ID:           "attempt-1",
		Court:        "Alice Marble",
		TargetTime:   time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC),
		Owner:        "player@example.com",
		Status:       booking.StatusFailed,
		ErrorMessage: &reason,
		UpdatedAt:    time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC),
	}

	t.Run("publishes the attempt keyed by id", func(t *testing.T) {
		writer := &fakeWriter{}
		producer := events.NewProducerWithWriter(writer, "")

		require.NoError(t, producer.AttemptUpdated(ctx, attempt))
		require.Len(t, writer.msgs, 1)

		msg := writer.msgs[0]
		require.Equal(t, events.DefaultTopic, msg.Topic)
		require.Equal(t, "attempt-1", string(msg.Key))

		var event events.AttemptEvent
		require.NoError(t, json.Unmarshal(msg.Value, &event))

		require.Equal(t, "attempt.failed", event.Type)
		require.Equal(t, "failed", event.Status)
		require.Equal(t, reason, event.ErrorMessage)
		require.Equal(t, "Alice Marble", event.Court)
		require.True(t, attempt.TargetTime.Equal(event.TargetTime))
	})

	t.Run("scheduled attempt has no error message", func(t *testing.T) {
		writer := &fakeWriter{}
		producer := events.NewProducerWithWriter(writer, "custom")

		scheduled := attempt
		scheduled.Status = booking.StatusScheduled
		scheduled.ErrorMessage = nil

		require.NoError(t, producer.AttemptUpdated(ctx, scheduled))

		var raw map[string]any
		require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &raw))

		require.Equal(t, "custom", writer.msgs[0].Topic)
		require.NotContains(t, raw, "error_message")
	})

	t.Run("write failure is returned", func(t *testing.T) {
		producer := events.NewProducerWithWriter(&fakeWriter{err: errors.New("no brokers")}, "")

		require.ErrorContains(t, producer.AttemptUpdated(ctx, attempt), "no brokers")
	})

	t.Run("close closes the writer", func(t *testing.T) {
		writer := &fakeWriter{}
		producer := events.NewProducerWithWriter(writer, "")

		require.NoError(t, producer.Close())
		require.True(t, writer.closed)
	})
}
