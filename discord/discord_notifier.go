package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hanksha/tennis-booking-backend/booking"
)

const (
	colorScheduled = 0x3498db
	colorCompleted = 0x2ecc71
	colorFailed    = 0xe74c3c
)

// Notifier posts attempt status changes to a channel.
type Notifier struct {
	client    DiscordClient
	channelID string
	location  *time.Location
	logger    *slog.Logger
}

func NewNotifier(client DiscordClient, channelID string, location *time.Location) *Notifier {
	if location == nil {
		location = time.UTC
	}

	return &Notifier{
		client:    client,
		channelID: channelID,
		location:  location,
		logger:    slog.Default().With("component", "discord-notifier"),
	}
}

func (n *Notifier) AttemptUpdated(ctx context.Context, attempt booking.Attempt) error {
	msg := n.attemptMessage(attempt)

	if err := n.client.SendMessage(ctx, n.channelID, msg); err != nil {
		n.logger.Error("failed to send attempt notification", "attempt", attempt.ID, "err", err)
		return fmt.Errorf("failed to send attempt notification: %w", err)
	}

	return nil
}

func (n *Notifier) attemptMessage(attempt booking.Attempt) Message {
	title, color := "Reservation scheduled", colorScheduled

	switch attempt.Status {
	case booking.StatusCompleted:
		title, color = "Reservation confirmed", colorCompleted
	case booking.StatusFailed:
		title, color = "Reservation failed", colorFailed
	}

	fields := []EmbedField{
		{Name: "Court", Value: attempt.Court, Inline: true},
		{Name: "Time", Value: attempt.TargetTime.In(n.location).Format("Mon Jan 2, 3:04 PM"), Inline: true},
		{Name: "Owner", Value: attempt.Owner, Inline: false},
	}

	if attempt.DurationMinutes > 0 {
		fields = append(fields, EmbedField{Name: "Duration", Value: strconv.Itoa(attempt.DurationMinutes) + " min", Inline: true})
	}

	if attempt.ErrorMessage != nil && *attempt.ErrorMessage != "" {
		fields = append(fields, EmbedField{Name: "Reason", Value: *attempt.ErrorMessage, Inline: false})
	}

	return Message{
		Embeds: []Embed{
			{
				Type:        "rich",
				Title:       title,
				Description: fmt.Sprintf("Attempt `%v` is %v", attempt.ID, attempt.Status),
				Color:       color,
				Fields:      fields,
				Timestamp:   attempt.UpdatedAt.UTC().Format(time.RFC3339),
			},
		},
	}
}
