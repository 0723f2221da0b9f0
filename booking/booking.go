package booking

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Attempt struct {
	ID              string    `json:"id"`
	Court           string    `json:"court"`
	TargetTime      time.Time `json:"targetTime"`
	Owner           string    `json:"owner"`
	DurationMinutes int       `json:"durationMinutes"`
	AlternateTimes  []string  `json:"alternateTimes"`
	Status          Status    `json:"status"`
	ErrorMessage    *string   `json:"errorMessage"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewAttempt is a booking request as submitted by a user.
type NewAttempt struct {
	Court           string    `json:"court" binding:"required"`
	TargetTime      time.Time `json:"targetTime" binding:"required"`
	Owner           string    `json:"owner" binding:"required"`
	DurationMinutes int       `json:"durationMinutes"`
	AlternateTimes  []string  `json:"alternateTimes"`
}

// Outcome describes what scheduling did with an attempt. Immediate is set
// when a reservation ran right away, Deferred when a job is waiting for the
// target time.
type Outcome struct {
	Attempt   Attempt `json:"attempt"`
	Immediate bool    `json:"immediate"`
	Deferred  bool    `json:"deferred"`
	Note      string  `json:"note,omitempty"`
}

// Job is a pending deferred reservation.
type Job struct {
	ID        string    `json:"id"`
	AttemptID string    `json:"attemptId"`
	FiresAt   time.Time `json:"firesAt"`
}

// JobID keys a job by attempt and fire time, to the minute.
func JobID(attemptID string, firesAt time.Time) string {
	return attemptID + "@" + firesAt.UTC().Truncate(time.Minute).Format(time.RFC3339)
}
