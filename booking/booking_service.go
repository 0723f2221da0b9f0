package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/tennis-booking-backend/credential"
	"github.com/hanksha/tennis-booking-backend/reservation"
	"github.com/jonboulle/clockwork"
)

const DefaultImmediateWindowDays = 7

type AttemptRepository interface {
	InsertAttempt(ctx context.Context, attempt Attempt) (Attempt, error)
	GetAttemptByID(ctx context.Context, id string) (Attempt, error)
	GetAttemptsByOwner(ctx context.Context, owner string) ([]Attempt, error)
	SetAttemptStatus(ctx context.Context, id string, status Status, errorMessage *string) error
}

type CredentialSource interface {
	GetByIdentity(ctx context.Context, email string) (credential.Credential, error)
}

type Reserver interface {
	Reserve(ctx context.Context, req reservation.Request) reservation.Result
}

// Notifier is told about every status change of an attempt.
type Notifier interface {
	AttemptUpdated(ctx context.Context, attempt Attempt) error
}

type Scheduler struct {
	attempts        AttemptRepository
	credentials     CredentialSource
	reserver        Reserver
	jobs            *JobTable
	clock           clockwork.Clock
	location        *time.Location
	immediateWindow int
	notifiers       []Notifier
	logger          *slog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

type Option func(*Scheduler)

func WithClock(clock clockwork.Clock) Option {
	return func(s *Scheduler) { s.clock = clock }
}

// WithLocation sets the timezone lead days are counted in.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) { s.location = loc }
}

func WithImmediateWindow(days int) Option {
	return func(s *Scheduler) { s.immediateWindow = days }
}

func WithNotifier(n Notifier) Option {
	return func(s *Scheduler) { s.notifiers = append(s.notifiers, n) }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

func NewScheduler(attempts AttemptRepository, jobs JobRepository, credentials CredentialSource, reserver Reserver, opts ...Option) *Scheduler {
	s := &Scheduler{
		attempts:        attempts,
		credentials:     credentials,
		reserver:        reserver,
		clock:           clockwork.NewRealClock(),
		immediateWindow: DefaultImmediateWindowDays,
		logger:          slog.Default().With("component", "scheduler"),
		inFlight:        map[string]struct{}{},
	}

	if loc, err := time.LoadLocation("America/Los_Angeles"); err == nil {
		s.location = loc
	} else {
		s.location = time.UTC
	}

	for _, opt := range opts {
		opt(s)
	}

	s.jobs = NewJobTable(jobs, s.clock, s.fire)

	return s
}

// Start re-arms the persisted jobs.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.jobs.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore jobs: %w", err)
	}
	return nil
}

func (s *Scheduler) Stop() {
	s.jobs.Stop()
}

func (s *Scheduler) PendingJobs() []Job {
	return s.jobs.Pending()
}

func (s *Scheduler) FindAttemptByID(ctx context.Context, id string) (Attempt, error) {
	return s.attempts.GetAttemptByID(ctx, id)
}

func (s *Scheduler) FindAttemptsByOwner(ctx context.Context, owner string) ([]Attempt, error) {
	return s.attempts.GetAttemptsByOwner(ctx, owner)
}

// LeadDays is the number of calendar days from now to target in loc.
func LeadDays(now, target time.Time, loc *time.Location) int {
	n := now.In(loc)
	t := target.In(loc)

	from := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return int(to.Sub(from).Hours() / 24)
}

// CreateAttempt validates and records a new attempt, then schedules it.
func (s *Scheduler) CreateAttempt(ctx context.Context, in NewAttempt) (Outcome, error) {
	if err := s.validate(in); err != nil {
		return Outcome{}, err
	}

	now := s.clock.Now()

	attempt, err := s.attempts.InsertAttempt(ctx, Attempt{
		ID:              uuid.NewString(),
		Court:           strings.TrimSpace(in.Court),
		TargetTime:      in.TargetTime,
		Owner:           strings.ToLower(strings.TrimSpace(in.Owner)),
		DurationMinutes: in.DurationMinutes,
		AlternateTimes:  in.AlternateTimes,
		Status:          StatusScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	})

	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrSchedulingInfra, err)
	}

	return s.Schedule(ctx, attempt)
}

func (s *Scheduler) validate(in NewAttempt) error {
	var problems []string

	if strings.TrimSpace(in.Court) == "" {
		problems = append(problems, "court is required")
	}

	if strings.TrimSpace(in.Owner) == "" {
		problems = append(problems, "owner is required")
	}

	if in.TargetTime.IsZero() {
		problems = append(problems, "targetTime is required")
	} else if LeadDays(s.clock.Now(), in.TargetTime, s.location) <= 0 {
		problems = append(problems, "targetTime must be on a future date")
	}

	if in.DurationMinutes != 0 && in.DurationMinutes != 60 && in.DurationMinutes != 90 {
		problems = append(problems, "durationMinutes must be 60 or 90")
	}

	for _, alt := range in.AlternateTimes {
		if _, err := time.Parse("15:04", alt); err != nil {
			problems = append(problems, fmt.Sprintf("alternate time %q must be HH:MM", alt))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %v", ErrValidation, strings.Join(problems, "; "))
	}

	return nil
}

// Schedule decides when attempt runs. Within the immediate window it is
// reserved right away, falling back to a deferred job at the target time
// when that fails. Further out, only the deferred job is registered.
func (s *Scheduler) Schedule(ctx context.Context, attempt Attempt) (Outcome, error) {
	// The run and its bookkeeping outlive a caller that hangs up.
	ctx = context.WithoutCancel(ctx)

	lead := LeadDays(s.clock.Now(), attempt.TargetTime, s.location)
	logger := s.logger.With("attempt", attempt.ID, "leadDays", lead)

	if lead <= 0 {
		return Outcome{Attempt: attempt}, fmt.Errorf("%w: target date must be after today", ErrValidation)
	}

	if lead > s.immediateWindow {
		if err := s.jobs.Register(ctx, Job{AttemptID: attempt.ID, FiresAt: attempt.TargetTime}); err != nil {
			msg := fmt.Sprintf("scheduling failed: %v", err)
			attempt = s.setStatus(ctx, attempt, StatusFailed, &msg)

			return Outcome{Attempt: attempt}, fmt.Errorf("%w: %w", ErrSchedulingInfra, err)
		}

		logger.Info("attempt deferred", "firesAt", attempt.TargetTime)
		attempt = s.setStatus(ctx, attempt, StatusScheduled, attempt.ErrorMessage)

		return Outcome{
			Attempt:  attempt,
			Deferred: true,
			Note:     fmt.Sprintf("reservation will run at %v", attempt.TargetTime.In(s.location).Format(time.DateTime)),
		}, nil
	}

	result, err := s.run(ctx, attempt)
	if err != nil {
		return Outcome{Attempt: attempt}, err
	}

	if result.Success {
		attempt = s.setStatus(ctx, attempt, StatusCompleted, nil)
		return Outcome{Attempt: attempt, Immediate: true}, nil
	}

	reason := result.Reason
	attempt = s.setStatus(ctx, attempt, StatusFailed, &reason)

	if result.Submitted() {
		logger.Warn("retrying an attempt that already reached the site, it may be booked twice", "state", result.Reached)
	}

	if err := s.jobs.Register(ctx, Job{AttemptID: attempt.ID, FiresAt: attempt.TargetTime}); err != nil {
		msg := fmt.Sprintf("%v; scheduling fallback failed: %v", reason, err)
		attempt = s.setStatus(ctx, attempt, StatusFailed, &msg)

		return Outcome{Attempt: attempt, Immediate: true}, fmt.Errorf("%w: %w", ErrSchedulingInfra, err)
	}

	attempt = s.setStatus(ctx, attempt, StatusScheduled, &reason)

	return Outcome{
		Attempt:   attempt,
		Immediate: true,
		Deferred:  true,
		Note:      fmt.Sprintf("immediate reservation failed (%v), will retry at %v", reason, attempt.TargetTime.In(s.location).Format(time.DateTime)),
	}, nil
}

// fire runs a deferred job. It never defers again.
func (s *Scheduler) fire(ctx context.Context, job Job) error {
	attempt, err := s.attempts.GetAttemptByID(ctx, job.AttemptID)

	if errors.Is(err, ErrAttemptNotFound) {
		s.logger.Warn("dropping job of unknown attempt", "job", job.ID)
		return nil
	}

	if err != nil {
		return err
	}

	if attempt.Status != StatusScheduled {
		s.logger.Info("skipping job, attempt no longer scheduled", "attempt", attempt.ID, "status", attempt.Status)
		return nil
	}

	result, err := s.run(ctx, attempt)
	if errors.Is(err, ErrAttemptInProgress) {
		s.logger.Warn("skipping job, attempt already running", "attempt", attempt.ID)
		return nil
	}

	if result.Success {
		s.setStatus(ctx, attempt, StatusCompleted, nil)
		return nil
	}

	reason := result.Reason
	s.setStatus(ctx, attempt, StatusFailed, &reason)

	return nil
}

// run performs one reservation for attempt. At most one run per attempt is
// in flight.
func (s *Scheduler) run(ctx context.Context, attempt Attempt) (reservation.Result, error) {
	s.mu.Lock()
	if _, busy := s.inFlight[attempt.ID]; busy {
		s.mu.Unlock()
		return reservation.Result{}, ErrAttemptInProgress
	}
	s.inFlight[attempt.ID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, attempt.ID)
		s.mu.Unlock()
	}()

	logger := s.logger.With("attempt", attempt.ID, "court", attempt.Court)

	cred, err := s.credentials.GetByIdentity(ctx, attempt.Owner)
	if err != nil {
		logger.Error("failed to load credential", "owner", attempt.Owner, "err", err)

		reason := "failed to load credential"
		if errors.Is(err, credential.ErrCredentialNotFound) {
			reason = "credential not found"
		}

		return reservation.Result{Reason: reason, State: reservation.Failed}, nil
	}

	logger.Info("running reservation")

	result := s.reserver.Reserve(ctx, reservation.Request{
		Credential:      cred,
		Court:           attempt.Court,
		TargetTime:      attempt.TargetTime,
		DurationMinutes: attempt.DurationMinutes,
		AlternateTimes:  attempt.AlternateTimes,
	})

	logger.Info("reservation finished", "success", result.Success, "reason", result.Reason, "state", result.Reached)

	return result, nil
}

// setStatus records a status change and notifies. A store failure is
// logged and the in-memory attempt is still updated.
func (s *Scheduler) setStatus(ctx context.Context, attempt Attempt, status Status, errorMessage *string) Attempt {
	if err := s.attempts.SetAttemptStatus(ctx, attempt.ID, status, errorMessage); err != nil {
		s.logger.Error("failed to record attempt status", "attempt", attempt.ID, "status", status, "err", err)
	}

	attempt.Status = status
	attempt.ErrorMessage = errorMessage
	attempt.UpdatedAt = s.clock.Now()

	for _, n := range s.notifiers {
		if err := n.AttemptUpdated(ctx, attempt); err != nil {
			s.logger.Warn("failed to notify attempt update", "attempt", attempt.ID, "err", err)
		}
	}

	return attempt
}
