// Package reservation drives the reservation site through a full booking,
// from the public calendar to the SMS verified confirmation.
package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/tennis-booking-backend/browser"
	"github.com/hanksha/tennis-booking-backend/credential"
	"github.com/hanksha/tennis-booking-backend/site"
)

const (
	DefaultCodeAttempts = 15
	DefaultPollInterval = time.Second
)

type Request struct {
	Credential credential.Credential
	Court      string
	TargetTime time.Time
	// DurationMinutes falls back to the credential's playtime duration.
	DurationMinutes int
	// AlternateTimes are "HH:MM" times tried in order when TargetTime has
	// no slot.
	AlternateTimes []string
}

type Result struct {
	Success bool
	Reason  string
	// State is Confirmed or Failed.
	State State
	// Reached is the last state the flow got to.
	Reached State
	Kind    error
}

// Submitted reports whether the booking request reached the site before the
// flow stopped. Retrying such an attempt may book twice.
func (r Result) Submitted() bool {
	return r.Reached >= BookConfirmedPreCode
}

type Mailbox interface {
	Await(ctx context.Context, identity string, maxAttempts int, pollInterval time.Duration) (string, bool)
}

type Driver struct {
	launcher     browser.Launcher
	profile      *site.Profile
	mailbox      Mailbox
	location     *time.Location
	codeAttempts int
	pollInterval time.Duration
	logger       *slog.Logger
}

type Option func(*Driver)

func WithCodePolling(attempts int, interval time.Duration) Option {
	return func(d *Driver) {
		d.codeAttempts = attempts
		d.pollInterval = interval
	}
}

// WithLocation sets the timezone the site renders dates and times in.
func WithLocation(loc *time.Location) Option {
	return func(d *Driver) { d.location = loc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

func NewDriver(launcher browser.Launcher, profile *site.Profile, mailbox Mailbox, opts ...Option) *Driver {
	d := &Driver{
		launcher:     launcher,
		profile:      profile,
		mailbox:      mailbox,
		location:     time.UTC,
		codeAttempts: DefaultCodeAttempts,
		pollInterval: DefaultPollInterval,
		logger:       slog.Default().With("component", "reservation"),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// run carries what the steps share during one reservation.
type run struct {
	*Driver

	page   browser.Page
	nav    site.Navigator
	req    Request
	local  time.Time
	block  browser.Locator
	label  string
	code   string
	logger *slog.Logger
}

// Reserve performs one reservation in a fresh browser context. Failures are
// reported in the Result, never as a panic or error.
func (d *Driver) Reserve(ctx context.Context, req Request) (res Result) {
	logger := d.logger.With("run", uuid.NewString(), "court", req.Court, "target", req.TargetTime)

	page, err := d.launcher.Launch(ctx)
	if err != nil {
		logger.Error("failed to launch browser", "err", err)
		return Result{Reason: "browser failed to start", State: Failed, Reached: Init, Kind: ErrBrowserUnavailable}
	}

	defer func() {
		if err := page.Close(); err != nil {
			logger.Warn("failed to close browser", "err", err)
		}
	}()

	if req.DurationMinutes == 0 {
		req.DurationMinutes = req.Credential.PlaytimeDurationMinutes
	}

	r := &run{
		Driver: d,
		page:   page,
		nav:    site.Navigator{Page: page, Profile: d.profile},
		req:    req,
		local:  req.TargetTime.In(d.location),
		logger: logger,
	}

	state := Init

	defer func() {
		if p := recover(); p != nil {
			logger.Error("reservation step panicked", "state", state, "panic", p)
			res = Result{
				Reason:  fmt.Sprintf("unexpected error after %v: %v", state, p),
				State:   Failed,
				Reached: state,
				Kind:    ErrSiteFlowChanged,
			}
		}
	}()

	for _, t := range transitions {
		if err := r.step(ctx, t); err != nil {
			reason, kind := t.classify(err)

			logger.Warn("reservation failed", "state", state, "next", t.to, "reason", reason, "err", err)

			if state >= BookConfirmedPreCode {
				logger.Warn("booking was already submitted to the site", "state", state)
			}

			return Result{Reason: reason, State: Failed, Reached: state, Kind: kind}
		}

		state = t.to
		logger.Debug("reservation state reached", "state", state)
	}

	logger.Info("reservation confirmed", "slot", r.label)

	return Result{Success: true, State: Confirmed, Reached: Confirmed}
}

func (r *run) step(ctx context.Context, t transition) error {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	return t.run(ctx, r)
}

// failure is returned by steps whose failure needs a more precise reason
// than the transition's default.
type failure struct {
	reason string
	kind   error
	err    error
}

func (f *failure) Error() string {
	if f.err == nil {
		return f.reason
	}
	return fmt.Sprintf("%v: %v", f.reason, f.err)
}

func (f *failure) Unwrap() error { return f.err }

func fail(reason string, kind error, err error) error {
	return &failure{reason: reason, kind: kind, err: err}
}

func (t transition) classify(err error) (string, error) {
	var f *failure
	if errors.As(err, &f) {
		return f.reason, f.kind
	}

	if t.kind != nil {
		return t.reason, t.kind
	}

	if errors.Is(err, browser.ErrNotFound) {
		return t.reason, ErrScrapeNotFound
	}

	return t.reason, ErrSiteFlowChanged
}
