// Package verification hands SMS verification codes from the inbound webhook
// to the reservation flow waiting for them.
package verification

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultTTL is how long a deposited code stays deliverable.
const DefaultTTL = 5 * time.Minute

type Code struct {
	Identity   string    `json:"identity"`
	Code       string    `json:"code"`
	ReceivedAt time.Time `json:"receivedAt"`
	Consumed   bool      `json:"consumed"`
}

// Store keeps at most one code per identity.
type Store interface {
	// Put replaces any code held for code.Identity.
	Put(ctx context.Context, code Code) error
	// Take marks the identity's code consumed and returns it, provided it was
	// unconsumed and no older than ttl at now. The check and the mark are
	// atomic.
	Take(ctx context.Context, identity string, now time.Time, ttl time.Duration) (Code, bool, error)
}

type Mailbox struct {
	store  Store
	clock  clockwork.Clock
	ttl    time.Duration
	logger *slog.Logger
}

type Option func(*Mailbox)

func WithClock(clock clockwork.Clock) Option {
	return func(m *Mailbox) { m.clock = clock }
}

func WithTTL(ttl time.Duration) Option {
	return func(m *Mailbox) { m.ttl = ttl }
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Mailbox) { m.logger = logger }
}

func NewMailbox(store Store, opts ...Option) *Mailbox {
	m := &Mailbox{
		store:  store,
		clock:  clockwork.NewRealClock(),
		ttl:    DefaultTTL,
		logger: slog.Default().With("component", "mailbox"),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Mailbox) TTL() time.Duration {
	return m.ttl
}

// Deposit records code for identity, overwriting any code not yet consumed.
func (m *Mailbox) Deposit(ctx context.Context, identity, code string) error {
	identity = NormalizeIdentity(identity)

	if identity == "" || code == "" {
		return fmt.Errorf("identity and code are required")
	}

	err := m.store.Put(ctx, Code{
		Identity:   identity,
		Code:       code,
		ReceivedAt: m.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	m.logger.Info("verification code deposited", "identity", identity)

	return nil
}

// Await polls for an unconsumed, unexpired code for identity, consuming it on
// success. It gives up after maxAttempts polls spaced pollInterval apart, or
// when ctx is done.
func (m *Mailbox) Await(ctx context.Context, identity string, maxAttempts int, pollInterval time.Duration) (string, bool) {
	identity = NormalizeIdentity(identity)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		code, ok, err := m.store.Take(ctx, identity, m.clock.Now(), m.ttl)

		if err != nil {
			m.logger.Error("failed to read verification code", "identity", identity, "attempt", attempt, "err", err)
		}

		if ok {
			m.logger.Info("verification code consumed", "identity", identity, "attempt", attempt)
			return code.Code, true
		}

		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return "", false
		case <-m.clock.After(pollInterval):
		}
	}

	return "", false
}

func NormalizeIdentity(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

var digitRun = regexp.MustCompile(`\d+`)

// ExtractCode returns the last contiguous run of digits in an SMS body.
func ExtractCode(message string) (string, bool) {
	runs := digitRun.FindAllString(message, -1)
	if len(runs) == 0 {
		return "", false
	}
	return runs[len(runs)-1], true
}
