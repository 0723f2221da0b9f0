package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hanksha/tennis-booking-backend/browser"
	"github.com/hanksha/tennis-booking-backend/site"
)

type transition struct {
	from    State
	to      State
	timeout time.Duration
	reason  string
	// kind overrides the error classification of the step's failure.
	kind error
	run  func(ctx context.Context, r *run) error
}

// transitions is the booking flow in order. A zero timeout leaves the step
// bounded only by the caller's context.
var transitions = []transition{
	{from: Init, to: SiteLoaded, timeout: 30 * time.Second, reason: "site failed to load", kind: ErrSiteFlowChanged, run: loadSite},
	{from: SiteLoaded, to: CalendarOpen, timeout: 20 * time.Second, reason: "calendar button not found", run: openCalendar},
	{from: CalendarOpen, to: MonthMatched, timeout: 2 * time.Minute, reason: "target month not reachable", run: matchMonth},
	{from: MonthMatched, to: DaySelected, timeout: 15 * time.Second, reason: "day not found in calendar", run: selectDay},
	{from: DaySelected, to: CourtBlockMatched, timeout: 20 * time.Second, reason: "court not found", run: matchCourt},
	{from: CourtBlockMatched, to: TimeSlotMatched, timeout: time.Minute, reason: "time slot not found", run: matchTimeSlot},
	{from: TimeSlotMatched, to: BookInitiated, timeout: 20 * time.Second, reason: "book button not found", run: initiateBook},
	{from: BookInitiated, to: LoginPrompted, timeout: 30 * time.Second, reason: "login form not found", run: fillLogin},
	{from: LoginPrompted, to: Authenticated, timeout: 45 * time.Second, reason: "login button not found", run: submitLogin},
	{from: Authenticated, to: ParticipantSelected, timeout: 30 * time.Second, reason: "participant selector not found", run: selectParticipant},
	{from: ParticipantSelected, to: BookConfirmedPreCode, timeout: 20 * time.Second, reason: "booking confirmation button not found", run: confirmBooking},
	{from: BookConfirmedPreCode, to: CodeRequested, timeout: 20 * time.Second, reason: "send code button not found", run: requestCode},
	{from: CodeRequested, to: CodeAwaited, reason: "verification code not received", kind: ErrVerificationTimeout, run: awaitCode},
	{from: CodeAwaited, to: CodeSubmitted, timeout: 30 * time.Second, reason: "verification code input not found", run: submitCode},
	{from: CodeSubmitted, to: Confirmed, timeout: 45 * time.Second, reason: "booking confirmation not shown", run: awaitConfirmation},
}

func loadSite(ctx context.Context, r *run) error {
	return r.nav.Open(ctx)
}

func openCalendar(ctx context.Context, r *run) error {
	return r.nav.OpenCalendar(ctx)
}

func matchMonth(ctx context.Context, r *run) error {
	err := r.nav.MatchMonth(ctx, r.local)
	if errors.Is(err, site.ErrMonthUnreachable) {
		return fail("target month not reachable", ErrScrapeNotFound, err)
	}
	return err
}

func selectDay(ctx context.Context, r *run) error {
	return r.nav.SelectDay(ctx, r.local)
}

func matchCourt(ctx context.Context, r *run) error {
	block, err := r.nav.FindCourt(ctx, r.req.Court)
	if err != nil {
		return err
	}

	r.block = block
	r.logger.Debug("court block matched", "locator", block)

	return nil
}

// matchTimeSlot clicks the target time, or else the first alternate time
// offered. The duration control is optional on the site.
func matchTimeSlot(ctx context.Context, r *run) error {
	labels := []string{site.Label(r.local)}

	for _, alt := range r.req.AlternateTimes {
		label, err := site.LabelFromClock(alt)
		if err != nil {
			r.logger.Warn("ignoring alternate time", "time", alt, "err", err)
			continue
		}
		labels = append(labels, label)
	}

	var errs []error

	for _, label := range labels {
		err := r.profile.TimeSlot(r.block, label).Click(ctx, r.page)
		if err == nil {
			r.label = label
			break
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		errs = append(errs, fmt.Errorf("%v: %w", label, err))
	}

	if r.label == "" {
		return errors.Join(errs...)
	}

	if r.label != labels[0] {
		r.logger.Info("target time not offered, using alternate", "slot", r.label)
	}

	if r.req.DurationMinutes > 0 {
		if err := r.profile.Duration(r.req.DurationMinutes).Click(ctx, r.page); err != nil {
			r.logger.Debug("duration control not offered", "minutes", r.req.DurationMinutes, "err", err)
		}
	}

	return nil
}

func initiateBook(ctx context.Context, r *run) error {
	return r.profile.Locators.BookButton.Click(ctx, r.page)
}

func fillLogin(ctx context.Context, r *run) error {
	loc := r.profile.Locators

	if err := loc.EmailInput.Type(ctx, r.page, r.req.Credential.Email); err != nil {
		return err
	}

	return loc.PasswordInput.Type(ctx, r.page, r.req.Credential.Password)
}

// submitLogin logs in and waits for the participant selector, which only
// shows up once the site accepted the credentials.
func submitLogin(ctx context.Context, r *run) error {
	loc := r.profile.Locators

	if err := loc.LoginButton.Click(ctx, r.page); err != nil {
		return err
	}

	if _, err := loc.ParticipantSelect.First(ctx, r.page); err == nil {
		return nil
	} else if ctx.Err() != nil {
		return fail("participant selector not found", ErrScrapeNotFound, err)
	}

	if len(loc.LoginError) > 0 {
		if _, err := loc.LoginError.First(ctx, r.page); err == nil {
			return fail("login rejected", ErrAuthFailure, nil)
		}
	}

	return fail("participant selector not found", ErrScrapeNotFound, nil)
}

func selectParticipant(ctx context.Context, r *run) error {
	if err := r.profile.Locators.ParticipantSelect.Click(ctx, r.page); err != nil {
		return err
	}

	if err := r.profile.ParticipantOption().Click(ctx, r.page); err != nil {
		return fail("participant option not found", ErrScrapeNotFound, err)
	}

	return nil
}

func confirmBooking(ctx context.Context, r *run) error {
	return r.profile.Locators.ConfirmBooking.Click(ctx, r.page)
}

func requestCode(ctx context.Context, r *run) error {
	return r.profile.Locators.SendCode.Click(ctx, r.page)
}

func awaitCode(ctx context.Context, r *run) error {
	code, ok := r.mailbox.Await(ctx, r.req.Credential.Email, r.codeAttempts, r.pollInterval)
	if !ok {
		return fail(fmt.Sprintf("no verification code received after %d attempts", r.codeAttempts), ErrVerificationTimeout, ctx.Err())
	}

	r.code = code

	return nil
}

func submitCode(ctx context.Context, r *run) error {
	loc := r.profile.Locators

	if err := loc.CodeInput.Type(ctx, r.page, r.code); err != nil {
		return err
	}

	if err := loc.SubmitCode.Click(ctx, r.page); err != nil {
		return fail("verification submit button not found", ErrScrapeNotFound, err)
	}

	return nil
}

func awaitConfirmation(ctx context.Context, r *run) error {
	_, err := r.profile.Locators.Confirmation.First(ctx, r.page)
	if errors.Is(err, browser.ErrNotFound) {
		return fail("booking confirmation not shown", ErrScrapeNotFound, err)
	}
	return err
}
