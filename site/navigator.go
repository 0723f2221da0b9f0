package site

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hanksha/tennis-booking-backend/browser"
)

// MaxMonthClicks bounds the "next month" loop of the calendar.
const MaxMonthClicks = 24

// DefaultMonthSettle is how long the month header may take to change after
// "next month" is clicked.
const DefaultMonthSettle = 5 * time.Second

const monthPollInterval = 100 * time.Millisecond

var ErrMonthUnreachable = errors.New("target month not reachable")

// Navigator walks the public part of the site shared by the slot probe and
// the reservation flow.
type Navigator struct {
	Page        browser.Page
	Profile     *Profile
	MonthSettle time.Duration
}

func (n Navigator) Open(ctx context.Context) error {
	return n.Page.Navigate(ctx, n.Profile.BaseURL)
}

func (n Navigator) OpenCalendar(ctx context.Context) error {
	return n.Profile.Locators.CalendarButton.Click(ctx, n.Page)
}

// MatchMonth clicks "next month" until the calendar shows the month of date.
// Each click waits for the header to change before the next read.
func (n Navigator) MatchMonth(ctx context.Context, date time.Time) error {
	target := date.Year()*12 + int(date.Month())

	text, err := n.monthHeader(ctx)
	if err != nil {
		return err
	}

	for clicks := 0; ; clicks++ {
		shown, err := time.Parse(n.Profile.MonthLayout, text)
		if err != nil {
			return fmt.Errorf("failed to parse month header %q: %w", text, err)
		}

		current := shown.Year()*12 + int(shown.Month())

		switch {
		case current == target:
			return nil
		case current > target:
			return fmt.Errorf("%w: calendar shows %v", ErrMonthUnreachable, text)
		case clicks >= MaxMonthClicks:
			return fmt.Errorf("%w: gave up after %d clicks", ErrMonthUnreachable, clicks)
		}

		if err := n.Profile.Locators.NextMonth.Click(ctx, n.Page); err != nil {
			return fmt.Errorf("failed to click next month: %w", err)
		}

		if text, err = n.awaitMonthChange(ctx, text); err != nil {
			return err
		}
	}
}

func (n Navigator) monthHeader(ctx context.Context) (string, error) {
	text, err := n.Profile.Locators.MonthHeader.Text(ctx, n.Page)
	if err != nil {
		return "", fmt.Errorf("failed to read month header: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// awaitMonthChange polls the header until it differs from previous. Read
// errors while the calendar re-renders count as no change.
func (n Navigator) awaitMonthChange(ctx context.Context, previous string) (string, error) {
	settle := n.MonthSettle
	if settle <= 0 {
		settle = DefaultMonthSettle
	}

	deadline := time.Now().Add(settle)

	for {
		text, err := n.monthHeader(ctx)
		if err == nil && text != previous {
			return text, nil
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if !time.Now().Before(deadline) {
			if err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: header stuck at %q after clicking next month", ErrMonthUnreachable, previous)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(monthPollInterval):
		}
	}
}

// SelectDay clicks the day of date, ignoring days of adjacent months.
func (n Navigator) SelectDay(ctx context.Context, date time.Time) error {
	return n.Profile.Day(date.Day()).Click(ctx, n.Page)
}

// ShowDate opens the site and brings the listings for date on screen.
func (n Navigator) ShowDate(ctx context.Context, date time.Time) error {
	if err := n.Open(ctx); err != nil {
		return err
	}

	if err := n.OpenCalendar(ctx); err != nil {
		return err
	}

	if err := n.MatchMonth(ctx, date); err != nil {
		return err
	}

	return n.SelectDay(ctx, date)
}

// FindCourt returns the locator that matched the court's listing block.
func (n Navigator) FindCourt(ctx context.Context, court string) (browser.Locator, error) {
	return n.Profile.CourtBlock(court).First(ctx, n.Page)
}
