// Package probe answers which slot times a court offers on a date, without
// logging in.
package probe

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/hanksha/tennis-booking-backend/browser"
	"github.com/hanksha/tennis-booking-backend/site"
)

type Prober struct {
	launcher browser.Launcher
	profile  *site.Profile
	location *time.Location
	logger   *slog.Logger
}

func NewProber(launcher browser.Launcher, profile *site.Profile, location *time.Location) *Prober {
	return &Prober{
		launcher: launcher,
		profile:  profile,
		location: location,
		logger:   slog.Default().With("component", "probe"),
	}
}

// Probe returns the sorted "HH:MM" slot times shown for court on date. A
// court that is missing, fully booked or slow to render yields an empty
// list; the error is only set when no browser could be started.
func (p *Prober) Probe(ctx context.Context, court string, date time.Time) ([]string, error) {
	page, err := p.launcher.Launch(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := page.Close(); err != nil {
			p.logger.Warn("failed to close browser", "err", err)
		}
	}()

	logger := p.logger.With("court", court, "date", date.Format(time.DateOnly))
	nav := site.Navigator{Page: page, Profile: p.profile}

	if p.location != nil {
		date = date.In(p.location)
	}

	if err := nav.ShowDate(ctx, date); err != nil {
		logger.Info("date not shown", "err", err)
		return []string{}, nil
	}

	block, err := nav.FindCourt(ctx, court)
	if err != nil {
		logger.Info("court block not found", "err", err)
		return []string{}, nil
	}

	labels, err := p.profile.SlotLabels(block).Texts(ctx, page)
	if err != nil {
		logger.Info("no slot labels found", "err", err)
		return []string{}, nil
	}

	return normalize(labels, logger), nil
}

func normalize(labels []string, logger *slog.Logger) []string {
	times := make([]string, 0, len(labels))

	for _, label := range labels {
		t, ok := site.NormalizeLabel(label)
		if !ok {
			logger.Debug("skipping slot label", "label", label)
			continue
		}
		times = append(times, t)
	}

	slices.Sort(times)

	return slices.Compact(times)
}
