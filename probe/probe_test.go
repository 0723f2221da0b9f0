package probe_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hanksha/tennis-booking-backend/browser/browsertest"
	"github.com/hanksha/tennis-booking-backend/probe"
	"github.com/hanksha/tennis-booking-backend/site"
	"github.com/stretchr/testify/require"
)

var date = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

func newPage(p *site.Profile, court string) *browsertest.Page {
	loc := p.Locators

	page := browsertest.NewPage()
	page.Show(loc.CalendarButton, loc.MonthHeader, loc.NextMonth, p.Day(19), p.CourtBlock(court))
	page.TextQueue[loc.MonthHeader[0].Query] = []string{"October 2026"}

	return page
}

func TestProbe(t *testing.T) {
	ctx := context.Background()
	p := site.Default()

	t.Run("returns normalized sorted times", func(t *testing.T) {
		page := newPage(p, "Alice Marble")
		labels := p.SlotLabels(p.CourtBlock("Alice Marble")[0])
		page.Show(labels)
		page.AllTexts[labels[0].Query] = []string{"1:00 PM", "9:30am", "Book", "1:00 PM", "12 PM"}

		prober := probe.NewProber(&browsertest.Launcher{Page: page}, p, time.UTC)

		times, err := prober.Probe(ctx, "Alice Marble", date)

		require.NoError(t, err)
		require.Equal(t, []string{"09:30", "12:00", "13:00"}, times)
		require.True(t, page.Closed)
	})

	t.Run("no block for the court yields an empty list", func(t *testing.T) {
		page := newPage(p, "Alice Marble")

		prober := probe.NewProber(&browsertest.Launcher{Page: page}, p, time.UTC)

		times, err := prober.Probe(ctx, "Balboa", date)

		require.NoError(t, err)
		require.NotNil(t, times)
		require.Empty(t, times)
		require.True(t, page.Closed)
	})

	t.Run("block without slots yields an empty list", func(t *testing.T) {
		page := newPage(p, "Alice Marble")

		prober := probe.NewProber(&browsertest.Launcher{Page: page}, p, time.UTC)

		times, err := prober.Probe(ctx, "Alice Marble", date)

		require.NoError(t, err)
		require.Empty(t, times)
	})

	t.Run("calendar failure yields an empty list", func(t *testing.T) {
		page := newPage(p, "Alice Marble")
		page.Hide(p.Locators.CalendarButton)

		prober := probe.NewProber(&browsertest.Launcher{Page: page}, p, time.UTC)

		times, err := prober.Probe(ctx, "Alice Marble", date)

		require.NoError(t, err)
		require.Empty(t, times)
	})

	t.Run("browser launch failure is an error", func(t *testing.T) {
		prober := probe.NewProber(&browsertest.Launcher{Err: errors.New("no chrome")}, p, time.UTC)

		times, err := prober.Probe(ctx, "Alice Marble", date)

		require.Error(t, err)
		require.Nil(t, times)
	})
}
