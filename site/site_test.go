package site_test

import (
	"context"
	"testing"
	"time"

	"github.com/hanksha/tennis-booking-backend/browser"
	"github.com/hanksha/tennis-booking-backend/browser/browsertest"
	"github.com/hanksha/tennis-booking-backend/site"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := site.Default()

	require.Equal(t, "Tennis", p.Category)
	require.Equal(t, "Account Owner", p.Participant)
	require.NotEmpty(t, p.Locators.Confirmation)
	require.Equal(t, 30*time.Second, p.Locators.Confirmation[0].Timeout)
}

func TestParseProfile(t *testing.T) {
	t.Run("missing locators", func(t *testing.T) {
		_, err := site.Parse([]byte("base_url: https://example.com\nmonth_layout: January 2006\n"))

		require.ErrorContains(t, err, "locators.confirmation must have at least one entry")
	})

	t.Run("court block must be xpath", func(t *testing.T) {
		p := site.Default()
		p.Locators.CourtBlock = browser.Chain{{Name: "css", Query: ".card"}}

		require.ErrorContains(t, p.Validate(), "must be an XPath expression")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := site.Parse([]byte("locators: ["))

		require.Error(t, err)
	})
}

func TestLiteral(t *testing.T) {
	require.Equal(t, "'Balboa'", site.Literal("Balboa"))
	require.Equal(t, `"St. Mary's"`, site.Literal("St. Mary's"))
	require.Equal(t, `concat('a"b', "'", 'c')`, site.Literal(`a"b'c`))
}

func TestLabels(t *testing.T) {
	label, err := site.LabelFromClock("13:00")
	require.NoError(t, err)
	require.Equal(t, "1:00 PM", label)

	label, err = site.LabelFromClock("09:30")
	require.NoError(t, err)
	require.Equal(t, "9:30 AM", label)

	_, err = site.LabelFromClock("1pm")
	require.Error(t, err)

	cases := map[string]string{
		"1:00 PM":   "13:00",
		"1:00pm":    "13:00",
		" 9:30  am": "09:30",
		"12 PM":     "12:00",
		"12:15 AM":  "00:15",
		"18:45":     "18:45",
	}

	for in, want := range cases {
		got, ok := site.NormalizeLabel(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}

	_, ok := site.NormalizeLabel("Book")
	require.False(t, ok)
}

func TestCourtBlockQuery(t *testing.T) {
	p := site.Default()

	chain := p.CourtBlock("Alice Marble Tennis Courts")

	require.Contains(t, chain[0].Query, "normalize-space()='Alice Marble Tennis Courts'")
	require.Contains(t, chain[0].Query, "contains(normalize-space(), 'Tennis')")

	slot := p.TimeSlot(chain[0], "1:00 PM")
	require.Equal(t, chain[0].Query+"//button[normalize-space()='1:00 PM']", slot[0].Query)
}

func TestMatchMonth(t *testing.T) {
	p := site.Default()
	target := time.Date(2026, time.December, 3, 0, 0, 0, 0, time.UTC)

	t.Run("clicks forward until the month matches", func(t *testing.T) {
		page := browsertest.NewPage()
		page.Show(p.Locators.MonthHeader, p.Locators.NextMonth)
		page.TextQueue[p.Locators.MonthHeader[0].Query] = []string{"October 2026", "November 2026", "December 2026"}

		nav := site.Navigator{Page: page, Profile: p}

		require.NoError(t, nav.MatchMonth(context.Background(), target))
		require.Len(t, page.Clicks, 2)
	})

	t.Run("calendar already past the target", func(t *testing.T) {
		page := browsertest.NewPage()
		page.Show(p.Locators.MonthHeader, p.Locators.NextMonth)
		page.TextQueue[p.Locators.MonthHeader[0].Query] = []string{"January 2027"}

		nav := site.Navigator{Page: page, Profile: p}

		require.ErrorIs(t, nav.MatchMonth(context.Background(), target), site.ErrMonthUnreachable)
		require.Empty(t, page.Clicks)
	})

	t.Run("waits for a slow header before clicking again", func(t *testing.T) {
		page := browsertest.NewPage()
		page.Show(p.Locators.MonthHeader, p.Locators.NextMonth)
		page.TextQueue[p.Locators.MonthHeader[0].Query] = []string{"October 2026", "October 2026", "October 2026", "November 2026", "November 2026", "December 2026"}

		nav := site.Navigator{Page: page, Profile: p}

		require.NoError(t, nav.MatchMonth(context.Background(), target))
		require.Len(t, page.Clicks, 2)
	})

	t.Run("header never advances", func(t *testing.T) {
		page := browsertest.NewPage()
		page.Show(p.Locators.MonthHeader, p.Locators.NextMonth)
		page.TextQueue[p.Locators.MonthHeader[0].Query] = []string{"October 2026"}

		nav := site.Navigator{Page: page, Profile: p, MonthSettle: 50 * time.Millisecond}

		err := nav.MatchMonth(context.Background(), target)

		require.ErrorIs(t, err, site.ErrMonthUnreachable)
		require.ErrorContains(t, err, "header stuck")
		require.Len(t, page.Clicks, 1)
	})

	t.Run("header far from the target gives up", func(t *testing.T) {
		months := []string{"October 2024"}
		for i := 1; i <= site.MaxMonthClicks; i++ {
			months = append(months, time.Date(2024, time.October+time.Month(i), 1, 0, 0, 0, 0, time.UTC).Format("January 2006"))
		}

		page := browsertest.NewPage()
		page.Show(p.Locators.MonthHeader, p.Locators.NextMonth)
		page.TextQueue[p.Locators.MonthHeader[0].Query] = months

		nav := site.Navigator{Page: page, Profile: p}

		require.ErrorIs(t, nav.MatchMonth(context.Background(), target), site.ErrMonthUnreachable)
		require.Len(t, page.Clicks, site.MaxMonthClicks)
	})

	t.Run("unparseable header", func(t *testing.T) {
		page := browsertest.NewPage()
		page.Show(p.Locators.MonthHeader)
		page.TextQueue[p.Locators.MonthHeader[0].Query] = []string{"Loading..."}

		nav := site.Navigator{Page: page, Profile: p}

		require.ErrorContains(t, nav.MatchMonth(context.Background(), target), "failed to parse month header")
	})
}
