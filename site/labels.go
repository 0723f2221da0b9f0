package site

import (
	"fmt"
	"strings"
	"time"
)

const (
	clockLayout = "15:04"
	labelLayout = "3:04 PM"
)

var labelLayouts = []string{"3:04 PM", "3:04PM", "3 PM", "3PM", "15:04"}

// Label renders t the way the site labels slot buttons, e.g. "1:00 PM".
func Label(t time.Time) string {
	return t.Format(labelLayout)
}

// LabelFromClock converts a 24-hour "HH:MM" time into a slot label.
func LabelFromClock(clock string) (string, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(clock))
	if err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM: %w", clock, err)
	}
	return Label(t), nil
}

// NormalizeLabel converts a rendered 12-hour slot label into 24-hour HH:MM.
func NormalizeLabel(label string) (string, bool) {
	label = strings.ToUpper(strings.Join(strings.Fields(label), " "))

	for _, layout := range labelLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return t.Format(clockLayout), true
		}
	}

	return "", false
}
