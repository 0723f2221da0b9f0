// Package site describes the reservation website's UI contract: where it
// lives, how its controls are located and how it renders dates and times.
package site

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hanksha/tennis-booking-backend/browser"
	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

type Profile struct {
	BaseURL     string   `yaml:"base_url"`
	Category    string   `yaml:"category"`
	Participant string   `yaml:"participant"`
	MonthLayout string   `yaml:"month_layout"`
	Locators    Locators `yaml:"locators"`
}

type Locators struct {
	CalendarButton    browser.Chain `yaml:"calendar_button"`
	MonthHeader       browser.Chain `yaml:"month_header"`
	NextMonth         browser.Chain `yaml:"next_month"`
	DayButton         browser.Chain `yaml:"day_button"`
	CourtBlock        browser.Chain `yaml:"court_block"`
	SlotLabels        browser.Chain `yaml:"slot_labels"`
	TimeSlot          browser.Chain `yaml:"time_slot"`
	Duration          browser.Chain `yaml:"duration"`
	BookButton        browser.Chain `yaml:"book_button"`
	EmailInput        browser.Chain `yaml:"email_input"`
	PasswordInput     browser.Chain `yaml:"password_input"`
	LoginButton       browser.Chain `yaml:"login_button"`
	LoginError        browser.Chain `yaml:"login_error"`
	ParticipantSelect browser.Chain `yaml:"participant_select"`
	ParticipantOption browser.Chain `yaml:"participant_option"`
	ConfirmBooking    browser.Chain `yaml:"confirm_booking"`
	SendCode          browser.Chain `yaml:"send_code"`
	CodeInput         browser.Chain `yaml:"code_input"`
	SubmitCode        browser.Chain `yaml:"submit_code"`
	Confirmation      browser.Chain `yaml:"confirmation"`
}

// Default returns the built-in profile.
func Default() *Profile {
	p, err := Parse(defaultProfile)
	if err != nil {
		panic(fmt.Sprintf("site: invalid embedded profile: %v", err))
	}
	return p
}

// Load reads a profile from path. An empty path yields the built-in profile.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site profile: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Profile, error) {
	var p Profile

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse site profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p *Profile) Validate() error {
	var errs []error

	if p.BaseURL == "" {
		errs = append(errs, errors.New("base_url is required"))
	}

	if p.MonthLayout == "" {
		errs = append(errs, errors.New("month_layout is required"))
	}

	required := map[string]browser.Chain{
		"calendar_button":    p.Locators.CalendarButton,
		"month_header":       p.Locators.MonthHeader,
		"next_month":         p.Locators.NextMonth,
		"day_button":         p.Locators.DayButton,
		"court_block":        p.Locators.CourtBlock,
		"slot_labels":        p.Locators.SlotLabels,
		"time_slot":          p.Locators.TimeSlot,
		"book_button":        p.Locators.BookButton,
		"email_input":        p.Locators.EmailInput,
		"password_input":     p.Locators.PasswordInput,
		"login_button":       p.Locators.LoginButton,
		"participant_select": p.Locators.ParticipantSelect,
		"participant_option": p.Locators.ParticipantOption,
		"confirm_booking":    p.Locators.ConfirmBooking,
		"send_code":          p.Locators.SendCode,
		"code_input":         p.Locators.CodeInput,
		"submit_code":        p.Locators.SubmitCode,
		"confirmation":       p.Locators.Confirmation,
	}

	for name, chain := range required {
		if len(chain) == 0 {
			errs = append(errs, fmt.Errorf("locators.%v must have at least one entry", name))
		}
	}

	for _, loc := range p.Locators.CourtBlock {
		if !loc.IsXPath() {
			errs = append(errs, fmt.Errorf("locators.court_block %q must be an XPath expression", loc.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid site profile: %w", errors.Join(errs...))
	}

	return nil
}

func (p *Profile) Day(day int) browser.Chain {
	return p.Locators.DayButton.Expand("{day}", strconv.Itoa(day))
}

// CourtBlock locates the listing block of a court by exact name within the
// profile's category.
func (p *Profile) CourtBlock(court string) browser.Chain {
	return p.Locators.CourtBlock.Expand(
		"{court}", Literal(court),
		"{category}", Literal(p.Category),
	)
}

// SlotLabels locates every slot button inside a matched court block.
func (p *Profile) SlotLabels(block browser.Locator) browser.Chain {
	return p.Locators.SlotLabels.Expand("{block}", block.Query)
}

// TimeSlot locates the slot button labeled label inside a matched court block.
func (p *Profile) TimeSlot(block browser.Locator, label string) browser.Chain {
	return p.Locators.TimeSlot.Expand("{block}", block.Query, "{time}", Literal(label))
}

func (p *Profile) Duration(minutes int) browser.Chain {
	return p.Locators.Duration.Expand("{minutes}", strconv.Itoa(minutes))
}

func (p *Profile) ParticipantOption() browser.Chain {
	return p.Locators.ParticipantOption.Expand("{participant}", Literal(p.Participant))
}

// Literal quotes s as an XPath string literal.
func Literal(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}

	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	quoted := make([]string, 0, 2*len(parts))

	for i, part := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if part != "" {
			quoted = append(quoted, "'"+part+"'")
		}
	}

	return "concat(" + strings.Join(quoted, ", ") + ")"
}
