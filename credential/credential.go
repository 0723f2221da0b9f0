package credential

import (
	"fmt"
	"strings"
)

type Credential struct {
	Email                   string `json:"email"`
	Password                string `json:"password"`
	PhoneNumber             string `json:"phoneNumber"`
	PlaytimeDurationMinutes int    `json:"playtimeDurationMinutes"`
}

// Validate checks the fields needed to log in and receive the SMS code.
func (c Credential) Validate() error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" || strings.TrimSpace(c.PhoneNumber) == "" {
		return fmt.Errorf("%w: email, password and phone number are required", ErrInvalidCredential)
	}

	if c.PlaytimeDurationMinutes != 60 && c.PlaytimeDurationMinutes != 90 {
		return fmt.Errorf("%w: playtime duration must be 60 or 90 minutes, got %d", ErrInvalidCredential, c.PlaytimeDurationMinutes)
	}

	return nil
}

// NormalizePhone strips everything but digits and a leading plus.
func NormalizePhone(phone string) string {
	var b strings.Builder

	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}
