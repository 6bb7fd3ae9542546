package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Errors maps field names to the first validation message recorded for the
// field. An empty map means the draft may be submitted.
type Errors map[string]string

// Ok reports whether no violations were recorded.
func (e Errors) Ok() bool { return len(e) == 0 }

// Add records a message for a field. Later messages for the same field are
// dropped so the inline error always shows the first violation.
func (e Errors) Add(field, msg string) {
	if _, dup := e[field]; !dup {
		e[field] = msg
	}
}

// emailPattern is deliberately loose: one @, no whitespace, a dot in the
// domain part. Real verification belongs to the mail system.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Required records a violation when value is empty after trimming.
func Required(e Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, field+" is required")
	}
}

// MinLen records a violation when the trimmed value is shorter than n runes.
// Empty values are ignored; combine with Required for mandatory fields.
func MinLen(e Errors, field, value string, n int) {
	v := strings.TrimSpace(value)
	if v != "" && len([]rune(v)) < n {
		e.Add(field, fmt.Sprintf("%s must be at least %d characters", field, n))
	}
}

// MaxLen records a violation when the trimmed value exceeds n runes.
func MaxLen(e Errors, field, value string, n int) {
	if len([]rune(strings.TrimSpace(value))) > n {
		e.Add(field, fmt.Sprintf("%s must be at most %d characters", field, n))
	}
}

// Email records a violation when value does not look like an address.
func Email(e Errors, field, value string) {
	v := strings.TrimSpace(value)
	if v != "" && !emailPattern.MatchString(v) {
		e.Add(field, field+" must be a valid email address")
	}
}

// OneOf records a violation when value is outside the allowed set.
func OneOf(e Errors, field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, field+" must be one of: "+strings.Join(allowed, ", "))
}

// NotPast records a violation when date is before the start of now's day.
// Zero dates are ignored; combine with a required check when mandatory.
func NotPast(e Errors, field string, date, now time.Time) {
	if date.IsZero() {
		return
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		e.Add(field, field+" cannot be in the past")
	}
}

// ClampCount clamps a count field to zero or above.
func ClampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
