package event

import (
	"errors"
	"time"

	"nexus/internal/domain/meta"
)

// Event categories
const (
	CategoryWorkshop    = "workshop"
	CategorySeminar     = "seminar"
	CategoryCompetition = "competition"
	CategorySocial      = "social"
)

// ValidCategories contains all valid event categories.
var ValidCategories = []string{CategoryWorkshop, CategorySeminar, CategoryCompetition, CategorySocial}

// Domain errors
var (
	ErrEmptyTitle      = errors.New("event title cannot be empty")
	ErrEmptyDate       = errors.New("event date cannot be empty")
	ErrInvalidCategory = errors.New("event category must be one of: workshop, seminar, competition, social")
	ErrTimeOrder       = errors.New("event end time cannot be before start time")
)

// AgendaItem is one row of the event schedule.
type AgendaItem struct {
	Time     string `json:"time"` // 24-hour "HH:MM"
	Activity string `json:"activity"`
}

// Speaker is one guest speaker entry.
type Speaker struct {
	Name  string `json:"name"`
	Topic string `json:"topic,omitempty"`
}

// Event represents one organization event. Description is the short teaser
// shown on cards (bounded at 200 characters by the form); Body is long-form
// Markdown rendered on the detail page. StartTime/EndTime are 24-hour
// "HH:MM" strings; presenters format them as 12-hour clock.
type Event struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Body        string        `json:"body,omitempty"`
	Category    string        `json:"category"`
	Date        time.Time     `json:"date"`
	StartTime   string        `json:"startTime,omitempty"`
	EndTime     string        `json:"endTime,omitempty"`
	Venue       string        `json:"venue,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Agenda      []AgendaItem  `json:"agenda,omitempty"`
	Speakers    []Speaker     `json:"speakers,omitempty"`
	Capacity    int           `json:"capacity"`
	Order       int           `json:"order"`
	IsActive    bool          `json:"isActive"`
	Meta        meta.Metadata `json:"metadata"`
	CreatedAt   time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `json:"updatedAt,omitempty"`
}

// Validate checks the event's invariants.
// PRE: none
// POST: returns nil if valid, the first violated invariant otherwise
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrEmptyTitle
	}
	if e.Date.IsZero() {
		return ErrEmptyDate
	}
	if !isValidCategory(e.Category) {
		return ErrInvalidCategory
	}
	if e.StartTime != "" && e.EndTime != "" && e.EndTime < e.StartTime {
		return ErrTimeOrder
	}
	return nil
}

// IsUpcoming reports whether the event's date is today or later.
// PRE: now is the current time
// POST: Date field is not mutated
func (e *Event) IsUpcoming(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !e.Date.Before(today)
}

func isValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
