package faq

import (
	"errors"
	"time"

	"nexus/internal/domain/meta"
)

// FAQ categories
const (
	CategoryGeneral    = "general"
	CategoryMembership = "membership"
	CategoryEvents     = "events"
)

// ValidCategories contains all valid FAQ categories.
var ValidCategories = []string{CategoryGeneral, CategoryMembership, CategoryEvents}

// Minimum lengths enforced by the form, mirrored here as invariants.
const (
	MinQuestionLen = 10
	MinAnswerLen   = 20
)

// Domain errors
var (
	ErrShortQuestion   = errors.New("faq question must be at least 10 characters")
	ErrShortAnswer     = errors.New("faq answer must be at least 20 characters")
	ErrInvalidCategory = errors.New("faq category must be one of: general, membership, events")
)

// FAQ is one question/answer pair.
type FAQ struct {
	ID        string        `json:"id,omitempty"`
	Question  string        `json:"question"`
	Answer    string        `json:"answer"`
	Category  string        `json:"category"`
	Order     int           `json:"order"`
	IsActive  bool          `json:"isActive"`
	Meta      meta.Metadata `json:"metadata"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt,omitempty"`
}

// Validate checks the FAQ's invariants.
func (f *FAQ) Validate() error {
	if len([]rune(f.Question)) < MinQuestionLen {
		return ErrShortQuestion
	}
	if len([]rune(f.Answer)) < MinAnswerLen {
		return ErrShortAnswer
	}
	if !isValidCategory(f.Category) {
		return ErrInvalidCategory
	}
	return nil
}

func isValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
