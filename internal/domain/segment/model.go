package segment

import (
	"errors"
	"time"

	"nexus/internal/domain/icon"
	"nexus/internal/domain/meta"
)

// Segment categories — the classification partitions the collection into
// display groups: "core" areas on top, everything else below.
const (
	CategoryCore        = "core"
	CategorySpecialized = "specialized"
	CategoryWorkshop    = "workshop"
	CategorySeminar     = "seminar"
)

// ValidCategories contains all valid segment categories.
var ValidCategories = []string{CategoryCore, CategorySpecialized, CategoryWorkshop, CategorySeminar}

// Domain errors
var (
	ErrEmptyTitle       = errors.New("segment title cannot be empty")
	ErrEmptyDescription = errors.New("segment description cannot be empty")
	ErrInvalidCategory  = errors.New("segment category must be one of: core, specialized, workshop, seminar")
	ErrInvalidIcon      = errors.New("segment icon is not part of the palette")
)

// Segment represents one activity area of the organization (e.g. "Machine
// Learning", "Competitive Programming"). An empty ID marks an unsaved
// draft; the ID is immutable once the store assigns it.
type Segment struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Icon        string        `json:"icon"`
	Features    []string      `json:"features,omitempty"`
	Order       int           `json:"order"`
	IsActive    bool          `json:"isActive"`
	Meta        meta.Metadata `json:"metadata"`
	CreatedAt   time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `json:"updatedAt,omitempty"`
}

// Validate checks the segment's invariants.
// PRE: none
// POST: returns nil if valid, the first violated invariant otherwise
func (s *Segment) Validate() error {
	if s.Title == "" {
		return ErrEmptyTitle
	}
	if s.Description == "" {
		return ErrEmptyDescription
	}
	if !isValidCategory(s.Category) {
		return ErrInvalidCategory
	}
	if s.Icon != "" && !icon.Valid(s.Icon) {
		return ErrInvalidIcon
	}
	return nil
}

// IsCore reports whether the segment belongs to the core display group.
func (s *Segment) IsCore() bool {
	return s.Category == CategoryCore
}

func isValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
