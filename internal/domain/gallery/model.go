package gallery

import (
	"errors"
	"time"

	"nexus/internal/domain/meta"
)

// Gallery categories — drive the tab strip on the gallery page.
const (
	CategoryEvent    = "event"
	CategoryWorkshop = "workshop"
	CategoryTeam     = "team"
	CategoryCampus   = "campus"
)

// ValidCategories contains all valid gallery categories.
var ValidCategories = []string{CategoryEvent, CategoryWorkshop, CategoryTeam, CategoryCampus}

// MaxDescriptionLen bounds the caption shown under a gallery card.
const MaxDescriptionLen = 200

// Domain errors
var (
	ErrEmptyTitle        = errors.New("gallery item title cannot be empty")
	ErrEmptyImage        = errors.New("gallery item image URL cannot be empty")
	ErrInvalidCategory   = errors.New("gallery category must be one of: event, workshop, team, campus")
	ErrLongDescription   = errors.New("gallery description must be at most 200 characters")
)

// Item is one photo card in the gallery.
type Item struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	ImageURL    string        `json:"imageUrl"`
	Category    string        `json:"category"`
	Order       int           `json:"order"`
	IsActive    bool          `json:"isActive"`
	Meta        meta.Metadata `json:"metadata"`
	CreatedAt   time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `json:"updatedAt,omitempty"`
}

// Validate checks the item's invariants.
func (i *Item) Validate() error {
	if i.Title == "" {
		return ErrEmptyTitle
	}
	if i.ImageURL == "" {
		return ErrEmptyImage
	}
	if !isValidCategory(i.Category) {
		return ErrInvalidCategory
	}
	if len([]rune(i.Description)) > MaxDescriptionLen {
		return ErrLongDescription
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
