package slide

import (
	"errors"
	"time"

	"nexus/internal/domain/meta"
)

// Domain errors
var (
	ErrEmptyTitle = errors.New("slide title cannot be empty")
	ErrEmptyImage = errors.New("slide image URL cannot be empty")
	ErrDanglingCTA = errors.New("slide CTA label requires a CTA URL")
)

// Slide is one hero-carousel entry on the home page.
type Slide struct {
	ID        string        `json:"id,omitempty"`
	Title     string        `json:"title"`
	Subtitle  string        `json:"subtitle,omitempty"`
	ImageURL  string        `json:"imageUrl"`
	CTALabel  string        `json:"ctaLabel,omitempty"`
	CTAURL    string        `json:"ctaUrl,omitempty"`
	Order     int           `json:"order"`
	IsActive  bool          `json:"isActive"`
	Meta      meta.Metadata `json:"metadata"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt,omitempty"`
}

// Validate checks the slide's invariants.
func (s *Slide) Validate() error {
	if s.Title == "" {
		return ErrEmptyTitle
	}
	if s.ImageURL == "" {
		return ErrEmptyImage
	}
	if s.CTALabel != "" && s.CTAURL == "" {
		return ErrDanglingCTA
	}
	return nil
}

// HasCTA reports whether the slide carries a call-to-action button.
func (s *Slide) HasCTA() bool {
	return s.CTALabel != "" && s.CTAURL != ""
}
