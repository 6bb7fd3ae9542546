package member

import (
	"errors"
	"time"

	"nexus/internal/domain/meta"
)

// Social platforms offered by the profile form. Closed set; the presenter
// maps each to a fixed link style.
const (
	PlatformGitHub   = "github"
	PlatformLinkedIn = "linkedin"
	PlatformTwitter  = "twitter"
	PlatformWebsite  = "website"
)

// ValidPlatforms contains all valid social platforms.
var ValidPlatforms = []string{PlatformGitHub, PlatformLinkedIn, PlatformTwitter, PlatformWebsite}

// Domain errors
var (
	ErrEmptyName       = errors.New("member name cannot be empty")
	ErrEmptyRole       = errors.New("member role cannot be empty")
	ErrInvalidPlatform = errors.New("member social platform is not supported")
	ErrEmptySocialURL  = errors.New("member social link needs a URL")
)

// SocialLink is one profile link on a member card.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Member is one person on the team page.
type Member struct {
	ID        string        `json:"id,omitempty"`
	Name      string        `json:"name"`
	Role      string        `json:"role"`
	Email     string        `json:"email,omitempty"`
	ImageURL  string        `json:"imageUrl,omitempty"`
	Year      string        `json:"year,omitempty"` // graduating class, free text
	Socials   []SocialLink  `json:"socials,omitempty"`
	Order     int           `json:"order"`
	IsActive  bool          `json:"isActive"`
	Meta      meta.Metadata `json:"metadata"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt,omitempty"`
}

// Validate checks the member's invariants.
// PRE: none
// POST: returns nil if valid, the first violated invariant otherwise
func (m *Member) Validate() error {
	if m.Name == "" {
		return ErrEmptyName
	}
	if m.Role == "" {
		return ErrEmptyRole
	}
	for _, s := range m.Socials {
		if !isValidPlatform(s.Platform) {
			return ErrInvalidPlatform
		}
		if s.URL == "" {
			return ErrEmptySocialURL
		}
	}
	return nil
}

func isValidPlatform(p string) bool {
	for _, v := range ValidPlatforms {
		if v == p {
			return true
		}
	}
	return false
}
