package message

import (
	"errors"
	"time"

	"nexus/internal/domain/meta"
)

// Message types — partitions the collection into the advisor column and the
// student-leader column on the people page.
const (
	TypeAdvisor = "advisor"
	TypeLeader  = "leader"
)

// ValidTypes contains all valid message types.
var ValidTypes = []string{TypeAdvisor, TypeLeader}

// Domain errors
var (
	ErrEmptyAuthor = errors.New("message author name cannot be empty")
	ErrEmptyBody   = errors.New("message body cannot be empty")
	ErrInvalidType = errors.New("message type must be one of: advisor, leader")
)

// Message is a signed statement from an advisor or student leader shown on
// the public site.
type Message struct {
	ID         string        `json:"id,omitempty"`
	Type       string        `json:"type"`
	AuthorName string        `json:"authorName"`
	AuthorRole string        `json:"authorRole,omitempty"`
	Body       string        `json:"body"`
	ImageURL   string        `json:"imageUrl,omitempty"`
	Order      int           `json:"order"`
	IsActive   bool          `json:"isActive"`
	Meta       meta.Metadata `json:"metadata"`
	CreatedAt  time.Time     `json:"createdAt,omitempty"`
	UpdatedAt  time.Time     `json:"updatedAt,omitempty"`
}

// Validate checks the message's invariants.
func (m *Message) Validate() error {
	if m.AuthorName == "" {
		return ErrEmptyAuthor
	}
	if m.Body == "" {
		return ErrEmptyBody
	}
	if !isValidType(m.Type) {
		return ErrInvalidType
	}
	return nil
}

func isValidType(t string) bool {
	for _, v := range ValidTypes {
		if v == t {
			return true
		}
	}
	return false
}
