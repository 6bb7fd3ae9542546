package inquiry

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptyName  = errors.New("inquiry name cannot be empty")
	ErrEmptyEmail = errors.New("inquiry email cannot be empty")
	ErrEmptyBody  = errors.New("inquiry body cannot be empty")
)

// Inquiry is one submission of the public contact form. Unlike the managed
// resources it is append-only: no editing, ordering, or toggling.
type Inquiry struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Validate checks the inquiry's invariants.
func (i *Inquiry) Validate() error {
	if i.Name == "" {
		return ErrEmptyName
	}
	if i.Email == "" {
		return ErrEmptyEmail
	}
	if i.Body == "" {
		return ErrEmptyBody
	}
	return nil
}
