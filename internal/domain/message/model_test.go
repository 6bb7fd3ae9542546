package message_test

import (
	"testing"

	"nexus/internal/domain/message"
)

// TestMessage_Validate tests validation of Message.
func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		message message.Message
		wantErr error
	}{
		{
			name: "valid advisor message",
			message: message.Message{
				Type: message.TypeAdvisor, AuthorName: "Dr. Rao",
				AuthorRole: "Faculty Advisor", Body: "Proud of this team.",
			},
			wantErr: nil,
		},
		{
			name:    "empty author",
			message: message.Message{Type: message.TypeLeader, Body: "b"},
			wantErr: message.ErrEmptyAuthor,
		},
		{
			name:    "empty body",
			message: message.Message{Type: message.TypeLeader, AuthorName: "a"},
			wantErr: message.ErrEmptyBody,
		},
		{
			name:    "invalid type",
			message: message.Message{Type: "mascot", AuthorName: "a", Body: "b"},
			wantErr: message.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.message.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
