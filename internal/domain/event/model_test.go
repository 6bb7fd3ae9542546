package event_test

import (
	"testing"
	"time"

	"nexus/internal/domain/event"
)

var eventDate = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

// TestEvent_Validate tests validation of Event.
func TestEvent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		event   event.Event
		wantErr error
	}{
		{
			name: "valid workshop",
			event: event.Event{
				Title: "Intro to Go", Category: event.CategoryWorkshop, Date: eventDate,
				StartTime: "14:00", EndTime: "16:00",
			},
			wantErr: nil,
		},
		{
			name:    "empty title",
			event:   event.Event{Category: event.CategoryWorkshop, Date: eventDate},
			wantErr: event.ErrEmptyTitle,
		},
		{
			name:    "empty date",
			event:   event.Event{Title: "t", Category: event.CategorySeminar},
			wantErr: event.ErrEmptyDate,
		},
		{
			name:    "invalid category",
			event:   event.Event{Title: "t", Category: "rave", Date: eventDate},
			wantErr: event.ErrInvalidCategory,
		},
		{
			name: "end before start",
			event: event.Event{
				Title: "t", Category: event.CategorySocial, Date: eventDate,
				StartTime: "18:00", EndTime: "17:00",
			},
			wantErr: event.ErrTimeOrder,
		},
		{
			name: "times optional",
			event: event.Event{
				Title: "t", Category: event.CategoryCompetition, Date: eventDate,
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.event.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestEvent_IsUpcoming tests the upcoming/past split.
func TestEvent_IsUpcoming(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	future := event.Event{Date: now.AddDate(0, 0, 7)}
	sameDay := event.Event{Date: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)}
	past := event.Event{Date: now.AddDate(0, 0, -1)}

	if !future.IsUpcoming(now) {
		t.Error("next week should be upcoming")
	}
	if !sameDay.IsUpcoming(now) {
		t.Error("today should still be upcoming")
	}
	if past.IsUpcoming(now) {
		t.Error("yesterday should not be upcoming")
	}
}
