package validate_test

import (
	"testing"
	"time"

	"nexus/internal/application/validate"
)

// TestRules exercises each field rule on passing and failing input.
func TestRules(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("required", func(t *testing.T) {
		e := validate.Errors{}
		validate.Required(e, "title", "  ")
		validate.Required(e, "body", "hello")
		if _, ok := e["title"]; !ok {
			t.Error("expected violation for blank title")
		}
		if _, ok := e["body"]; ok {
			t.Error("did not expect violation for body")
		}
	})

	t.Run("min and max length", func(t *testing.T) {
		e := validate.Errors{}
		validate.MinLen(e, "question", "short?", 10)
		validate.MinLen(e, "answer", "this answer is definitely long enough", 20)
		validate.MaxLen(e, "summary", "0123456789", 5)
		if _, ok := e["question"]; !ok {
			t.Error("expected min-length violation for question")
		}
		if _, ok := e["answer"]; ok {
			t.Error("did not expect violation for answer")
		}
		if _, ok := e["summary"]; !ok {
			t.Error("expected max-length violation for summary")
		}
	})

	t.Run("min length ignores empty", func(t *testing.T) {
		e := validate.Errors{}
		validate.MinLen(e, "question", "", 10)
		if !e.Ok() {
			t.Errorf("empty value should not trip MinLen, got %v", e)
		}
	})

	t.Run("email", func(t *testing.T) {
		e := validate.Errors{}
		validate.Email(e, "email", "team@nexus.example")
		validate.Email(e, "bad", "not-an-address")
		if _, ok := e["email"]; ok {
			t.Error("valid address flagged")
		}
		if _, ok := e["bad"]; !ok {
			t.Error("invalid address not flagged")
		}
	})

	t.Run("one of", func(t *testing.T) {
		e := validate.Errors{}
		validate.OneOf(e, "category", "core", []string{"core", "specialized"})
		validate.OneOf(e, "type", "alumni", []string{"advisor", "leader"})
		if _, ok := e["category"]; ok {
			t.Error("allowed value flagged")
		}
		if _, ok := e["type"]; !ok {
			t.Error("disallowed value not flagged")
		}
	})

	t.Run("not past", func(t *testing.T) {
		e := validate.Errors{}
		validate.NotPast(e, "date", now.AddDate(0, 0, -1), now)
		if _, ok := e["date"]; !ok {
			t.Error("yesterday should be flagged")
		}
		e = validate.Errors{}
		validate.NotPast(e, "date", now, now) // same day is allowed
		validate.NotPast(e, "zero", time.Time{}, now)
		if !e.Ok() {
			t.Errorf("unexpected violations: %v", e)
		}
	})

	t.Run("first violation wins", func(t *testing.T) {
		e := validate.Errors{}
		e.Add("f", "first")
		e.Add("f", "second")
		if e["f"] != "first" {
			t.Errorf("expected first message kept, got %q", e["f"])
		}
	})
}

// TestClampCount tests the non-negative clamp for count fields.
func TestClampCount(t *testing.T) {
	if got := validate.ClampCount(-3); got != 0 {
		t.Errorf("ClampCount(-3) = %d, want 0", got)
	}
	if got := validate.ClampCount(40); got != 40 {
		t.Errorf("ClampCount(40) = %d, want 40", got)
	}
}
