package slide_test

import (
	"testing"

	"nexus/internal/domain/slide"
)

// TestSlide_Validate tests validation of Slide.
func TestSlide_Validate(t *testing.T) {
	valid := slide.Slide{Title: "Welcome Week", ImageURL: "https://img.example/hero.jpg"}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	noTitle := slide.Slide{ImageURL: "https://img.example/hero.jpg"}
	if err := noTitle.Validate(); err != slide.ErrEmptyTitle {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}

	noImage := slide.Slide{Title: "t"}
	if err := noImage.Validate(); err != slide.ErrEmptyImage {
		t.Errorf("expected ErrEmptyImage, got %v", err)
	}

	dangling := slide.Slide{Title: "t", ImageURL: "u", CTALabel: "Join"}
	if err := dangling.Validate(); err != slide.ErrDanglingCTA {
		t.Errorf("expected ErrDanglingCTA, got %v", err)
	}
}

// TestSlide_HasCTA tests CTA presence detection.
func TestSlide_HasCTA(t *testing.T) {
	s := slide.Slide{CTALabel: "Join", CTAURL: "/join"}
	if !s.HasCTA() {
		t.Error("expected HasCTA")
	}
	if (&slide.Slide{CTALabel: "Join"}).HasCTA() {
		t.Error("label without URL should not count as CTA")
	}
}
