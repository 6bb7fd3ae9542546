package content_test

import (
	"strings"
	"testing"

	"nexus/internal/application/content"
)

func TestRender_BasicMarkdown(t *testing.T) {
	r := content.NewRenderer()
	got, err := r.Render("## Agenda\n\nBring a **laptop**.")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(got)
	if !strings.Contains(html, "<h2") || !strings.Contains(html, "Agenda") {
		t.Errorf("missing heading in %q", html)
	}
	if !strings.Contains(html, "<strong>laptop</strong>") {
		t.Errorf("missing bold text in %q", html)
	}
}

func TestRender_StripsScript(t *testing.T) {
	r := content.NewRenderer()
	got, err := r.Render("hello <script>alert('x')</script> world")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(got), "<script") {
		t.Errorf("script survived sanitization: %q", got)
	}
	if !strings.Contains(string(got), "hello") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestRender_Empty(t *testing.T) {
	r := content.NewRenderer()
	got, err := r.Render("")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "" {
		t.Errorf("empty input rendered as %q", got)
	}
}
