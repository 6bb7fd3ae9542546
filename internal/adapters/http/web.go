// Package web is the HTTP adapter: the JSON API for the public site and the
// admin panels, the middleware chain, and the theme cookie. Handlers hold no
// domain logic; they decode, call the application layer, and encode.
package web

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"nexus/internal/adapters/email"
	"nexus/internal/adapters/http/middleware"
	"nexus/internal/application/content"
	"nexus/internal/application/orchestrators"
	"nexus/internal/application/panel"
	"nexus/internal/application/panels"
	"nexus/internal/application/theme"
	"nexus/internal/domain/event"
	"nexus/internal/domain/faq"
	"nexus/internal/domain/gallery"
	"nexus/internal/domain/member"
	"nexus/internal/domain/message"
	"nexus/internal/domain/segment"
	"nexus/internal/domain/slide"
)

// Stores groups the per-resource accessors the mux is built on. In
// production these are remote API resources; in dev mode they are the
// local SQLite stores.
type Stores struct {
	Segments panel.Store[segment.Segment]
	Messages panel.Store[message.Message]
	Slides   panel.Store[slide.Slide]
	FAQs     panel.Store[faq.FAQ]
	Gallery  panel.Store[gallery.Item]
	Members  panel.Store[member.Member]
	Events   panel.Store[event.Event]
}

// Deps are the external dependencies of the HTTP adapter.
type Deps struct {
	Stores    Stores
	Inquiries orchestrators.InquiryStore
	Sender    email.Sender
	NotifyTo  string

	Theme    *theme.Provider
	Markdown *content.Renderer
	Now      func() time.Time
}

// NewMux builds the full handler: routes wrapped in the middleware chain.
// PRE: every field of deps.Stores is non-nil
// POST: the returned handler serves /api/... with security headers, CSRF
// protection on non-JSON mutations, and per-IP rate limiting applied
func NewMux(deps Deps) (http.Handler, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Theme == nil {
		deps.Theme = theme.NewProvider(theme.Light)
	}
	if deps.Markdown == nil {
		deps.Markdown = content.NewRenderer()
	}

	csrfKey, err := loadCSRFKey()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	registerPanel(mux, "segments", panels.Segments(deps.Stores.Segments))
	registerPanel(mux, "messages", panels.Messages(deps.Stores.Messages))
	registerPanel(mux, "carousel", panels.Slides(deps.Stores.Slides))
	registerPanel(mux, "faqs", panels.FAQs(deps.Stores.FAQs))
	registerPanel(mux, "gallery", panels.Gallery(deps.Stores.Gallery))
	registerPanel(mux, "members", panels.Members(deps.Stores.Members))
	registerPanel(mux, "events", panels.Events(deps.Stores.Events, deps.Now))

	registerPublic(mux, deps)

	limiter := middleware.NewRateLimiter(120, time.Minute)
	trustedOrigins := []string{"localhost:8080", "127.0.0.1:8080"}

	return middleware.Chain(mux,
		middleware.RateLimit(limiter),
		middleware.CSRF(csrfKey, trustedOrigins),
		middleware.SecurityHeaders,
	), nil
}

// loadCSRFKey reads the 32-byte CSRF key from NEXUS_CSRF_KEY. Outside
// production a missing key is replaced by a random one so local checkouts
// run without setup; in production it is an error.
func loadCSRFKey() ([]byte, error) {
	if key := os.Getenv("NEXUS_CSRF_KEY"); key != "" {
		if len(key) < 32 {
			return nil, fmt.Errorf("NEXUS_CSRF_KEY must be at least 32 bytes, got %d", len(key))
		}
		return []byte(key)[:32], nil
	}
	if os.Getenv("NEXUS_ENV") == "production" {
		return nil, fmt.Errorf("NEXUS_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate CSRF key: %w", err)
	}
	slog.Warn("csrf_key_generated", "reason", "NEXUS_CSRF_KEY not set, sessions reset on restart")
	return key, nil
}
