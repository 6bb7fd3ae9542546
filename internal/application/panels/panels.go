// Package panels wires one panel per managed resource: the generic engine
// from panel plus this package's field rules and normalization closures.
// Each constructor is the single place a resource's form behavior is defined.
package panels

import (
	"strings"
	"time"

	"nexus/internal/application/panel"
	"nexus/internal/application/textutil"
	"nexus/internal/application/validate"
	"nexus/internal/domain/event"
	"nexus/internal/domain/faq"
	"nexus/internal/domain/gallery"
	"nexus/internal/domain/icon"
	"nexus/internal/domain/member"
	"nexus/internal/domain/message"
	"nexus/internal/domain/segment"
	"nexus/internal/domain/slide"
)

// Segments builds the activity-area panel.
func Segments(store panel.Store[segment.Segment]) *panel.Panel[segment.Segment] {
	return panel.New("segments", store, panel.Hooks[segment.Segment]{
		ID:         func(s segment.Segment) string { return s.ID },
		SetID:      func(s *segment.Segment, id string) { s.ID = id },
		Order:      func(s segment.Segment) int { return s.Order },
		SetOrder:   func(s *segment.Segment, n int) { s.Order = n },
		FlipActive: func(s *segment.Segment) { s.IsActive = !s.IsActive },
		Validate: func(s segment.Segment, creating bool) validate.Errors {
			errs := validate.Errors{}
			validate.Required(errs, "title", s.Title)
			validate.Required(errs, "description", s.Description)
			validate.OneOf(errs, "category", s.Category, segment.ValidCategories)
			if s.Icon != "" && !icon.Valid(s.Icon) {
				errs.Add("icon", "icon is not part of the palette")
			}
			return errs
		},
		Normalize: func(s *segment.Segment, creating bool) {
			s.Title = strings.TrimSpace(s.Title)
			s.Description = strings.TrimSpace(s.Description)
			if s.Slug == "" {
				s.Slug = textutil.Slugify(s.Title)
			}
			s.Features = cleanLines(s.Features)
		},
	})
}

// Messages builds the advisor/leader statements panel.
func Messages(store panel.Store[message.Message]) *panel.Panel[message.Message] {
	return panel.New("messages", store, panel.Hooks[message.Message]{
		ID:         func(m message.Message) string { return m.ID },
		SetID:      func(m *message.Message, id string) { m.ID = id },
		Order:      func(m message.Message) int { return m.Order },
		SetOrder:   func(m *message.Message, n int) { m.Order = n },
		FlipActive: func(m *message.Message) { m.IsActive = !m.IsActive },
		Validate: func(m message.Message, creating bool) validate.Errors {
			errs := validate.Errors{}
			validate.Required(errs, "authorName", m.AuthorName)
			validate.Required(errs, "body", m.Body)
			validate.OneOf(errs, "type", m.Type, message.ValidTypes)
			return errs
		},
		Normalize: func(m *message.Message, creating bool) {
			m.AuthorName = strings.TrimSpace(m.AuthorName)
			m.AuthorRole = strings.TrimSpace(m.AuthorRole)
			m.Body = strings.TrimSpace(m.Body)
		},
	})
}

// Slides builds the hero-carousel panel.
func Slides(store panel.Store[slide.Slide]) *panel.Panel[slide.Slide] {
	return panel.New("slides", store, panel.Hooks[slide.Slide]{
		ID:         func(s slide.Slide) string { return s.ID },
		SetID:      func(s *slide.Slide, id string) { s.ID = id },
		Order:      func(s slide.Slide) int { return s.Order },
		SetOrder:   func(s *slide.Slide, n int) { s.Order = n },
		FlipActive: func(s *slide.Slide) { s.IsActive = !s.IsActive },
		Validate: func(s slide.Slide, creating bool) validate.Errors {
			errs := validate.Errors{}
			validate.Required(errs, "title", s.Title)
			validate.Required(errs, "imageUrl", s.ImageURL)
			if strings.TrimSpace(s.CTALabel) != "" && strings.TrimSpace(s.CTAURL) == "" {
				errs.Add("ctaUrl", "ctaUrl is required when a CTA label is set")
			}
			return errs
		},
		Normalize: func(s *slide.Slide, creating bool) {
			s.Title = strings.TrimSpace(s.Title)
			s.Subtitle = strings.TrimSpace(s.Subtitle)
			s.CTALabel = strings.TrimSpace(s.CTALabel)
			s.CTAURL = strings.TrimSpace(s.CTAURL)
		},
	})
}

// FAQs builds the question/answer panel.
func FAQs(store panel.Store[faq.FAQ]) *panel.Panel[faq.FAQ] {
	return panel.New("faqs", store, panel.Hooks[faq.FAQ]{
		ID:         func(f faq.FAQ) string { return f.ID },
		SetID:      func(f *faq.FAQ, id string) { f.ID = id },
		Order:      func(f faq.FAQ) int { return f.Order },
		SetOrder:   func(f *faq.FAQ, n int) { f.Order = n },
		FlipActive: func(f *faq.FAQ) { f.IsActive = !f.IsActive },
		Validate: func(f faq.FAQ, creating bool) validate.Errors {
			errs := validate.Errors{}
			validate.Required(errs, "question", f.Question)
			validate.MinLen(errs, "question", f.Question, faq.MinQuestionLen)
			validate.Required(errs, "answer", f.Answer)
			validate.MinLen(errs, "answer", f.Answer, faq.MinAnswerLen)
			validate.OneOf(errs, "category", f.Category, faq.ValidCategories)
			return errs
		},
		Normalize: func(f *faq.FAQ, creating bool) {
			f.Question = strings.TrimSpace(f.Question)
			f.Answer = strings.TrimSpace(f.Answer)
		},
	})
}

// Gallery builds the photo-card panel.
func Gallery(store panel.Store[gallery.Item]) *panel.Panel[gallery.Item] {
	return panel.New("gallery", store, panel.Hooks[gallery.Item]{
		ID:         func(i gallery.Item) string { return i.ID },
		SetID:      func(i *gallery.Item, id string) { i.ID = id },
		Order:      func(i gallery.Item) int { return i.Order },
		SetOrder:   func(i *gallery.Item, n int) { i.Order = n },
		FlipActive: func(i *gallery.Item) { i.IsActive = !i.IsActive },
		Validate: func(i gallery.Item, creating bool) validate.Errors {
			errs := validate.Errors{}
			validate.Required(errs, "title", i.Title)
			validate.Required(errs, "imageUrl", i.ImageURL)
			validate.OneOf(errs, "category", i.Category, gallery.ValidCategories)
			validate.MaxLen(errs, "description", i.Description, gallery.MaxDescriptionLen)
			return errs
		},
		Normalize: func(i *gallery.Item, creating bool) {
			i.Title = strings.TrimSpace(i.Title)
			i.Description = strings.TrimSpace(i.Description)
		},
	})
}

// Members builds the team-page panel.
func Members(store panel.Store[member.Member]) *panel.Panel[member.Member] {
	return panel.New("members", store, panel.Hooks[member.Member]{
		ID:         func(m member.Member) string { return m.ID },
		SetID:      func(m *member.Member, id string) { m.ID = id },
		Order:      func(m member.Member) int { return m.Order },
		SetOrder:   func(m *member.Member, n int) { m.Order = n },
		FlipActive: func(m *member.Member) { m.IsActive = !m.IsActive },
		Validate: func(m member.Member, creating bool) validate.Errors {
			errs := validate.Errors{}
			validate.Required(errs, "name", m.Name)
			validate.Required(errs, "role", m.Role)
			validate.Email(errs, "email", m.Email)
			for _, s := range m.Socials {
				validate.OneOf(errs, "socials", s.Platform, member.ValidPlatforms)
				validate.Required(errs, "socials", s.URL)
			}
			return errs
		},
		Normalize: func(m *member.Member, creating bool) {
			m.Name = strings.TrimSpace(m.Name)
			m.Role = strings.TrimSpace(m.Role)
			m.Email = strings.TrimSpace(m.Email)
			m.Year = strings.TrimSpace(m.Year)
			for i := range m.Socials {
				m.Socials[i].URL = strings.TrimSpace(m.Socials[i].URL)
			}
		},
	})
}

// Events builds the events panel. now feeds the not-in-the-past rule, which
// applies to creates only so past events stay editable.
func Events(store panel.Store[event.Event], now func() time.Time) *panel.Panel[event.Event] {
	return panel.New("events", store, panel.Hooks[event.Event]{
		ID:         func(e event.Event) string { return e.ID },
		SetID:      func(e *event.Event, id string) { e.ID = id },
		Order:      func(e event.Event) int { return e.Order },
		SetOrder:   func(e *event.Event, n int) { e.Order = n },
		FlipActive: func(e *event.Event) { e.IsActive = !e.IsActive },
		Validate: func(e event.Event, creating bool) validate.Errors {
			errs := validate.Errors{}
			validate.Required(errs, "title", e.Title)
			if e.Date.IsZero() {
				errs.Add("date", "date is required")
			} else if creating {
				validate.NotPast(errs, "date", e.Date, now())
			}
			validate.OneOf(errs, "category", e.Category, event.ValidCategories)
			validate.MaxLen(errs, "description", e.Description, 200)
			if e.StartTime != "" && e.EndTime != "" && e.EndTime < e.StartTime {
				errs.Add("endTime", "endTime cannot be before startTime")
			}
			return errs
		},
		Normalize: func(e *event.Event, creating bool) {
			e.Title = strings.TrimSpace(e.Title)
			e.Description = strings.TrimSpace(e.Description)
			e.Venue = strings.TrimSpace(e.Venue)
			if e.Slug == "" {
				e.Slug = textutil.Slugify(e.Title)
			}
			e.Capacity = validate.ClampCount(e.Capacity)
			e.Agenda = cleanAgenda(e.Agenda)
			e.Speakers = cleanSpeakers(e.Speakers)
		},
	})
}

// cleanLines trims each entry and drops the empty ones.
func cleanLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// cleanAgenda drops rows with no activity; blank rows come from the form's
// trailing empty row.
func cleanAgenda(items []event.AgendaItem) []event.AgendaItem {
	var out []event.AgendaItem
	for _, item := range items {
		item.Activity = strings.TrimSpace(item.Activity)
		item.Time = strings.TrimSpace(item.Time)
		if item.Activity != "" {
			out = append(out, item)
		}
	}
	return out
}

func cleanSpeakers(speakers []event.Speaker) []event.Speaker {
	var out []event.Speaker
	for _, s := range speakers {
		s.Name = strings.TrimSpace(s.Name)
		s.Topic = strings.TrimSpace(s.Topic)
		if s.Name != "" {
			out = append(out, s)
		}
	}
	return out
}
