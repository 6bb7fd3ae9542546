package panels_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"nexus/internal/application/panel"
	"nexus/internal/application/panels"
	"nexus/internal/domain/event"
	"nexus/internal/domain/faq"
	"nexus/internal/domain/gallery"
	"nexus/internal/domain/member"
	"nexus/internal/domain/segment"
	"nexus/internal/domain/slide"
)

var fixedNow = func() time.Time {
	return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
}

// memStore is a slice-backed accessor for exercising the wired panels.
type memStore[T any] struct {
	items []T
	seq   int
	setID func(*T, string)
	getID func(T) string
}

func (s *memStore[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *memStore[T]) Create(ctx context.Context, item T) (T, error) {
	s.seq++
	s.setID(&item, fmt.Sprintf("m-%d", s.seq))
	s.items = append(s.items, item)
	return item, nil
}

func (s *memStore[T]) Update(ctx context.Context, id string, item T) (T, error) {
	for i := range s.items {
		if s.getID(s.items[i]) == id {
			s.setID(&item, id)
			s.items[i] = item
			return item, nil
		}
	}
	var zero T
	return zero, errors.New("memStore: no such record")
}

func (s *memStore[T]) Delete(ctx context.Context, id string) error {
	for i := range s.items {
		if s.getID(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return errors.New("memStore: no such record")
}

func (s *memStore[T]) ToggleActive(ctx context.Context, id string) error {
	return nil
}

func segmentStore() *memStore[segment.Segment] {
	return &memStore[segment.Segment]{
		setID: func(s *segment.Segment, id string) { s.ID = id },
		getID: func(s segment.Segment) string { return s.ID },
	}
}

func submitSegment(t *testing.T, p *panel.Panel[segment.Segment], draft segment.Segment) segment.Segment {
	t.Helper()
	p.Form.OpenNew(segment.Segment{})
	if err := p.Form.SetDraft(draft); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	saved, err := p.Form.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return saved
}

func TestSegments_SlugDerivedFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Machine Learning", "machine-learning"},
		{"AI & ML: Intro!!", "ai-ml-intro"},
		{"  Cloud   Computing  ", "cloud-computing"},
	}
	p := panels.Segments(segmentStore())
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	for _, tc := range tests {
		saved := submitSegment(t, p, segment.Segment{
			Title:       tc.title,
			Description: "what this area does",
			Category:    segment.CategoryCore,
		})
		if saved.Slug != tc.want {
			t.Errorf("Slug for %q = %q, want %q", tc.title, saved.Slug, tc.want)
		}
	}
}

func TestSegments_ExplicitSlugWins(t *testing.T) {
	p := panels.Segments(segmentStore())
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	saved := submitSegment(t, p, segment.Segment{
		Title:       "Machine Learning",
		Slug:        "ml",
		Description: "models and data",
		Category:    segment.CategoryCore,
	})
	if saved.Slug != "ml" {
		t.Errorf("Slug = %q, want the explicit slug kept", saved.Slug)
	}
}

func TestSegments_FeatureListCleaned(t *testing.T) {
	p := panels.Segments(segmentStore())
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	saved := submitSegment(t, p, segment.Segment{
		Title:       "Robotics",
		Description: "hands-on builds",
		Category:    segment.CategorySpecialized,
		Features:    []string{" weekly labs ", "", "  ", "competitions"},
	})
	if len(saved.Features) != 2 || saved.Features[0] != "weekly labs" || saved.Features[1] != "competitions" {
		t.Errorf("Features = %q, want trimmed non-empty entries", saved.Features)
	}
}

func TestSegments_InvalidIconBlocked(t *testing.T) {
	p := panels.Segments(segmentStore())
	p.Form.OpenNew(segment.Segment{})
	if err := p.Form.SetDraft(segment.Segment{
		Title:       "Robotics",
		Description: "hands-on builds",
		Category:    segment.CategoryCore,
		Icon:        "dragon",
	}); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	if _, err := p.Form.Submit(context.Background()); !errors.Is(err, panel.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if _, ok := p.Form.FieldErrors()["icon"]; !ok {
		t.Errorf("expected icon error, got %v", p.Form.FieldErrors())
	}
}

func TestEvents_Validation(t *testing.T) {
	future := fixedNow().AddDate(0, 1, 0)
	past := fixedNow().AddDate(0, -1, 0)

	tests := []struct {
		name      string
		draft     event.Event
		wantField string
	}{
		{
			name:      "missing date",
			draft:     event.Event{Title: "Hack Night", Category: event.CategoryWorkshop},
			wantField: "date",
		},
		{
			name:      "past date on create",
			draft:     event.Event{Title: "Hack Night", Category: event.CategoryWorkshop, Date: past},
			wantField: "date",
		},
		{
			name:      "end before start",
			draft:     event.Event{Title: "Hack Night", Category: event.CategoryWorkshop, Date: future, StartTime: "18:00", EndTime: "17:00"},
			wantField: "endTime",
		},
		{
			name:      "unknown category",
			draft:     event.Event{Title: "Hack Night", Category: "party", Date: future},
			wantField: "category",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &memStore[event.Event]{
				setID: func(e *event.Event, id string) { e.ID = id },
				getID: func(e event.Event) string { return e.ID },
			}
			p := panels.Events(store, fixedNow)
			p.Form.OpenNew(event.Event{})
			if err := p.Form.SetDraft(tc.draft); err != nil {
				t.Fatalf("SetDraft: %v", err)
			}
			if _, err := p.Form.Submit(context.Background()); !errors.Is(err, panel.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			if _, ok := p.Form.FieldErrors()[tc.wantField]; !ok {
				t.Errorf("expected %q error, got %v", tc.wantField, p.Form.FieldErrors())
			}
		})
	}
}

func TestEvents_EditPastEventAllowed(t *testing.T) {
	past := fixedNow().AddDate(0, -2, 0)
	store := &memStore[event.Event]{
		items: []event.Event{{
			ID: "e1", Title: "Old Seminar", Category: event.CategorySeminar,
			Date: past, Order: 1, IsActive: true,
		}},
		setID: func(e *event.Event, id string) { e.ID = id },
		getID: func(e event.Event) string { return e.ID },
	}
	p := panels.Events(store, fixedNow)
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if err := p.Form.OpenEdit("e1"); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	draft := p.Form.Draft()
	draft.Venue = "Auditorium B"
	if err := p.Form.SetDraft(draft); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	saved, err := p.Form.Submit(context.Background())
	if err != nil {
		t.Fatalf("editing a past event should pass: %v", err)
	}
	if saved.Order != 1 {
		t.Errorf("Order = %d, want 1", saved.Order)
	}
}

func TestEvents_NormalizeClampsAndCleans(t *testing.T) {
	store := &memStore[event.Event]{
		setID: func(e *event.Event, id string) { e.ID = id },
		getID: func(e event.Event) string { return e.ID },
	}
	p := panels.Events(store, fixedNow)
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	p.Form.OpenNew(event.Event{})
	if err := p.Form.SetDraft(event.Event{
		Title:    "Intro to Go",
		Category: event.CategoryWorkshop,
		Date:     fixedNow().AddDate(0, 0, 7),
		Capacity: -5,
		Agenda: []event.AgendaItem{
			{Time: "18:00", Activity: " Welcome "},
			{Time: "", Activity: "   "},
		},
		Speakers: []event.Speaker{{Name: "  "}, {Name: " Dana Ruiz ", Topic: "tooling"}},
	}); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	saved, err := p.Form.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if saved.Capacity != 0 {
		t.Errorf("Capacity = %d, want clamped to 0", saved.Capacity)
	}
	if saved.Slug != "intro-to-go" {
		t.Errorf("Slug = %q, want intro-to-go", saved.Slug)
	}
	if len(saved.Agenda) != 1 || saved.Agenda[0].Activity != "Welcome" {
		t.Errorf("Agenda = %+v, want single trimmed row", saved.Agenda)
	}
	if len(saved.Speakers) != 1 || saved.Speakers[0].Name != "Dana Ruiz" {
		t.Errorf("Speakers = %+v, want single trimmed entry", saved.Speakers)
	}
}

func TestFAQs_MinimumLengths(t *testing.T) {
	store := &memStore[faq.FAQ]{
		setID: func(f *faq.FAQ, id string) { f.ID = id },
		getID: func(f faq.FAQ) string { return f.ID },
	}
	p := panels.FAQs(store)
	p.Form.OpenNew(faq.FAQ{})
	if err := p.Form.SetDraft(faq.FAQ{
		Question: "Too short",
		Answer:   "Also short",
		Category: faq.CategoryGeneral,
	}); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	if _, err := p.Form.Submit(context.Background()); !errors.Is(err, panel.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	errs := p.Form.FieldErrors()
	if _, ok := errs["question"]; !ok {
		t.Errorf("expected question error, got %v", errs)
	}
	if _, ok := errs["answer"]; !ok {
		t.Errorf("expected answer error, got %v", errs)
	}
}

func TestGallery_CaptionBound(t *testing.T) {
	long := make([]byte, gallery.MaxDescriptionLen+1)
	for i := range long {
		long[i] = 'x'
	}
	store := &memStore[gallery.Item]{
		setID: func(i *gallery.Item, id string) { i.ID = id },
		getID: func(i gallery.Item) string { return i.ID },
	}
	p := panels.Gallery(store)
	p.Form.OpenNew(gallery.Item{})
	if err := p.Form.SetDraft(gallery.Item{
		Title:       "Hackathon 2025",
		ImageURL:    "https://img.example/h.jpg",
		Category:    gallery.CategoryEvent,
		Description: string(long),
	}); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	if _, err := p.Form.Submit(context.Background()); !errors.Is(err, panel.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if _, ok := p.Form.FieldErrors()["description"]; !ok {
		t.Errorf("expected description error, got %v", p.Form.FieldErrors())
	}
}

func TestMembers_SocialRules(t *testing.T) {
	store := &memStore[member.Member]{
		setID: func(m *member.Member, id string) { m.ID = id },
		getID: func(m member.Member) string { return m.ID },
	}
	p := panels.Members(store)
	p.Form.OpenNew(member.Member{})
	if err := p.Form.SetDraft(member.Member{
		Name:    "Avery Lin",
		Role:    "President",
		Email:   "not-an-address",
		Socials: []member.SocialLink{{Platform: "myspace", URL: "https://x.example"}},
	}); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	if _, err := p.Form.Submit(context.Background()); !errors.Is(err, panel.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	errs := p.Form.FieldErrors()
	if _, ok := errs["email"]; !ok {
		t.Errorf("expected email error, got %v", errs)
	}
	if _, ok := errs["socials"]; !ok {
		t.Errorf("expected socials error, got %v", errs)
	}
}

func TestSlides_DanglingCTABlocked(t *testing.T) {
	store := &memStore[slide.Slide]{
		setID: func(s *slide.Slide, id string) { s.ID = id },
		getID: func(s slide.Slide) string { return s.ID },
	}
	p := panels.Slides(store)
	p.Form.OpenNew(slide.Slide{})
	if err := p.Form.SetDraft(slide.Slide{
		Title:    "Join Us",
		ImageURL: "https://img.example/hero.jpg",
		CTALabel: "Sign up",
	}); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	if _, err := p.Form.Submit(context.Background()); !errors.Is(err, panel.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if _, ok := p.Form.FieldErrors()["ctaUrl"]; !ok {
		t.Errorf("expected ctaUrl error, got %v", p.Form.FieldErrors())
	}
}
