package orchestrators_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"nexus/internal/application/orchestrators"
	"nexus/internal/application/panel"
	"nexus/internal/domain/event"
	"nexus/internal/domain/faq"
	"nexus/internal/domain/gallery"
	"nexus/internal/domain/member"
	"nexus/internal/domain/message"
	"nexus/internal/domain/segment"
	"nexus/internal/domain/slide"
)

// seedStore is a slice-backed store counting creates.
type seedStore[T any] struct {
	items   []T
	creates int
}

func (s *seedStore[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *seedStore[T]) Create(ctx context.Context, item T) (T, error) {
	s.creates++
	s.items = append(s.items, item)
	return item, nil
}

func (s *seedStore[T]) Update(ctx context.Context, id string, item T) (T, error) {
	return item, fmt.Errorf("not used in seeding")
}

func (s *seedStore[T]) Delete(ctx context.Context, id string) error {
	return fmt.Errorf("not used in seeding")
}

func (s *seedStore[T]) ToggleActive(ctx context.Context, id string) error {
	return fmt.Errorf("not used in seeding")
}

func newSeedDeps() (orchestrators.SeedDemoDeps, *seedStore[segment.Segment], *seedStore[faq.FAQ]) {
	segments := &seedStore[segment.Segment]{}
	faqs := &seedStore[faq.FAQ]{}
	deps := orchestrators.SeedDemoDeps{
		Segments: segments,
		Messages: &seedStore[message.Message]{},
		Slides:   &seedStore[slide.Slide]{},
		FAQs:     faqs,
		Gallery:  &seedStore[gallery.Item]{},
		Members:  &seedStore[member.Member]{},
		Events:   &seedStore[event.Event]{},
		Now:      func() time.Time { return time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC) },
	}
	return deps, segments, faqs
}

func TestExecuteSeedDemo_FillsEmptyStores(t *testing.T) {
	deps, segments, faqs := newSeedDeps()

	if err := orchestrators.ExecuteSeedDemo(context.Background(), deps); err != nil {
		t.Fatalf("ExecuteSeedDemo failed: %v", err)
	}
	if segments.creates == 0 {
		t.Error("segments were not seeded")
	}
	if faqs.creates == 0 {
		t.Error("faqs were not seeded")
	}

	// Seeded records must pass their own domain validation.
	for i := range segments.items {
		if err := segments.items[i].Validate(); err != nil {
			t.Errorf("seeded segment %d invalid: %v", i, err)
		}
	}
	for i := range faqs.items {
		if err := faqs.items[i].Validate(); err != nil {
			t.Errorf("seeded faq %d invalid: %v", i, err)
		}
	}
}

func TestExecuteSeedDemo_Idempotent(t *testing.T) {
	deps, segments, _ := newSeedDeps()

	if err := orchestrators.ExecuteSeedDemo(context.Background(), deps); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	first := segments.creates

	if err := orchestrators.ExecuteSeedDemo(context.Background(), deps); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if segments.creates != first {
		t.Errorf("second run created %d more records, want 0", segments.creates-first)
	}
}

var _ panel.Store[segment.Segment] = (*seedStore[segment.Segment])(nil)
