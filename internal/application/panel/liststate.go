package panel

import (
	"context"
	"sync"
)

// ListState owns one resource's fetched collection, loading flag, and error
// flag. Mutations happen only through Refresh and the panel's post-success
// splices; derived views are computed by the pure helpers in derive.go and
// never touch the underlying slice.
type ListState[T any] struct {
	store Store[T]
	id    func(T) string

	mu      sync.Mutex
	items   []T
	loading bool
	err     error
}

func newListState[T any](store Store[T], id func(T) string) *ListState[T] {
	return &ListState[T]{store: store, id: id}
}

// Refresh sets loading, clears the error, and replaces the items wholesale
// on success. On failure the previous items stay as they were (empty on
// first load, stale on a retry) and the error is recorded for the caller's
// retry affordance. The loading flag is cleared on every path.
func (s *ListState[T]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	items, err := s.store.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return err
	}
	s.items = items
	return nil
}

// Items returns a copy of the current collection.
func (s *ListState[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of fetched records.
func (s *ListState[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Loading reports whether a refresh is in flight.
func (s *ListState[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error recorded by the last failed refresh, or nil.
func (s *ListState[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Find returns the record with the given identifier.
func (s *ListState[T]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if s.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *ListState[T]) append(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

func (s *ListState[T]) replace(id string, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			return
		}
	}
}

func (s *ListState[T]) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}
