// Package panel implements the admin resource panel pattern shared by every
// management screen: a remote store accessor contract, a list state holder,
// and a form controller. The engine is generic; each resource supplies a
// small Hooks value and its own validation/normalization.
package panel

import (
	"context"
	"errors"
	"log/slog"

	"nexus/internal/application/validate"
)

// Store is the accessor contract a panel drives — the five operations of the
// per-resource REST path family. Implementations report failures to the
// caller and never retry on their own.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) error
}

// Hooks adapt one record type to the generic engine. All funcs must be set.
type Hooks[T any] struct {
	ID         func(T) string
	SetID      func(*T, string)
	Order      func(T) int
	SetOrder   func(*T, int)
	FlipActive func(*T)
	// Validate runs field-level rules on the draft; a non-empty result
	// blocks submission before any network call.
	Validate func(draft T, creating bool) validate.Errors
	// Normalize derives computed fields (slug, tag array, trimmed text).
	// It runs after validation passes and before order assignment.
	Normalize func(draft *T, creating bool)
}

// Panel errors
var (
	ErrFormClosed           = errors.New("form is not open")
	ErrSubmitInFlight       = errors.New("a submit is already in flight")
	ErrValidation           = errors.New("draft failed validation")
	ErrConfirmationRequired = errors.New("delete requires confirmation")
	ErrNotFound             = errors.New("record not found in panel")
)

// Panel wires one resource's store, list state, and form controller.
type Panel[T any] struct {
	name  string
	store Store[T]
	hooks Hooks[T]

	List *ListState[T]
	Form *Form[T]
}

// New creates a panel for one resource. name is used in log events only.
func New[T any](name string, store Store[T], hooks Hooks[T]) *Panel[T] {
	p := &Panel[T]{name: name, store: store, hooks: hooks}
	p.List = newListState(store, hooks.ID)
	p.Form = &Form[T]{panel: p}
	return p
}

// Refresh reloads the collection from the store. On failure the previous
// items are kept and the error is recorded on the list state; the loading
// flag is always cleared.
func (p *Panel[T]) Refresh(ctx context.Context) error {
	err := p.List.Refresh(ctx)
	if err != nil {
		slog.Warn("panel_event", "event", "refresh_failed", "panel", p.name, "error", err.Error())
	}
	return err
}

// Delete removes a record. The confirmed flag carries the presenter's
// blocking confirmation step; without it no call is made. The local entry
// is removed only after the store reports success, leaving the relative
// order of the survivors unchanged.
func (p *Panel[T]) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if _, ok := p.List.Find(id); !ok {
		return ErrNotFound
	}
	if err := p.store.Delete(ctx, id); err != nil {
		slog.Warn("panel_event", "event", "delete_failed", "panel", p.name, "id", id, "error", err.Error())
		return err
	}
	p.List.remove(id)
	slog.Info("panel_event", "event", "deleted", "panel", p.name, "id", id)
	return nil
}

// Toggle flips a record's activation flag. The store is trusted to have
// flipped its own copy; on success the local boolean is flipped without a
// re-read. Toggling is distinct from a full update.
func (p *Panel[T]) Toggle(ctx context.Context, id string) (T, error) {
	rec, ok := p.List.Find(id)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	if err := p.store.ToggleActive(ctx, id); err != nil {
		slog.Warn("panel_event", "event", "toggle_failed", "panel", p.name, "id", id, "error", err.Error())
		var zero T
		return zero, err
	}
	p.hooks.FlipActive(&rec)
	p.List.replace(id, rec)
	slog.Info("panel_event", "event", "toggled", "panel", p.name, "id", id)
	return rec, nil
}
