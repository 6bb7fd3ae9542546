package panel

import (
	"context"
	"log/slog"
	"sync"

	"nexus/internal/application/validate"
)

// Status is the form controller's state. Transitions:
// closed -> open (new or editing) -> submitting -> closed on success, or
// back to open with the error recorded on failure.
type Status int

const (
	StatusClosed Status = iota
	StatusOpen
	StatusSubmitting
)

// Form owns one draft record keyed to either "new" or "editing existing".
// On failure the form stays open and populated so the user can retry
// without re-entering data.
type Form[T any] struct {
	panel *Panel[T]

	mu        sync.Mutex
	status    Status
	creating  bool
	editID    string
	draft     T
	fieldErrs validate.Errors
	submitErr error
}

// OpenNew opens the form with empty defaults for a create.
func (f *Form[T]) OpenNew(defaults T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = StatusOpen
	f.creating = true
	f.editID = ""
	f.draft = defaults
	f.fieldErrs = nil
	f.submitErr = nil
}

// OpenEdit opens the form populated with the values of an existing record
// from the list state.
func (f *Form[T]) OpenEdit(id string) error {
	rec, ok := f.panel.List.Find(id)
	if !ok {
		return ErrNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = StatusOpen
	f.creating = false
	f.editID = id
	f.draft = rec
	f.fieldErrs = nil
	f.submitErr = nil
	return nil
}

// SetDraft replaces the editable draft. Rejected while closed or submitting.
func (f *Form[T]) SetDraft(draft T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.status {
	case StatusClosed:
		return ErrFormClosed
	case StatusSubmitting:
		return ErrSubmitInFlight
	}
	f.draft = draft
	return nil
}

// Draft returns the current draft.
func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Status returns the controller state.
func (f *Form[T]) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// FieldErrors returns the inline errors from the last blocked submit.
func (f *Form[T]) FieldErrors() validate.Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrs
}

// SubmitErr returns the transport error from the last failed submit, or nil.
func (f *Form[T]) SubmitErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

// Close discards the draft without submitting.
func (f *Form[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = StatusClosed
	f.fieldErrs = nil
	f.submitErr = nil
}

// Submit validates and normalizes the draft, then performs the create or
// update through the store. Normalization order: derived fields first
// (slug, tags, trims via the Normalize hook), then order assignment —
// count+1 for a create, the existing record's order preserved for an edit.
// Validation failure blocks the submit before any network call. A second
// Submit while one is in flight is rejected, which is the duplicate-create
// guard the disabled-button UI convention only approximates.
func (f *Form[T]) Submit(ctx context.Context) (T, error) {
	var zero T
	p := f.panel
	hooks := p.hooks

	f.mu.Lock()
	switch f.status {
	case StatusClosed:
		f.mu.Unlock()
		return zero, ErrFormClosed
	case StatusSubmitting:
		f.mu.Unlock()
		return zero, ErrSubmitInFlight
	}

	draft := f.draft
	creating := f.creating
	editID := f.editID

	if errs := hooks.Validate(draft, creating); !errs.Ok() {
		f.fieldErrs = errs
		f.mu.Unlock()
		return zero, ErrValidation
	}
	f.fieldErrs = nil

	hooks.Normalize(&draft, creating)
	if creating {
		hooks.SetOrder(&draft, p.List.Count()+1)
	} else if existing, ok := p.List.Find(editID); ok {
		// Edits never renumber; the stored order wins over the draft's.
		hooks.SetOrder(&draft, hooks.Order(existing))
	}
	f.draft = draft
	f.status = StatusSubmitting
	f.mu.Unlock()

	var saved T
	var err error
	if creating {
		saved, err = p.store.Create(ctx, draft)
		if err == nil {
			if hooks.ID(saved) == "" {
				// Server omitted the stored record: echo the payload.
				saved = draft
			}
			p.List.append(saved)
		}
	} else {
		saved, err = p.store.Update(ctx, editID, draft)
		if err == nil {
			if hooks.ID(saved) == "" {
				saved = draft
				hooks.SetID(&saved, editID)
			}
			p.List.replace(editID, saved)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusOpen
		f.submitErr = err
		slog.Warn("panel_event", "event", "submit_failed", "panel", p.name, "creating", creating, "error", err.Error())
		return zero, err
	}
	f.status = StatusClosed
	f.submitErr = nil
	slog.Info("panel_event", "event", "submitted", "panel", p.name, "creating", creating, "id", hooks.ID(saved))
	return saved, nil
}
