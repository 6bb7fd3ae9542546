package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"nexus/internal/application/panel"
)

// maxBodyBytes bounds every decoded request body.
const maxBodyBytes = 1 << 20

// adminPanel serializes mutations on one panel. The form controller holds a
// single draft, so concurrent HTTP mutations are applied one at a time; the
// in-flight guard inside the form stays as the second line of defense.
type adminPanel[T any] struct {
	mu sync.Mutex
	p  *panel.Panel[T]
}

// registerPanel mounts the five admin operations for one resource under
// /api/admin/{name}. Every mutation refreshes the list first so order
// assignment and record lookups work against current data.
func registerPanel[T any](mux *http.ServeMux, name string, p *panel.Panel[T]) {
	a := &adminPanel[T]{p: p}
	base := "/api/admin/" + name

	mux.HandleFunc("GET "+base, a.list)
	mux.HandleFunc("POST "+base, a.create)
	mux.HandleFunc("PATCH "+base+"/{id}", a.update)
	mux.HandleFunc("DELETE "+base+"/{id}", a.delete)
	mux.HandleFunc("PATCH "+base+"/{id}/toggle", a.toggle)
}

func (a *adminPanel[T]) list(w http.ResponseWriter, r *http.Request) {
	err := a.p.Refresh(r.Context())
	items := a.p.List.Items()
	if err != nil {
		// Stale items travel with the error so the panel can keep
		// rendering them next to its retry affordance.
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"items": items,
			"error": "failed to load records",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"count": len(items),
	})
}

func (a *adminPanel[T]) create(w http.ResponseWriter, r *http.Request) {
	var draft T
	if err := strictDecode(r, &draft); err != nil {
		apiError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.p.Refresh(r.Context()); err != nil {
		apiError(w, http.StatusBadGateway, "failed to load records")
		return
	}

	var zero T
	a.p.Form.OpenNew(zero)
	defer a.p.Form.Close()
	if err := a.p.Form.SetDraft(draft); err != nil {
		internalError(w, err)
		return
	}
	saved, err := a.p.Form.Submit(r.Context())
	if err != nil {
		a.submitError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"record": saved})
}

func (a *adminPanel[T]) update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var draft T
	if err := strictDecode(r, &draft); err != nil {
		apiError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.p.Refresh(r.Context()); err != nil {
		apiError(w, http.StatusBadGateway, "failed to load records")
		return
	}

	if err := a.p.Form.OpenEdit(id); err != nil {
		apiError(w, http.StatusNotFound, "record not found")
		return
	}
	defer a.p.Form.Close()
	if err := a.p.Form.SetDraft(draft); err != nil {
		internalError(w, err)
		return
	}
	saved, err := a.p.Form.Submit(r.Context())
	if err != nil {
		a.submitError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": saved})
}

func (a *adminPanel[T]) delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	confirmed := r.URL.Query().Get("confirm") == "true"

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.p.Refresh(r.Context()); err != nil {
		apiError(w, http.StatusBadGateway, "failed to load records")
		return
	}

	switch err := a.p.Delete(r.Context(), id, confirmed); {
	case errors.Is(err, panel.ErrConfirmationRequired):
		apiError(w, http.StatusConflict, "delete requires confirm=true")
	case errors.Is(err, panel.ErrNotFound):
		apiError(w, http.StatusNotFound, "record not found")
	case err != nil:
		apiError(w, http.StatusBadGateway, "delete failed")
	default:
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func (a *adminPanel[T]) toggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.p.Refresh(r.Context()); err != nil {
		apiError(w, http.StatusBadGateway, "failed to load records")
		return
	}

	rec, err := a.p.Toggle(r.Context(), id)
	switch {
	case errors.Is(err, panel.ErrNotFound):
		apiError(w, http.StatusNotFound, "record not found")
	case err != nil:
		apiError(w, http.StatusBadGateway, "toggle failed")
	default:
		writeJSON(w, http.StatusOK, map[string]any{"record": rec})
	}
}

// submitError maps a failed form submit onto a status code.
func (a *adminPanel[T]) submitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, panel.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"fieldErrors": a.p.Form.FieldErrors(),
		})
	case errors.Is(err, panel.ErrSubmitInFlight):
		apiError(w, http.StatusConflict, "another submit is in flight")
	default:
		apiError(w, http.StatusBadGateway, "save failed")
	}
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response_encode_failed", "error", err.Error())
	}
}

// apiError writes a one-line JSON error.
func apiError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// internalError logs the cause and hides it from the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	apiError(w, http.StatusInternalServerError, "internal error")
}

// strictDecode decodes a JSON body, rejecting unknown fields and bodies
// over maxBodyBytes.
func strictDecode(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
