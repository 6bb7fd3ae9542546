// Package remote implements the panel store contract over the content API's
// per-resource path family:
//
//	GET    /{resource}/getAll{Name}s
//	POST   /{resource}/add{Name}
//	PATCH  /{resource}/update{Name}/{id}
//	DELETE /{resource}/delete{Name}/{id}
//	PATCH  /{resource}/toggle{Name}/{id}
//
// Responses wrap their payload in a single-key envelope ("segments",
// "segment", ...). Mutation responses may carry only a success flag; the
// stored record is then omitted and the caller echoes its payload.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds every API call; nothing is retried.
const DefaultTimeout = 10 * time.Second

// Client is the shared HTTP client for all resource stores.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for the API at baseURL. A non-positive timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// APIError is a non-2xx response from the content API. Transport failures
// (DNS, refused connection, timeout) surface as the underlying error instead.
type APIError struct {
	Op     string
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: api responded %d", e.Op, e.Status)
}

// Resource is a typed store for one resource of the path family.
type Resource[T any] struct {
	client        *Client
	name          string // path segment, e.g. "segments"
	verbSuffix    string // operation suffix, e.g. "Segment"
	collectionKey string // list envelope key
	recordKey     string // single-record envelope key
}

func newResource[T any](c *Client, name, verbSuffix, collectionKey, recordKey string) *Resource[T] {
	return &Resource[T]{
		client:        c,
		name:          name,
		verbSuffix:    verbSuffix,
		collectionKey: collectionKey,
		recordKey:     recordKey,
	}
}

func (r *Resource[T]) path(verb, id string) string {
	p := fmt.Sprintf("/%s/%s%s", r.name, verb, r.verbSuffix)
	if id != "" {
		p += "/" + id
	}
	return p
}

// envelope picks one key out of a response body. Missing keys are not an
// error: mutation endpoints that answer with a bare success flag omit the
// record entirely.
func envelope(body []byte, key string, out any) (bool, error) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return false, fmt.Errorf("decode envelope: %w", err)
	}
	raw, ok := wrapper[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %q payload: %w", key, err)
	}
	return true, nil
}

// List fetches the full collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	op := "list " + r.name
	resp, err := r.client.http.R().SetContext(ctx).Get(fmt.Sprintf("/%s/getAll%ss", r.name, r.verbSuffix))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		return nil, &APIError{Op: op, Status: resp.StatusCode()}
	}
	var items []T
	ok, err := envelope(resp.Body(), r.collectionKey, &items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: response missing %q", op, r.collectionKey)
	}
	return items, nil
}

// Create posts a new record. The returned record is the zero value when the
// server answered with a success flag only.
func (r *Resource[T]) Create(ctx context.Context, item T) (T, error) {
	var saved T
	op := "create " + r.name
	resp, err := r.client.http.R().SetContext(ctx).SetBody(item).Post(r.path("add", ""))
	if err != nil {
		return saved, fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		return saved, &APIError{Op: op, Status: resp.StatusCode()}
	}
	if _, err := envelope(resp.Body(), r.recordKey, &saved); err != nil {
		return saved, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

// Update patches an existing record. Like Create, the stored record may be
// omitted from the response.
func (r *Resource[T]) Update(ctx context.Context, id string, item T) (T, error) {
	var saved T
	op := "update " + r.name
	resp, err := r.client.http.R().SetContext(ctx).SetBody(item).Patch(r.path("update", id))
	if err != nil {
		return saved, fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		return saved, &APIError{Op: op, Status: resp.StatusCode()}
	}
	if _, err := envelope(resp.Body(), r.recordKey, &saved); err != nil {
		return saved, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

// Delete removes a record.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	op := "delete " + r.name
	resp, err := r.client.http.R().SetContext(ctx).Delete(r.path("delete", id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		return &APIError{Op: op, Status: resp.StatusCode()}
	}
	return nil
}

// ToggleActive flips the record's activation flag server-side.
func (r *Resource[T]) ToggleActive(ctx context.Context, id string) error {
	op := "toggle " + r.name
	resp, err := r.client.http.R().SetContext(ctx).Patch(r.path("toggle", id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		return &APIError{Op: op, Status: resp.StatusCode()}
	}
	return nil
}
