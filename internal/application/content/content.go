// Package content renders long-form Markdown (event bodies, detailed
// answers) to sanitized HTML for the public pages.
package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts Markdown to HTML and strips everything the sanitizer
// policy does not allow. Admin input is trusted less than it is convenient.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer creates a renderer with GFM extensions and the standard
// user-generated-content sanitizer policy.
func NewRenderer() *Renderer {
	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts Markdown to sanitized HTML.
// PRE: none
// POST: the result contains no elements outside the sanitizer policy
func (r *Renderer) Render(markdown string) (template.HTML, error) {
	if markdown == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}
