// Package listutil parses and rebuilds the URL query state of list views:
// the active tab, the free-text search query, and the category filter. The
// URL is the single source of truth for view state, so a copied link
// reproduces the same tab and filters.
package listutil

import (
	"net/url"
	"strings"
)

// ViewParams is the list-view state carried in the query string.
type ViewParams struct {
	Tab      string // active tab, always a member of the allowed set
	Search   string // free-text query, trimmed
	Category string // category filter, empty means all
}

// ParseViewParams extracts tab, q, and category from URL query values.
// PRE: tabs is non-empty; its first entry is the default tab
// POST: Tab is a member of tabs; Category is a member of categories or ""
func ParseViewParams(q url.Values, tabs, categories []string) ViewParams {
	tab := q.Get("tab")
	if !contains(tabs, tab) {
		tab = tabs[0]
	}
	category := q.Get("category")
	if !contains(categories, category) {
		category = ""
	}
	return ViewParams{
		Tab:      tab,
		Search:   strings.TrimSpace(q.Get("q")),
		Category: category,
	}
}

// Encode rebuilds the query values for link building. Defaults are omitted
// so the canonical view has a bare URL.
// PRE: defaultTab is the tabs[0] passed to ParseViewParams
// POST: ParseViewParams(Encode(p), ...) round-trips p
func (p ViewParams) Encode(defaultTab string) url.Values {
	q := url.Values{}
	if p.Tab != "" && p.Tab != defaultTab {
		q.Set("tab", p.Tab)
	}
	if p.Search != "" {
		q.Set("q", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	return q
}

// WithTab returns a copy with the tab switched. Search and category filters
// survive tab changes.
func (p ViewParams) WithTab(tab string) ViewParams {
	p.Tab = tab
	return p
}

// WithCategory returns a copy with the category filter replaced.
func (p ViewParams) WithCategory(category string) ViewParams {
	p.Category = category
	return p
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
