package meta

import "strings"

// Metadata carries attribution and tagging shared by every managed record.
// CreatedBy and UpdatedBy are free-text names, not account references.
// Tags is always an array on the record; the editable form holds it as a
// single comma-delimited string (see textutil.SplitTags / JoinTags).
type Metadata struct {
	CreatedBy string   `json:"createdBy,omitempty"`
	UpdatedBy string   `json:"updatedBy,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// HasTag reports whether the metadata carries the given tag.
// Comparison is case-insensitive.
func (m Metadata) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
