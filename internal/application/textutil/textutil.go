package textutil

import (
	"strings"
	"time"
)

// Slugify derives a URL slug from a title: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphen. The result is stable under re-application.
// PRE: none
// POST: result contains only [a-z0-9-]; Slugify(Slugify(s)) == Slugify(s)
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitTags converts the form's comma-delimited tag field into a tag array:
// split on comma, trim each piece, drop empty entries.
// PRE: none
// POST: no entry is empty or padded with whitespace
func SplitTags(s string) []string {
	var tags []string
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			tags = append(tags, piece)
		}
	}
	return tags
}

// JoinTags converts a tag array back into the form's editable string.
// INVARIANT: SplitTags(JoinTags(tags)) == tags for tag arrays without
// empty or whitespace-only entries.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// Format12Hour converts a 24-hour "HH:MM" clock string to a 12-hour display
// string ("14:30" -> "2:30 PM"). Unparseable input is returned unchanged.
func Format12Hour(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}
