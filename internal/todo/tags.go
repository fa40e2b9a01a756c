package todo

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`#(\w+)`)

// ExtractTags pulls inline #tags out of free text and returns the cleaned
// text plus the tags in order of appearance. "buy milk #errand #home"
// yields ("buy milk", ["errand", "home"]).
func ExtractTags(text string) (string, []string) {
	var tags []string
	clean := tagPattern.ReplaceAllStringFunc(text, func(m string) string {
		tags = append(tags, strings.TrimPrefix(m, "#"))
		return ""
	})
	clean = strings.Join(strings.Fields(clean), " ")
	return clean, tags
}

// ParseTags splits a comma-separated tag list, dropping empty entries.
func ParseTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// FormatTags renders tags back to the comma-separated form ParseTags reads.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// HasTag reports whether tags contains tag, case-sensitive.
func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends tag unless an exact match is already present.
func AddTag(tags []string, tag string) []string {
	if HasTag(tags, tag) {
		return tags
	}
	return append(tags, tag)
}

// RemoveTag removes every exact match of tag.
func RemoveTag(tags []string, tag string) []string {
	var out []string
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

// MatchesFilter reports whether an item's tags satisfy the active filter
// set: an empty filter matches everything, otherwise at least one item tag
// must equal a filter tag case-insensitively.
func MatchesFilter(itemTags, filterTags []string) bool {
	if len(filterTags) == 0 {
		return true
	}
	for _, f := range filterTags {
		for _, t := range itemTags {
			if strings.EqualFold(t, f) {
				return true
			}
		}
	}
	return false
}
