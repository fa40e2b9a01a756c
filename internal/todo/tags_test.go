package todo

import (
	"reflect"
	"testing"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantText string
		wantTags []string
	}{
		{
			name:     "two tags",
			input:    "buy milk #errand #home",
			wantText: "buy milk",
			wantTags: []string{"errand", "home"},
		},
		{
			name:     "tag in the middle",
			input:    "call #work the dentist",
			wantText: "call the dentist",
			wantTags: []string{"work"},
		},
		{
			name:     "no tags",
			input:    "plain text",
			wantText: "plain text",
			wantTags: nil,
		},
		{
			name:     "only tags",
			input:    "#a #b",
			wantText: "",
			wantTags: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, tags := ExtractTags(tt.input)
			if text != tt.wantText {
				t.Errorf("text: got %q, want %q", text, tt.wantText)
			}
			if !reflect.DeepEqual(tags, tt.wantTags) {
				t.Errorf("tags: got %v, want %v", tags, tt.wantTags)
			}
		})
	}
}

func TestTagsRoundTrip(t *testing.T) {
	tags := []string{"errand", "home"}

	formatted := FormatTags(tags)
	if formatted != "errand, home" {
		t.Errorf("FormatTags: got %q, want %q", formatted, "errand, home")
	}

	parsed := ParseTags(formatted)
	if !reflect.DeepEqual(parsed, tags) {
		t.Errorf("ParseTags round-trip: got %v, want %v", parsed, tags)
	}
}

func TestParseTagsEmptyEntries(t *testing.T) {
	if got := ParseTags("a, , b,,"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("got %v, want [a b]", got)
	}
	if got := ParseTags(""); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestAddRemoveTag(t *testing.T) {
	tags := AddTag(nil, "work")
	tags = AddTag(tags, "work") // exact duplicate ignored
	tags = AddTag(tags, "Work") // case-sensitive: distinct
	if !reflect.DeepEqual(tags, []string{"work", "Work"}) {
		t.Fatalf("got %v", tags)
	}

	tags = RemoveTag(tags, "work")
	if !reflect.DeepEqual(tags, []string{"Work"}) {
		t.Fatalf("after remove: got %v", tags)
	}
}

func TestMatchesFilter(t *testing.T) {
	tests := []struct {
		name   string
		item   []string
		filter []string
		want   bool
	}{
		{"empty filter matches all", nil, nil, true},
		{"case-insensitive match", []string{"Home"}, []string{"home"}, true},
		{"no overlap", []string{"work"}, []string{"home"}, false},
		{"untagged item with filter", nil, []string{"home"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesFilter(tt.item, tt.filter); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
