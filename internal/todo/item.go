// Package todo contains the domain model for task items: tag extraction,
// due-date parsing, sort-key normalization, the display projection and the
// undo history. It is pure logic with no I/O; stores and the TUI build on it.
package todo

import "time"

// Item is a single task in the list.
type Item struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Tags      []string   `json:"tags,omitempty"`

	// SortKey is the explicit manual position. Zero means unset; display
	// order then falls back to CreatedAt/ID ordering.
	SortKey int64 `json:"sort_key,omitempty"`
}

// Draft is the payload for creating an item. ID and CreatedAt are assigned
// by the store.
type Draft struct {
	Text    string
	DueDate *time.Time
	Tags    []string
	SortKey int64
}

// Patch is a partial update. Nil fields are left untouched. ClearDue
// removes the due date; it wins over DueDate.
type Patch struct {
	Text      *string
	Completed *bool
	DueDate   *time.Time
	ClearDue  bool
	Tags      *[]string
	SortKey   *int64
}

// Apply copies the patch onto the item.
func (p Patch) Apply(it *Item) {
	if p.Text != nil {
		it.Text = *p.Text
	}
	if p.Completed != nil {
		it.Completed = *p.Completed
	}
	if p.ClearDue {
		it.DueDate = nil
	} else if p.DueDate != nil {
		d := *p.DueDate
		it.DueDate = &d
	}
	if p.Tags != nil {
		it.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.SortKey != nil {
		it.SortKey = *p.SortKey
	}
}

// Equal reports whether two items hold the same content, including
// identity and sort key.
func (it Item) Equal(other Item) bool {
	if it.ID != other.ID || it.Text != other.Text ||
		it.Completed != other.Completed || it.SortKey != other.SortKey {
		return false
	}
	if !it.CreatedAt.Equal(other.CreatedAt) {
		return false
	}
	if (it.DueDate == nil) != (other.DueDate == nil) {
		return false
	}
	if it.DueDate != nil && !it.DueDate.Equal(*other.DueDate) {
		return false
	}
	if len(it.Tags) != len(other.Tags) {
		return false
	}
	for i := range it.Tags {
		if it.Tags[i] != other.Tags[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	out := it
	if it.DueDate != nil {
		d := *it.DueDate
		out.DueDate = &d
	}
	if it.Tags != nil {
		out.Tags = append([]string(nil), it.Tags...)
	}
	return out
}

// CloneAll returns a deep copy of a whole list. Used for history snapshots
// and rollback pre-images, which must be value copies.
func CloneAll(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}
