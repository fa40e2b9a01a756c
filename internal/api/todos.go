package api

import (
	"fmt"
	"time"

	"github.com/tvim/tvim/internal/todo"
)

// Todo is the wire representation of a task item.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	DueDate   *string   `json:"due_date,omitempty"` // YYYY-MM-DD
	Tags      []string  `json:"tags,omitempty"`
	SortKey   int64     `json:"sort_key,omitempty"`
}

// CreateTodoRequest is the request body for creating a todo.
type CreateTodoRequest struct {
	Text    string   `json:"text"`
	DueDate *string  `json:"due_date,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	SortKey int64    `json:"sort_key,omitempty"`
}

// UpdateTodoRequest is the request body for a partial update. Pointer
// fields are omitted when nil; ClearDue explicitly removes the due date.
type UpdateTodoRequest struct {
	Text      *string   `json:"text,omitempty"`
	Completed *bool     `json:"completed,omitempty"`
	DueDate   *string   `json:"due_date,omitempty"`
	ClearDue  bool      `json:"clear_due,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
	SortKey   *int64    `json:"sort_key,omitempty"`
}

const dueDateLayout = "2006-01-02"

// Item converts the wire form to the domain model.
func (t Todo) Item() todo.Item {
	it := todo.Item{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		Tags:      t.Tags,
		SortKey:   t.SortKey,
	}
	if t.DueDate != nil {
		if d, err := time.ParseInLocation(dueDateLayout, *t.DueDate, time.Local); err == nil {
			it.DueDate = &d
		}
	}
	return it
}

func formatDue(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(dueDateLayout)
	return &s
}

// ListTodos fetches the full collection.
func (c *Client) ListTodos() ([]Todo, error) {
	var todos []Todo
	if err := c.Get("/todos", &todos); err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// CreateTodo creates a new todo; the server assigns id and created_at.
func (c *Client) CreateTodo(draft todo.Draft) (*Todo, error) {
	req := CreateTodoRequest{
		Text:    draft.Text,
		DueDate: formatDue(draft.DueDate),
		Tags:    draft.Tags,
		SortKey: draft.SortKey,
	}
	var created Todo
	if err := c.Post("/todos", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return &created, nil
}

// UpdateTodo partially updates a todo.
func (c *Client) UpdateTodo(id string, patch todo.Patch) (*Todo, error) {
	req := UpdateTodoRequest{
		Text:      patch.Text,
		Completed: patch.Completed,
		DueDate:   formatDue(patch.DueDate),
		ClearDue:  patch.ClearDue,
		Tags:      patch.Tags,
		SortKey:   patch.SortKey,
	}
	var updated Todo
	if err := c.Patch("/todos/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("failed to update todo %s: %w", id, err)
	}
	return &updated, nil
}

// DeleteTodo deletes a todo by ID.
func (c *Client) DeleteTodo(id string) error {
	if err := c.Delete("/todos/" + id); err != nil {
		return fmt.Errorf("failed to delete todo %s: %w", id, err)
	}
	return nil
}

// ClearTodos deletes the whole collection.
func (c *Client) ClearTodos() error {
	if err := c.Delete("/todos"); err != nil {
		return fmt.Errorf("failed to clear todos: %w", err)
	}
	return nil
}
