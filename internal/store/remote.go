package store

import (
	"errors"

	"github.com/tvim/tvim/internal/api"
	"github.com/tvim/tvim/internal/todo"
)

// Remote is the Store implementation backed by the todo backend API.
type Remote struct {
	client *api.Client
}

// NewRemote wraps an API client as a Store.
func NewRemote(client *api.Client) *Remote {
	return &Remote{client: client}
}

// ListAll implements Store.
func (r *Remote) ListAll() ([]todo.Item, error) {
	todos, err := r.client.ListTodos()
	if err != nil {
		return nil, err
	}
	items := make([]todo.Item, len(todos))
	for i, t := range todos {
		items[i] = t.Item()
	}
	return items, nil
}

// Create implements Store.
func (r *Remote) Create(draft todo.Draft) (todo.Item, error) {
	created, err := r.client.CreateTodo(draft)
	if err != nil {
		return todo.Item{}, err
	}
	return created.Item(), nil
}

// Update implements Store.
func (r *Remote) Update(id string, patch todo.Patch) (todo.Item, error) {
	updated, err := r.client.UpdateTodo(id, patch)
	if err != nil {
		return todo.Item{}, mapNotFound(err)
	}
	return updated.Item(), nil
}

// Delete implements Store.
func (r *Remote) Delete(id string) error {
	return mapNotFound(r.client.DeleteTodo(id))
}

// ClearAll implements Store.
func (r *Remote) ClearAll() error {
	return r.client.ClearTodos()
}

func mapNotFound(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
		return ErrNotFound
	}
	return err
}
