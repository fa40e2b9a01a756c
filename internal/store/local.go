package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tvim/tvim/internal/todo"
)

// Local is the fallback Store for unauthenticated sessions, persisted in
// a single-file SQLite database.
type Local struct {
	db *sql.DB
}

const localSchema = `
CREATE TABLE IF NOT EXISTS todos (
	id         TEXT PRIMARY KEY,
	text       TEXT NOT NULL,
	completed  INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	due_date   TEXT,
	tags       TEXT,
	sort_key   INTEGER NOT NULL DEFAULT 0
);
`

// OpenLocal opens (and if needed initializes) the local store at path.
func OpenLocal(path string) (*Local, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	// The store has a single writer (the UI loop); one connection keeps
	// SQLite's locking out of the picture.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(localSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}

	return &Local{db: db}, nil
}

// Close releases the underlying database handle.
func (l *Local) Close() error {
	return l.db.Close()
}

// ListAll implements Store. Items come back in canonical order.
func (l *Local) ListAll() ([]todo.Item, error) {
	rows, err := l.db.Query(
		`SELECT id, text, completed, created_at, due_date, tags, sort_key
		 FROM todos ORDER BY sort_key, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var items []todo.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Create implements Store.
func (l *Local) Create(draft todo.Draft) (todo.Item, error) {
	it := todo.Item{
		ID:        uuid.NewString(),
		Text:      draft.Text,
		CreatedAt: time.Now(),
		Tags:      append([]string(nil), draft.Tags...),
		SortKey:   draft.SortKey,
	}
	if draft.DueDate != nil {
		d := *draft.DueDate
		it.DueDate = &d
	}

	tags, err := encodeTags(it.Tags)
	if err != nil {
		return todo.Item{}, err
	}
	_, err = l.db.Exec(
		`INSERT INTO todos (id, text, completed, created_at, due_date, tags, sort_key)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.Text, boolToInt(it.Completed), it.CreatedAt.Format(time.RFC3339Nano),
		encodeDue(it.DueDate), tags, it.SortKey)
	if err != nil {
		return todo.Item{}, fmt.Errorf("failed to create todo: %w", err)
	}
	return it, nil
}

// Update implements Store.
func (l *Local) Update(id string, patch todo.Patch) (todo.Item, error) {
	it, err := l.get(id)
	if err != nil {
		return todo.Item{}, err
	}

	patch.Apply(&it)

	tags, err := encodeTags(it.Tags)
	if err != nil {
		return todo.Item{}, err
	}
	_, err = l.db.Exec(
		`UPDATE todos SET text = ?, completed = ?, due_date = ?, tags = ?, sort_key = ?
		 WHERE id = ?`,
		it.Text, boolToInt(it.Completed), encodeDue(it.DueDate), tags, it.SortKey, id)
	if err != nil {
		return todo.Item{}, fmt.Errorf("failed to update todo %s: %w", id, err)
	}
	return it, nil
}

// Delete implements Store.
func (l *Local) Delete(id string) error {
	res, err := l.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearAll implements Store.
func (l *Local) ClearAll() error {
	if _, err := l.db.Exec(`DELETE FROM todos`); err != nil {
		return fmt.Errorf("failed to clear todos: %w", err)
	}
	return nil
}

func (l *Local) get(id string) (todo.Item, error) {
	row := l.db.QueryRow(
		`SELECT id, text, completed, created_at, due_date, tags, sort_key
		 FROM todos WHERE id = ?`, id)
	it, err := scanItem(row)
	if err == sql.ErrNoRows {
		return todo.Item{}, ErrNotFound
	}
	return it, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (todo.Item, error) {
	var (
		it        todo.Item
		completed int
		createdAt string
		due       sql.NullString
		tags      sql.NullString
	)
	if err := row.Scan(&it.ID, &it.Text, &completed, &createdAt, &due, &tags, &it.SortKey); err != nil {
		if err == sql.ErrNoRows {
			return todo.Item{}, err
		}
		return todo.Item{}, fmt.Errorf("failed to scan todo row: %w", err)
	}

	it.Completed = completed != 0

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return todo.Item{}, fmt.Errorf("bad created_at for todo %s: %w", it.ID, err)
	}
	it.CreatedAt = created

	if due.Valid && due.String != "" {
		d, err := time.ParseInLocation("2006-01-02", due.String, time.Local)
		if err != nil {
			return todo.Item{}, fmt.Errorf("bad due_date for todo %s: %w", it.ID, err)
		}
		it.DueDate = &d
	}

	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &it.Tags); err != nil {
			return todo.Item{}, fmt.Errorf("bad tags for todo %s: %w", it.ID, err)
		}
	}

	return it, nil
}

func encodeDue(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format("2006-01-02")
}

func encodeTags(tags []string) (any, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(b), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
