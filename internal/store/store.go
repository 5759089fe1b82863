// Package store persists saved items and the last printer selection in
// a small SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS saved_items (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	item_number TEXT NOT NULL,
	upc         TEXT,
	title       TEXT,
	casepack    TEXT,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS printer_selection (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	printer    TEXT,
	language   TEXT,
	size       TEXT,
	updated_at TEXT NOT NULL
);
`

// Item is one saved label's field set.
type Item struct {
	ItemNumber string
	UPC        string
	Title      string
	Casepack   string
	CreatedAt  time.Time
}

// Selection is the last printer/language/size choice.
type Selection struct {
	Printer  string
	Language string
	Size     string
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveItem inserts a saved item. CreatedAt defaults to now.
func (s *Store) SaveItem(it Item) error {
	created := it.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO saved_items (item_number, upc, title, casepack, created_at) VALUES (?, ?, ?, ?, ?)`,
		it.ItemNumber, it.UPC, it.Title, it.Casepack, created.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save item %q: %w", it.ItemNumber, err)
	}
	return nil
}

// Items lists saved items, newest first.
func (s *Store) Items() ([]Item, error) {
	rows, err := s.db.Query(
		`SELECT item_number, upc, title, casepack, created_at FROM saved_items ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var created string
		if err := rows.Scan(&it.ItemNumber, &it.UPC, &it.Title, &it.Casepack, &created); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.CreatedAt, _ = time.Parse(time.RFC3339, created)
		items = append(items, it)
	}
	return items, rows.Err()
}

// DeleteItem removes every saved item with the given item number.
func (s *Store) DeleteItem(itemNumber string) error {
	if _, err := s.db.Exec(`DELETE FROM saved_items WHERE item_number = ?`, itemNumber); err != nil {
		return fmt.Errorf("delete item %q: %w", itemNumber, err)
	}
	return nil
}

// SaveSelection upserts the single printer selection row.
func (s *Store) SaveSelection(sel Selection) error {
	_, err := s.db.Exec(
		`INSERT INTO printer_selection (id, printer, language, size, updated_at)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			printer = excluded.printer,
			language = excluded.language,
			size = excluded.size,
			updated_at = excluded.updated_at`,
		sel.Printer, sel.Language, sel.Size, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save printer selection: %w", err)
	}
	return nil
}

// Selection returns the stored printer selection, reporting whether one
// exists.
func (s *Store) Selection() (Selection, bool, error) {
	var sel Selection
	err := s.db.QueryRow(
		`SELECT printer, language, size FROM printer_selection WHERE id = 1`,
	).Scan(&sel.Printer, &sel.Language, &sel.Size)
	if err == sql.ErrNoRows {
		return Selection{}, false, nil
	}
	if err != nil {
		return Selection{}, false, fmt.Errorf("load printer selection: %w", err)
	}
	return sel, true, nil
}
