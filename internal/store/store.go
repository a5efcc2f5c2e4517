package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/dragalert/go-layout"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

var ErrNotFound = errors.New("layout not found")

// Entry describes a stored layout
type Entry struct {
	Name      string
	UpdatedAt time.Time
}

// Store keeps layouts of the editor in a SQLite database, one JSON document per layout name.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the database and applies pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, now: time.Now}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	dir, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, dir)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put saves elements under the name, replacing the layout stored before.
func (s *Store) Put(ctx context.Context, name string, elements []layout.PlacedElement) error {
	if elements == nil {
		elements = []layout.PlacedElement{}
	}

	data, err := json.Marshal(elements)
	if err != nil {
		return fmt.Errorf("unable to encode layout %q: %w", name, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO layouts (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data), s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("unable to save layout %q: %w", name, err)
	}

	return nil
}

// GetRaw returns the stored JSON document.
func (s *Store) GetRaw(ctx context.Context, name string) (string, error) {
	var data string

	err := s.db.QueryRowContext(ctx, `SELECT data FROM layouts WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	if err != nil {
		return "", fmt.Errorf("unable to read layout %q: %w", name, err)
	}

	return data, nil
}

// Get returns the stored elements, normalized.
func (s *Store) Get(ctx context.Context, name string) ([]layout.PlacedElement, error) {
	data, err := s.GetRaw(ctx, name)
	if err != nil {
		return nil, err
	}

	return layout.DecodeLayout([]byte(data))
}

// List returns stored layouts ordered by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, updated_at FROM layouts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("unable to list layouts: %w", err)
	}

	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var name string
		var updated int64

		if err := rows.Scan(&name, &updated); err != nil {
			return nil, fmt.Errorf("unable to list layouts: %w", err)
		}

		entries = append(entries, Entry{Name: name, UpdatedAt: time.Unix(updated, 0)})
	}

	return entries, rows.Err()
}

func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM layouts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("unable to delete layout %q: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	return nil
}
