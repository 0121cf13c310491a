// Package store keeps a history of emitted units in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("unit not found")

const schema = `CREATE TABLE IF NOT EXISTS units (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	funcs TEXT NOT NULL,
	source TEXT NOT NULL,
	created_at INTEGER NOT NULL
)`

// Record is one emitted unit.
type Record struct {
	ID        int64
	Name      string
	Funcs     []string
	Source    string
	CreatedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the database at path. ":memory:" gives
// a private in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a unit and returns its id.
func (s *Store) Save(ctx context.Context, name string, funcs []string, source string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO units (name, funcs, source, created_at) VALUES (?, ?, ?, ?)",
		name, strings.Join(funcs, ","), source, time.Now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("save unit %s: %w", name, err)
	}
	return res.LastInsertId()
}

func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, funcs, source, created_at FROM units WHERE id = ?", id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return rec, err
}

// List returns all units, newest first.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, funcs, source, created_at FROM units ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		rec   Record
		funcs string
		ts    int64
	)
	if err := sc.Scan(&rec.ID, &rec.Name, &funcs, &rec.Source, &ts); err != nil {
		return nil, err
	}
	if funcs != "" {
		rec.Funcs = strings.Split(funcs, ",")
	}
	rec.CreatedAt = time.Unix(0, ts)
	return &rec, nil
}
