package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"promptcalc/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	operand1   REAL NOT NULL,
	operator   TEXT NOT NULL,
	operand2   REAL NOT NULL,
	result     REAL NOT NULL,
	created_at TEXT NOT NULL
);`

// Store keeps calculation history in a local SQLite database.
type Store struct {
	db *sql.DB
}

var _ domain.HistoryStore = (*Store)(nil)

// Open opens (creating if needed) the history database at path and ensures
// the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// Single writer avoids "database is locked" on concurrent use.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Append records one completed calculation.
func (s *Store) Append(ctx context.Context, e domain.HistoryEntry) error {
	const query = `INSERT INTO calculations (operand1, operator, operand2, result, created_at) VALUES (?, ?, ?, ?, ?)`
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx, query,
		e.Operand1, string(e.Op), e.Operand2, e.Result, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// List returns all entries, oldest first.
func (s *Store) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	const query = `SELECT id, operand1, operator, operand2, result, created_at FROM calculations ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var out []domain.HistoryEntry
	for rows.Next() {
		var (
			e  domain.HistoryEntry
			op string
			at string
		)
		if err := rows.Scan(&e.ID, &e.Operand1, &op, &e.Operand2, &e.Result, &at); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Op = domain.Operator(op)
		if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
			e.At = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM calculations`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
