// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history journals tool invocations in SQLite. It records which
// tool ran with which arguments, how long it took and how it ended; it never
// stores paper metadata.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultLimit bounds Recent when the caller passes no limit.
const DefaultLimit = 20

// timeLayout is fixed-width so that called_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one journaled tool call.
type Entry struct {
	ID        int64         `json:"id" yaml:"id"`
	Tool      string        `json:"tool" yaml:"tool"`
	Arguments string        `json:"arguments" yaml:"arguments"`
	Outcome   string        `json:"outcome" yaml:"outcome"`
	Message   string        `json:"message,omitempty" yaml:"message,omitempty"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	CalledAt  time.Time     `json:"called_at" yaml:"called_at"`
}

// ToolStat aggregates the journal per tool.
type ToolStat struct {
	Tool   string `json:"tool" yaml:"tool"`
	Calls  int    `json:"calls" yaml:"calls"`
	Errors int    `json:"errors" yaml:"errors"`
}

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the journal at path, creating parent
// directories and the schema as needed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS calls (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tool TEXT NOT NULL,
			arguments TEXT NOT NULL,
			outcome TEXT NOT NULL,
			message TEXT,
			duration_ms INTEGER NOT NULL,
			called_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_calls_tool ON calls(tool)`,
		`CREATE INDEX IF NOT EXISTS idx_calls_called_at ON calls(called_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends e to the journal and returns its id.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.CalledAt.IsZero() {
		e.CalledAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO calls (tool, arguments, outcome, message, duration_ms, called_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Tool, e.Arguments, e.Outcome, e.Message, e.Duration.Milliseconds(),
		e.CalledAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("recording %s call: %w", e.Tool, err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit entries, newest first. A non-empty tool
// restricts the result to that tool.
func (s *Store) Recent(ctx context.Context, tool string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := `SELECT id, tool, arguments, outcome, COALESCE(message, ''), duration_ms, called_at FROM calls`
	args := []any{}
	if tool != "" {
		q += ` WHERE tool = ?`
		args = append(args, tool)
	}
	q += ` ORDER BY called_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e        Entry
			ms       int64
			calledAt string
		)
		if err := rows.Scan(&e.ID, &e.Tool, &e.Arguments, &e.Outcome, &e.Message, &ms, &calledAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		if t, err := time.Parse(timeLayout, calledAt); err == nil {
			e.CalledAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Stats counts calls and failed calls per tool, ordered by tool name.
func (s *Store) Stats(ctx context.Context) ([]ToolStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tool, COUNT(*), SUM(CASE WHEN outcome = 'ok' THEN 0 ELSE 1 END)
		 FROM calls GROUP BY tool ORDER BY tool`)
	if err != nil {
		return nil, fmt.Errorf("querying history stats: %w", err)
	}
	defer rows.Close()

	var out []ToolStat
	for rows.Next() {
		var st ToolStat
		if err := rows.Scan(&st.Tool, &st.Calls, &st.Errors); err != nil {
			return nil, fmt.Errorf("scanning stats row: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
