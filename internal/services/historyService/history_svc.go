package historyservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNoHistory is returned by Last when nothing has been looked up yet.
var ErrNoHistory = errors.New("no lookup history yet")

const schema = `
CREATE TABLE IF NOT EXISTS lookups (
	id           TEXT PRIMARY KEY,
	town         TEXT NOT NULL,
	lat          REAL NOT NULL,
	lon          REAL NOT NULL,
	looked_up_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_lookups_time ON lookups(looked_up_at);
`

// Entry is one recorded lookup.
type Entry struct {
	ID         string    `json:"id"`
	Town       string    `json:"town"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	LookedUpAt time.Time `json:"looked_up_at"`
}

type HistoryService struct {
	db  *sql.DB
	now func() time.Time
}

// NewHistoryService opens (creating if needed) the database file and its schema
func NewHistoryService(dbPath string) (*HistoryService, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite serializes writers anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &HistoryService{db: db, now: time.Now}, nil
}

// Close closes the DB
func (s *HistoryService) Close() error {
	return s.db.Close()
}

// Record stores a successful lookup.
func (s *HistoryService) Record(ctx context.Context, town string, lat, lon float64) error {
	if town == "" {
		return fmt.Errorf("town cannot be empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lookups (id, town, lat, lon, looked_up_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), town, lat, lon, s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// Recent returns up to limit lookups, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, town, lat, lon, looked_up_at FROM lookups ORDER BY looked_up_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			ts int64
		)
		if err := rows.Scan(&e.ID, &e.Town, &e.Lat, &e.Lon, &ts); err != nil {
			return nil, err
		}
		e.LookedUpAt = time.Unix(0, ts)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Last returns the most recent lookup, or ErrNoHistory.
func (s *HistoryService) Last(ctx context.Context) (Entry, error) {
	entries, err := s.Recent(ctx, 1)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, ErrNoHistory
	}
	return entries[0], nil
}

// Clear deletes every recorded lookup and returns how many were removed.
func (s *HistoryService) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lookups`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}
