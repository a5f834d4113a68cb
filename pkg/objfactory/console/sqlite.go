package console

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteHistory persists console messages to SQLite so diagnostics survive
// restarts of the host process.
type SQLiteHistory struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// Compile-time interface check.
var _ History = (*SQLiteHistory)(nil)

// NewSQLiteHistory opens (or creates) a history database at path.
// Use ":memory:" for a throwaway store.
func NewSQLiteHistory(path string) (*SQLiteHistory, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// Each connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS console_messages (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			level INTEGER NOT NULL,
			text TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteHistory{db: db}, nil
}

// Append implements History.
func (s *SQLiteHistory) Append(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrHistoryClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO console_messages (id, level, text, timestamp)
		VALUES (?, ?, ?, ?)
	`, msg.ID, int(msg.Level), msg.Text, msg.Time.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

// List implements History.
func (s *SQLiteHistory) List(limit int) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrHistoryClosed
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(`
		SELECT id, level, text, timestamp FROM (
			SELECT seq, id, level, text, timestamp
			FROM console_messages
			ORDER BY seq DESC
			LIMIT ?
		) ORDER BY seq
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var msg Message
		var level int
		var timestamp string
		if err := rows.Scan(&msg.ID, &level, &msg.Text, &timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msg.Level = Level(level)
		msg.Time, _ = time.Parse(time.RFC3339Nano, timestamp)
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return msgs, nil
}

// Count implements History.
func (s *SQLiteHistory) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrHistoryClosed
	}

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM console_messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return n, nil
}

// Clear implements History.
func (s *SQLiteHistory) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrHistoryClosed
	}
	if _, err := s.db.Exec(`DELETE FROM console_messages`); err != nil {
		return fmt.Errorf("clear messages: %w", err)
	}
	return nil
}

// Close implements History.
func (s *SQLiteHistory) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
