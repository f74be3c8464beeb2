package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// Current schema version
const SchemaVersion = "1"

// SQLite is a SQLite-backed tape.
type SQLite struct {
	mu  sync.Mutex
	db  *sql.DB
	now func() time.Time
}

// NewSQLite opens (or creates) a SQLite tape at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}

	// Create tables if not exists
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tape (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			lhs TEXT NOT NULL,
			operator TEXT NOT NULL,
			rhs TEXT NOT NULL,
			result TEXT NOT NULL,
			digest INTEGER NOT NULL DEFAULT 0,
			ts TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{db: db, now: time.Now}

	version, err := s.getMetadataUnlocked("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}
	switch version {
	case "":
		if err := s.setMetadataUnlocked("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported schema version: %s (expected %s)", version, SchemaVersion)
	}

	return s, nil
}

// Record appends an entry to the tape.
func (s *SQLite) Record(e Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.Ts = s.now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return e, err
	}
	res, err := tx.Exec(`
		INSERT INTO tape (lhs, operator, rhs, result, ts) VALUES (?, ?, ?, ?, ?)
	`, e.Left, e.Operator, e.Right, e.Result, e.Ts.Format(time.RFC3339Nano))
	if err != nil {
		tx.Rollback()
		return e, err
	}
	e.Seq, err = res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return e, err
	}
	e = seal(e)
	// digest is a uint64; SQLite integers are signed, so store the bit pattern.
	if _, err := tx.Exec("UPDATE tape SET digest = ? WHERE seq = ?", int64(e.Digest), e.Seq); err != nil {
		tx.Rollback()
		return e, err
	}
	return e, tx.Commit()
}

// Entries returns the most recent entries, newest first.
func (s *SQLite) Entries(limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := "SELECT seq, lhs, operator, rhs, result, digest, ts FROM tape ORDER BY seq DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			digest int64
			ts     string
		)
		if err := rows.Scan(&e.Seq, &e.Left, &e.Operator, &e.Right, &e.Result, &digest, &ts); err != nil {
			return nil, err
		}
		e.Digest = uint64(digest)
		if e.Ts, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("tape entry %d: bad timestamp %q: %w", e.Seq, ts, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Reset deletes every entry.
func (s *SQLite) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM tape")
	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// GetMetadata retrieves a metadata value by key.
func (s *SQLite) GetMetadata(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getMetadataUnlocked(key)
}

// getMetadataUnlocked retrieves metadata without locking (caller must hold lock).
func (s *SQLite) getMetadataUnlocked(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetMetadata stores a metadata value by key.
func (s *SQLite) SetMetadata(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setMetadataUnlocked(key, value)
}

// setMetadataUnlocked stores metadata without locking (caller must hold lock).
func (s *SQLite) setMetadataUnlocked(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
