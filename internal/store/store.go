// Package store is the persistence adapter: a small key-value table in a
// local SQLite database holding JSON-encoded collections. It mirrors the
// contract of a browser-style local store: synchronous get/set/remove on
// whole collections, no cross-collection transactions, and a read of
// malformed JSON is treated as "absent" rather than an error.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nmtri/rolecoach/internal/config"
	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// Collection keys. Each key holds one JSON document.
const (
	KeyAPIKey           = "api_key"
	KeyAdvisorProfile   = "advisor_profile"
	KeySessions         = "sessions"
	KeyCurrentSession   = "current_session"
	KeyGeneratedPrompts = "generated_prompts"
)

// Init initializes the SQLite database at baseDir/rolecoach.db.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.rolecoach.
func Init(baseDir string) (*sql.DB, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	_ = os.Chmod(baseDir, 0700)

	// Exports subdirectory for profile/prompt export files
	exportsDir := filepath.Join(baseDir, "exports")
	if err := os.MkdirAll(exportsDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create exports directory: %w", err)
	}
	_ = os.Chmod(exportsDir, 0700)

	dbPath := filepath.Join(baseDir, "rolecoach.db")
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := verifyWALMode(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	_ = os.Chmod(dbPath, 0600)

	return db, nil
}

// ConfigurePool applies connection pool settings from config.
// Only sets limits if explicitly configured (non-zero values).
func ConfigurePool(db *sql.DB, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := getUserVersion(db)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: Initial schema (v1)
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS collections (
		  key        TEXT PRIMARY KEY,
		  value      TEXT NOT NULL,
		  updated_at INTEGER NOT NULL DEFAULT (unixepoch())
		);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := setUserVersion(db, 1); err != nil {
			return err
		}
	}

	// Future migrations go here:
	// if version < 2 { ... }

	return nil
}

// verifyWALMode checks that WAL mode is active (set via connection string).
func verifyWALMode(db *sql.DB) error {
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return fmt.Errorf("failed to verify journal mode: %w", err)
	}
	if journalMode != "wal" {
		return fmt.Errorf("expected WAL mode, got %s", journalMode)
	}
	return nil
}

func getUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

func setUserVersion(db *sql.DB, version int) error {
	_, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version))
	if err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}

// Store wraps the collections table with JSON encode/decode.
type Store struct {
	db *sql.DB
}

// New wraps an initialized database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get decodes the collection stored under key into out. It returns false
// when the key is absent or the stored JSON is malformed; malformed values
// are logged and treated as absent, never propagated.
func (s *Store) Get(key string, out any) bool {
	var value string
	err := s.db.QueryRow(`SELECT value FROM collections WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		log.Printf("store: read %q failed: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		log.Printf("store: malformed JSON under %q, treating as absent: %v", key, err)
		return false
	}
	return true
}

// Set JSON-encodes v and stores it under key, replacing any prior value.
// Write failures are logged, not surfaced; the in-memory state of callers
// stays authoritative for the current run.
func (s *Store) Set(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("store: encode %q failed: %v", key, err)
		return
	}
	_, err = s.db.Exec(`
		INSERT INTO collections (key, value, updated_at) VALUES (?, ?, unixepoch())
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data))
	if err != nil {
		log.Printf("store: write %q failed: %v", key, err)
	}
}

// Remove deletes the collection stored under key. Missing keys are a no-op.
func (s *Store) Remove(key string) {
	if _, err := s.db.Exec(`DELETE FROM collections WHERE key = ?`, key); err != nil {
		log.Printf("store: remove %q failed: %v", key, err)
	}
}

// APIKey returns the stored Gemini API key, or "" when none is set.
func (s *Store) APIKey() string {
	var key string
	if !s.Get(KeyAPIKey, &key) {
		return ""
	}
	return key
}

// SetAPIKey stores the Gemini API key.
func (s *Store) SetAPIKey(key string) {
	s.Set(KeyAPIKey, key)
}

// RemoveAPIKey deletes the stored Gemini API key.
func (s *Store) RemoveAPIKey() {
	s.Remove(KeyAPIKey)
}
