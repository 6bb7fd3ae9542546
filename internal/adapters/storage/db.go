package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when an update, delete, or toggle targets a
// missing row.
var ErrNotFound = errors.New("storage: record not found")

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Nested collections (features, tags, agenda, speakers, socials) are
	// stored as JSON text; the dev store never queries inside them.
	schema := `
	CREATE TABLE IF NOT EXISTS segment (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		icon TEXT NOT NULL DEFAULT '',
		features TEXT NOT NULL DEFAULT '[]',
		ord INTEGER NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		metadata TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS message (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		author_name TEXT NOT NULL,
		author_role TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		ord INTEGER NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		metadata TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS slide (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		subtitle TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL,
		cta_label TEXT NOT NULL DEFAULT '',
		cta_url TEXT NOT NULL DEFAULT '',
		ord INTEGER NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		metadata TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS faq (
		id TEXT PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		category TEXT NOT NULL,
		ord INTEGER NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		metadata TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS gallery_item (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL,
		category TEXT NOT NULL,
		ord INTEGER NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		metadata TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS member (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		year TEXT NOT NULL DEFAULT '',
		socials TEXT NOT NULL DEFAULT '[]',
		ord INTEGER NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		metadata TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS event (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL DEFAULT '',
		end_time TEXT NOT NULL DEFAULT '',
		venue TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		agenda TEXT NOT NULL DEFAULT '[]',
		speakers TEXT NOT NULL DEFAULT '[]',
		capacity INTEGER NOT NULL DEFAULT 0,
		ord INTEGER NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		metadata TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS inquiry (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// TimeLayout is the canonical timestamp format for all TEXT time columns.
const TimeLayout = "2006-01-02T15:04:05Z07:00"

// MarshalJSONColumn serializes a nested collection for a JSON text column.
// Nil collections become their empty JSON literal rather than "null".
func MarshalJSONColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal json column: %w", err)
	}
	s := string(b)
	if s == "null" {
		switch v.(type) {
		case nil:
			s = "{}"
		default:
			s = "[]"
		}
	}
	return s, nil
}

// UnmarshalJSONColumn deserializes a JSON text column. Empty text leaves the
// destination at its zero value.
func UnmarshalJSONColumn(raw string, out any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("unmarshal json column: %w", err)
	}
	return nil
}

// BoolToInt converts a bool to its INTEGER column value.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
