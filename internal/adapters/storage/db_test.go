package storage

import (
	"database/sql"
	"sort"
	"testing"

	_ "modernc.org/sqlite"
)

// openTestDB creates an in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// getTableNames returns sorted table names from sqlite_master, excluding internal tables.
func getTableNames(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan table name: %v", err)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// expectedTables is the sorted list of tables after InitDB.
var expectedTables = []string{
	"event",
	"faq",
	"gallery_item",
	"inquiry",
	"member",
	"message",
	"segment",
	"slide",
}

// TestInitDB_Fresh verifies the schema applies cleanly to an empty database.
func TestInitDB_Fresh(t *testing.T) {
	db := openTestDB(t)

	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB failed on fresh db: %v", err)
	}

	tables := getTableNames(t, db)
	if len(tables) != len(expectedTables) {
		t.Errorf("got %d tables, want %d\ngot:  %v\nwant: %v", len(tables), len(expectedTables), tables, expectedTables)
	}
	for i, want := range expectedTables {
		if i >= len(tables) {
			t.Errorf("missing table: %s", want)
			continue
		}
		if tables[i] != want {
			t.Errorf("table[%d] = %q, want %q", i, tables[i], want)
		}
	}
}

// TestInitDB_Idempotent verifies running InitDB twice neither errors nor
// loses data.
func TestInitDB_Idempotent(t *testing.T) {
	db := openTestDB(t)

	if err := InitDB(db); err != nil {
		t.Fatalf("first InitDB failed: %v", err)
	}
	_, err := db.Exec(`INSERT INTO faq (id, question, answer, category, ord, created_at)
		VALUES ('f1', 'How do I join?', 'Come to a weekly meeting and say hello.', 'general', 1, '2026-01-01T00:00:00Z')`)
	if err != nil {
		t.Fatalf("failed to insert test faq: %v", err)
	}

	if err := InitDB(db); err != nil {
		t.Fatalf("second InitDB failed: %v", err)
	}

	var question string
	if err := db.QueryRow("SELECT question FROM faq WHERE id = 'f1'").Scan(&question); err != nil {
		t.Fatalf("data lost after second InitDB: %v", err)
	}
	if question != "How do I join?" {
		t.Errorf("question = %q, want %q", question, "How do I join?")
	}
}

func TestMarshalJSONColumn_NilCollections(t *testing.T) {
	var tags []string
	got, err := MarshalJSONColumn(tags)
	if err != nil {
		t.Fatalf("MarshalJSONColumn: %v", err)
	}
	if got != "[]" {
		t.Errorf("nil slice column = %q, want []", got)
	}
}

func TestUnmarshalJSONColumn_EmptyText(t *testing.T) {
	var tags []string
	if err := UnmarshalJSONColumn("", &tags); err != nil {
		t.Fatalf("UnmarshalJSONColumn: %v", err)
	}
	if tags != nil {
		t.Errorf("tags = %v, want nil for empty column", tags)
	}
}
