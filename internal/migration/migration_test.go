package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql":   {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
		"002_ledger.sql": {Data: []byte("CREATE TABLE habit_progress (habit_id TEXT, day TEXT);")},
	}

	db := openTestDB(t)
	runner := NewRunner(db, fsys)

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Re-running is a no-op.
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second run applied = %d, want 0", applied)
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
		"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
	}

	db := openTestDB(t)
	runner := NewRunner(db, fsys)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from malformed migration")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1 (the valid migration before the failure)", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1 after failed second migration", version)
	}
}

func TestReadMigrationFilesRejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"001_b.sql": {Data: []byte("SELECT 1;")},
	}
	runner := NewRunner(openTestDB(t), fsys)
	if _, err := runner.ReadMigrationFiles(); err == nil {
		t.Error("expected duplicate version error")
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
	}
	db := openTestDB(t)
	runner := NewRunner(db, fsys)
	if err := runner.EnsureSchemaVersionTable(); err != nil {
		t.Fatalf("EnsureSchemaVersionTable() error = %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
		t.Fatalf("failed to seed version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error for schema newer than application")
	}
}
