package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/healthybite-ma/storefront-backend/pkg/migrate"
)

func TestMigrationDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("ValidateDir failed: %v", err)
	}
}

func TestProductsMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_products_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"price INTEGER NOT NULL CHECK (price >= 0)",
		"ingredients JSONB NOT NULL DEFAULT '[]'::jsonb",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_products_slug",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at_id",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestProgramsMigrationContainsSchedule(t *testing.T) {
	content := readMigration(t, "*_create_programs_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS programs",
		"duration INTEGER NOT NULL DEFAULT 7 CHECK (duration >= 1)",
		"schedule JSONB NOT NULL DEFAULT '[]'::jsonb",
		"features TEXT[] NOT NULL DEFAULT '{}'",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_programs_slug",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
