package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pyperpy/pyper-backend/pkg/migrate"
)

func TestMigrationsDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}

func TestProductsMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_products_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS kit_items",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_products_slug",
		"CREATE INDEX IF NOT EXISTS idx_kit_items_kit_id",
		"CHECK (quantity >= 1)",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestBannersMigrationContainsSchedule(t *testing.T) {
	content := readMigration(t, "*_create_banners_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS banners",
		"days_of_week text[]",
		"start_time text NOT NULL DEFAULT '00:00:00'",
		"end_time text NOT NULL DEFAULT '23:59:59'",
		"always_active boolean",
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
