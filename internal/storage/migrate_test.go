package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/remindlist/internal/model"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("repeated migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	created, err := repo.Persist(t.Context(), model.Reminder{
		Name:     "Roundtrip reminder",
		Priority: 3,
		Date:     date(2026, 2, 9),
	})
	if err != nil {
		t.Fatalf("insert after roundtrip failed: %v", err)
	}

	all, err := repo.FindAll(t.Context())
	if err != nil {
		t.Fatalf("find after roundtrip failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != created.ID || all[0].Name != "Roundtrip reminder" {
		t.Fatalf("unexpected rows after roundtrip: %#v", all)
	}
}
