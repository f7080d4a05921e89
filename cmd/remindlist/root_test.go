package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/remindlist/internal/model"
	"github.com/sandeepkv93/remindlist/internal/storage"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListPrintsStoreOrder(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "data", "reminders.db")
	logFile := filepath.Join(dir, "remindlist.log")

	if _, err := runCLI(t, "--db", db, "--log-file", logFile, "migrate", "up"); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	store, err := storage.Open(storage.BackendSQLite, db)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	for _, name := range []string{"Buy milk", "Call mum"} {
		if _, err := store.Persist(t.Context(), model.Reminder{Name: name, Priority: 2, Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)}); err != nil {
			t.Fatalf("persist: %v", err)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	out, err := runCLI(t, "--db", db, "--log-file", logFile, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(lines[0], "Buy milk") || !strings.Contains(lines[0], "02-Mar-24") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "Call mum") {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestMigrateRejectsBadgerAndUnknownDirection(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "remindlist.log")

	if _, err := runCLI(t, "--backend", "badger", "--db", dir, "--log-file", logFile, "migrate", "up"); err == nil {
		t.Fatalf("expected badger migrate to fail")
	}
	db := filepath.Join(dir, "reminders.db")
	if _, err := runCLI(t, "--db", db, "--log-file", logFile, "migrate", "sideways"); err == nil {
		t.Fatalf("expected unknown direction to fail")
	}
}

func TestUnknownBackendFails(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "--backend", "postgres", "--db", filepath.Join(dir, "x.db"), "--log-file", filepath.Join(dir, "l.log"), "list")
	if err == nil || !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("expected unknown backend error, got %v", err)
	}
}
