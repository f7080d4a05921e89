package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/remindlist/internal/model"
)

var (
	ErrNotFound       = errors.New("storage: not found")
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

// Repository is the reminder store consumed by the presenter. Merge and
// Delete report ErrNotFound when another client removed the record first.
type Repository interface {
	FindAll(ctx context.Context) ([]model.Reminder, error)
	Persist(ctx context.Context, in model.Reminder) (model.Reminder, error)
	Merge(ctx context.Context, in model.Reminder) (model.Reminder, error)
	Delete(ctx context.Context, in model.Reminder) error
}

type Store interface {
	Repository
	Close() error
}

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendBadger Backend = "badger"
)

func ParseBackend(raw string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(raw))); b {
	case BackendSQLite, BackendBadger:
		return b, nil
	case "":
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, raw)
	}
}

// Open returns a ready-to-use store. SQLite databases are migrated up on open.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite, "":
		repo, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		if err := MigrateUp(repo.db); err != nil {
			_ = repo.Close()
			return nil, err
		}
		return repo, nil
	case BackendBadger:
		repo, err := OpenBadger(BadgerOptions{Path: path})
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
