package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/remindlist/internal/model"
)

// sqliteTimeLayout is fixed width so created_at sorts as text.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return &SQLiteRepository{db: db, now: time.Now}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// DB exposes the handle for migrations.
func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, priority, date
		FROM reminders ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reminder, 0)
	for rows.Next() {
		item, scanErr := scanReminder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) Persist(ctx context.Context, in model.Reminder) (model.Reminder, error) {
	if err := in.Validate(); err != nil {
		return model.Reminder{}, err
	}
	in.ID = uuid.NewString()
	in.Date = normalizeDate(in.Date)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (id, name, priority, date, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Name, in.Priority, in.Date.Format(dateLayout), r.now().UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return model.Reminder{}, err
	}
	return in, nil
}

func (r *SQLiteRepository) Merge(ctx context.Context, in model.Reminder) (model.Reminder, error) {
	if err := in.Validate(); err != nil {
		return model.Reminder{}, err
	}
	in.Date = normalizeDate(in.Date)
	res, err := r.db.ExecContext(ctx, `
		UPDATE reminders
		SET name = ?, priority = ?, date = ?
		WHERE id = ?`,
		in.Name, in.Priority, in.Date.Format(dateLayout), in.ID,
	)
	if err != nil {
		return model.Reminder{}, err
	}
	if err := checkRowsAffected(res); err != nil {
		return model.Reminder{}, err
	}
	return in, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, in model.Reminder) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, in.ID)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReminder(s scanner) (model.Reminder, error) {
	var out model.Reminder
	var date string
	if err := s.Scan(&out.ID, &out.Name, &out.Priority, &date); err != nil {
		return model.Reminder{}, err
	}
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("parse date of %s: %w", out.ID, err)
	}
	out.Date = parsed
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
