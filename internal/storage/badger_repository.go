package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/sandeepkv93/remindlist/internal/model"
)

const (
	reminderPrefix = "reminder:"
	sequenceKey    = "seq:reminder"
)

type BadgerOptions struct {
	// Path is the database directory. Empty means in-memory.
	Path     string
	InMemory bool
}

// BadgerRepository keeps reminders as JSON values under reminder:<id>.
// A badger sequence preserves insertion order for FindAll.
type BadgerRepository struct {
	db  *badger.DB
	seq *badger.Sequence
	now func() time.Time
}

func OpenBadger(opts BadgerOptions) (*BadgerRepository, error) {
	var badgerOpts badger.Options
	if opts.InMemory || opts.Path == "" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create badger dir: %w", err)
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
	}
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	seq, err := db.GetSequence([]byte(sequenceKey), 64)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("reminder sequence: %w", err)
	}
	return &BadgerRepository{db: db, seq: seq, now: time.Now}, nil
}

func (r *BadgerRepository) Close() error {
	if err := r.seq.Release(); err != nil {
		_ = r.db.Close()
		return err
	}
	return r.db.Close()
}

func (r *BadgerRepository) FindAll(ctx context.Context) ([]model.Reminder, error) {
	records := make([]reminderRecord, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(reminderPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var rec reminderRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Seq != records[j].Seq {
			return records[i].Seq < records[j].Seq
		}
		return records[i].ID < records[j].ID
	})
	out := make([]model.Reminder, 0, len(records))
	for _, rec := range records {
		item, convErr := rec.toModel()
		if convErr != nil {
			return nil, fmt.Errorf("decode reminder %s: %w", rec.ID, convErr)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *BadgerRepository) Persist(ctx context.Context, in model.Reminder) (model.Reminder, error) {
	if err := in.Validate(); err != nil {
		return model.Reminder{}, err
	}
	seq, err := r.seq.Next()
	if err != nil {
		return model.Reminder{}, fmt.Errorf("next sequence: %w", err)
	}
	in.ID = uuid.NewString()
	in.Date = normalizeDate(in.Date)

	rec := toRecord(in)
	rec.Seq = seq
	rec.CreatedAt = r.now().UTC()
	if err := r.db.Update(func(txn *badger.Txn) error {
		return putRecord(txn, rec)
	}); err != nil {
		return model.Reminder{}, err
	}
	return in, nil
}

func (r *BadgerRepository) Merge(ctx context.Context, in model.Reminder) (model.Reminder, error) {
	if err := in.Validate(); err != nil {
		return model.Reminder{}, err
	}
	in.Date = normalizeDate(in.Date)
	err := r.db.Update(func(txn *badger.Txn) error {
		existing, err := getRecord(txn, in.ID)
		if err != nil {
			return err
		}
		rec := toRecord(in)
		rec.Seq = existing.Seq
		rec.CreatedAt = existing.CreatedAt
		return putRecord(txn, rec)
	})
	if err != nil {
		return model.Reminder{}, err
	}
	return in, nil
}

func (r *BadgerRepository) Delete(ctx context.Context, in model.Reminder) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := getRecord(txn, in.ID); err != nil {
			return err
		}
		return txn.Delete(reminderKey(in.ID))
	})
}

func reminderKey(id string) []byte {
	return []byte(reminderPrefix + id)
}

func getRecord(txn *badger.Txn, id string) (reminderRecord, error) {
	item, err := txn.Get(reminderKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return reminderRecord{}, ErrNotFound
		}
		return reminderRecord{}, err
	}
	var rec reminderRecord
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	return rec, err
}

func putRecord(txn *badger.Txn, rec reminderRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return txn.Set(reminderKey(rec.ID), data)
}
