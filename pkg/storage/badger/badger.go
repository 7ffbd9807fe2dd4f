package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/kasuboski/mediarec/pkg/storage"
)

var snapshotKey = []byte("snapshot")

// Badger stores the snapshot in an embedded key value store
type Badger struct {
	db *badger.DB
}

var _ storage.Storage = (*Badger)(nil)

// New opens the store in dir. An empty dir keeps everything in memory.
func New(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	opts = opts.
		WithMemTableSize(16 << 20).
		WithValueLogFileSize(64 << 20).
		WithNumMemtables(2).
		WithNumLevelZeroTables(2).
		WithNumLevelZeroTablesStall(4)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	return &Badger{db: db}, nil
}

func (b *Badger) Init(ctx context.Context) error {
	return nil
}

func (b *Badger) Read(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		payload, err = item.ValueCopy(nil)
		return err
	})

	return payload, err
}

func (b *Badger) Write(ctx context.Context, payload []byte, _ time.Time) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey, payload)
	})
}

func (b *Badger) Driver() string {
	return storage.DriverBadger
}

func (b *Badger) Close() error {
	return b.db.Close()
}
