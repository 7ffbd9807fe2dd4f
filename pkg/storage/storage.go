package storage

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found in storage")

	// ErrPersistenceCorrupt means a stored snapshot could not be decoded
	ErrPersistenceCorrupt = errors.New("persisted snapshot is corrupt")
	// ErrPersistenceWrite means a snapshot could not be written
	ErrPersistenceWrite = errors.New("failed to persist snapshot")
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
)

var Drivers = []string{DriverFile, DriverSQLite, DriverBadger}

// Storage keeps the single encoded snapshot of the recommender
type Storage interface {
	// Init prepares the backend, creating files or schema as needed
	Init(ctx context.Context) error
	// Read returns the stored payload or ErrNotFound when nothing was saved yet
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored payload
	Write(ctx context.Context, payload []byte, updatedAt time.Time) error
	Driver() string
	Close() error
}
