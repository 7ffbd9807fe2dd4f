package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/storage"
	"github.com/kasuboski/mediarec/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/mediarec/pkg/storage/sqlite/schema/gen/table"
)

// the snapshot table holds exactly one row
const snapshotRow = 1

type SQLite struct {
	db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New creates a new sqlite database given a path to the database file
func New(filePath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	return &SQLite{
		db: db,
	}, nil
}

// Init runs any pending migrations
func (s *SQLite) Init(ctx context.Context) error {
	if err := runMigrations(s.db); err != nil {
		return err
	}

	version, dirty, err := s.MigrationVersion()
	if err != nil {
		return err
	}
	logger.FromCtx(ctx).Debugw("sqlite schema ready", "version", version, "dirty", dirty)

	return nil
}

// Read returns the stored snapshot payload
func (s *SQLite) Read(ctx context.Context) ([]byte, error) {
	stmt := table.Snapshot.
		SELECT(table.Snapshot.AllColumns).
		FROM(table.Snapshot).
		WHERE(table.Snapshot.ID.EQ(sqlite.Int32(snapshotRow)))

	var row model.Snapshot
	err := stmt.QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return []byte(row.Payload), nil
}

// Write upserts the snapshot row
func (s *SQLite) Write(ctx context.Context, payload []byte, updatedAt time.Time) error {
	row := model.Snapshot{
		ID:        snapshotRow,
		Payload:   string(payload),
		UpdatedAt: updatedAt,
	}

	stmt := table.Snapshot.
		INSERT(table.Snapshot.AllColumns).
		MODEL(row).
		ON_CONFLICT(table.Snapshot.ID).
		DO_UPDATE(sqlite.SET(
			table.Snapshot.Payload.SET(table.Snapshot.EXCLUDED.Payload),
			table.Snapshot.UpdatedAt.SET(table.Snapshot.EXCLUDED.UpdatedAt),
		))

	_, err := s.handleStatement(ctx, stmt)
	return err
}

func (s *SQLite) Driver() string {
	return storage.DriverSQLite
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debugw("failed to init transaction", "error", err)
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debugw("failed to execute statement", "error", err)
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}
