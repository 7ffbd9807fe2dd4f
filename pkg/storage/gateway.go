package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/media"
	"github.com/kasuboski/mediarec/pkg/metrics"
)

// Gateway loads and saves the recommender snapshot through a Storage backend
type Gateway struct {
	storage Storage
	now     func() time.Time
}

func NewGateway(s Storage) *Gateway {
	return &Gateway{
		storage: s,
		now:     time.Now,
	}
}

// Load returns the stored snapshot. Missing or unreadable state yields a fresh
// empty snapshot, Load never fails.
func (g *Gateway) Load(ctx context.Context) media.Snapshot {
	log := logger.FromCtx(ctx).With("driver", g.storage.Driver())

	payload, err := g.storage.Read(ctx)
	if errors.Is(err, ErrNotFound) {
		log.Debug("no snapshot stored yet, starting fresh")
		return media.NewSnapshot()
	}
	if err != nil {
		log.Warnw("failed to read snapshot, starting fresh", "error", err)
		metrics.SnapshotResets.WithLabelValues(g.storage.Driver()).Inc()
		return media.NewSnapshot()
	}

	snap, err := Decode(payload)
	if err != nil {
		log.Warnw("discarding stored snapshot", "error", err)
		metrics.SnapshotResets.WithLabelValues(g.storage.Driver()).Inc()
		return media.NewSnapshot()
	}

	log.Debugw("loaded snapshot", "history", len(snap.WatchHistory), "updated_at", snap.UpdatedAt)
	return snap
}

// Save stamps the snapshot with the current time and writes it. The returned
// error wraps ErrPersistenceWrite and is informational only.
func (g *Gateway) Save(ctx context.Context, snap *media.Snapshot) error {
	log := logger.FromCtx(ctx).With("driver", g.storage.Driver())

	snap.UpdatedAt = g.now().UTC()
	payload, err := Encode(*snap)
	if err == nil {
		err = g.storage.Write(ctx, payload, snap.UpdatedAt)
	}
	if err != nil {
		log.Errorw("failed to save snapshot", "error", err)
		metrics.SnapshotSaves.WithLabelValues(g.storage.Driver(), "error").Inc()
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}

	metrics.SnapshotSaves.WithLabelValues(g.storage.Driver(), "ok").Inc()
	return nil
}

func (g *Gateway) Close() error {
	return g.storage.Close()
}

func Encode(snap media.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// Decode parses a stored payload. Anything that is not a snapshot object is
// reported as ErrPersistenceCorrupt.
func Decode(payload []byte) (media.Snapshot, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return media.Snapshot{}, fmt.Errorf("%w: not a json object", ErrPersistenceCorrupt)
	}

	var snap media.Snapshot
	if err := json.Unmarshal(trimmed, &snap); err != nil {
		return media.Snapshot{}, fmt.Errorf("%w: %w", ErrPersistenceCorrupt, err)
	}
	snap.Normalize()

	return snap, nil
}
