package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/viper"

	"github.com/kasuboski/mediarec/config"
	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/manager"
	"github.com/kasuboski/mediarec/pkg/storage"
	"github.com/kasuboski/mediarec/pkg/storage/badger"
	"github.com/kasuboski/mediarec/pkg/storage/file"
	"github.com/kasuboski/mediarec/pkg/storage/sqlite"
	"github.com/kasuboski/mediarec/pkg/tmdb"
)

// session is the state of one cli invocation, saved and closed after the command ran
type session struct {
	cfg     config.Config
	gateway *storage.Gateway
	manager *manager.MediaManager
}

var current *session

// openSession reads the configuration, loads the snapshot and builds the manager.
// Any failure is fatal for the command.
func openSession(ctx context.Context) *session {
	log := logger.FromCtx(ctx)

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatalw("failed to read configurations", "error", err)
	}

	tmdbClient, err := newTMDBClient(cfg.TMDB)
	if err != nil {
		log.Fatalw("failed to create tmdb client", "error", err)
	}

	store, err := newStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatalw("failed to open snapshot storage", "error", err)
	}

	gateway := storage.NewGateway(store)
	snap := gateway.Load(ctx)

	current = &session{
		cfg:     cfg,
		gateway: gateway,
		manager: manager.New(tmdbClient, gateway, snap, cfg),
	}

	if err := current.manager.CacheGenres(ctx); err != nil {
		log.Warnw("genre vocabulary is incomplete", "error", err)
	}

	return current
}

// closeSession saves the snapshot one last time and releases the storage
func closeSession(ctx context.Context) {
	if current == nil {
		return
	}
	log := logger.FromCtx(ctx)

	_ = current.manager.Save(ctx)
	if err := current.gateway.Close(); err != nil {
		log.Warnw("failed to close snapshot storage", "error", err)
	}
	current = nil
}

func newTMDBClient(cfg config.TMDB) (*tmdb.Client, error) {
	tmdbURL := url.URL{
		Scheme: cfg.Scheme,
		Host:   cfg.Host,
	}

	opts := tmdb.DefaultOptions()
	opts.MaxRetries = cfg.MaxRetries
	opts.BaseBackoff = cfg.BaseBackoff
	if cfg.RequestsPerSecond > 0 {
		opts.RequestsPerSecond = cfg.RequestsPerSecond
	}
	if cfg.Timeout > 0 {
		opts.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return tmdb.New(tmdbURL.String(), cfg.APIKey, opts)
}

// defaultPaths are the snapshot locations used when none is configured
var defaultPaths = map[string]string{
	storage.DriverFile:   "media_history.json",
	storage.DriverSQLite: "media_history.db",
	storage.DriverBadger: "media_history",
}

// newStorage opens and initializes the configured snapshot backend
func newStorage(ctx context.Context, cfg config.Storage) (storage.Storage, error) {
	var (
		s   storage.Storage
		err error
	)

	driver := cfg.Driver
	if driver == "" {
		driver = storage.DriverFile
	}
	path := cfg.FilePath
	if path == "" {
		path = defaultPaths[driver]
	}

	switch driver {
	case storage.DriverFile:
		s = file.New(path)
	case storage.DriverSQLite:
		s, err = sqlite.New(path)
	case storage.DriverBadger:
		s, err = badger.New(path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Init(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to init %s storage: %w", s.Driver(), err)
	}

	return s, nil
}
