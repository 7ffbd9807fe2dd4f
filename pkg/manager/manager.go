package manager

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kasuboski/mediarec/config"
	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/media"
	"github.com/kasuboski/mediarec/pkg/recommend"
	"github.com/kasuboski/mediarec/pkg/storage"
	"github.com/kasuboski/mediarec/pkg/tmdb"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmptyQuery = errors.New("query is empty")
)

const (
	topCast    = 5
	resultSize = 5
	statsTop   = 5
)

type MediaManager struct {
	catalog *Catalog
	engine  *recommend.Engine
	gateway *storage.Gateway
}

func New(tmdbClient TMDBClientInterface, gateway *storage.Gateway, snap media.Snapshot, cfg config.Config) *MediaManager {
	ttl := cfg.TMDB.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	catalog := NewCatalog(tmdbClient, ttl)

	return &MediaManager{
		catalog: catalog,
		engine:  recommend.New(recommend.NewStore(snap), catalog, RecommendConfig(cfg.Recommend)),
		gateway: gateway,
	}
}

// RecommendConfig converts the recommend configuration section into engine settings
func RecommendConfig(c config.Recommend) recommend.Config {
	return recommend.Config{
		Neighbors:       c.Neighbors,
		SimilarCount:    c.SimilarCount,
		ResultSize:      c.ResultSize,
		Window:          c.Window,
		MinWatchEvents:  c.MinWatchEvents,
		MinTransactions: c.MinTransactions,
		MinSupport:      c.MinSupport,
		MinConfidence:   c.MinConfidence,
		MaxRules:        c.MaxRules,
	}
}

// Engine exposes the recommendation engine for read only use
func (m *MediaManager) Engine() *recommend.Engine {
	return m.engine
}

// Save persists the current snapshot. Failures are logged by the gateway and returned for information.
func (m *MediaManager) Save(ctx context.Context) error {
	return m.gateway.Save(ctx, m.engine.Store.Snapshot())
}

// CacheGenres fills the genre vocabulary from the catalog when it is empty
func (m *MediaManager) CacheGenres(ctx context.Context) error {
	log := logger.FromCtx(ctx)
	vocab := m.engine.Store.Vocabulary()
	if vocab.Len() > 0 {
		return nil
	}

	var errs []error
	for _, mt := range media.Types {
		genres, err := m.catalog.Genres(ctx, mt)
		if err != nil {
			log.Warnw("failed to cache genres", "type", mt, "error", err)
			errs = append(errs, fmt.Errorf("%s genres: %w", mt, err))
			continue
		}
		for _, g := range genres {
			vocab.Register(mt, g.ID, g.Name)
		}
	}

	if vocab.Len() > 0 {
		log.Debugw("cached genres", "count", vocab.Len())
		m.Save(ctx)
	}

	return errors.Join(errs...)
}

type LookupResult struct {
	Record          media.Record   `json:"record"`
	Recommendations []media.Record `json:"recommendations"`
	// Repeat is set when the title was already known
	Repeat bool `json:"repeat"`
}

// Lookup finds a title, learns it and returns its recommendations. Titles already
// stored are served from the store. Every successful lookup is a watch event.
func (m *MediaManager) Lookup(ctx context.Context, mt media.Type, query string) (LookupResult, error) {
	log := logger.FromCtx(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		log.Debugw("lookup query is empty", "type", mt.String())
		return LookupResult{}, ErrEmptyQuery
	}

	if rec, ok := m.engine.Store.FindType(mt, query); ok {
		return m.watch(ctx, rec, m.related(ctx, rec), true)
	}

	results, err := m.catalog.Search(ctx, mt, query)
	if err != nil {
		return LookupResult{}, catalogError(mt, query, err)
	}
	if len(results) == 0 {
		return LookupResult{}, fmt.Errorf("%w: %s %q", ErrNotFound, mt, query)
	}

	details, err := m.catalog.Details(ctx, mt, results[0].ID)
	if err != nil {
		return LookupResult{}, catalogError(mt, query, err)
	}

	vocab := m.engine.Store.Vocabulary()
	for _, g := range details.Genres {
		vocab.Register(mt, g.ID, g.Name)
	}

	features, err := recommend.Extract(mt, details.Raw)
	if err != nil {
		log.Warnw("failed to extract features", "title", details.DisplayTitle(), "error", err)
		return LookupResult{}, err
	}

	rec, added := m.engine.Learn(recordFromDetails(mt, query, details), features)
	if added {
		log.Debugw("learned new title", "title", rec.Title, "type", mt)
	}

	return m.watch(ctx, rec, summaries(details.Recommendations.Results), !added)
}

func (m *MediaManager) watch(ctx context.Context, rec media.Record, related []media.Summary, repeat bool) (LookupResult, error) {
	recs, err := m.engine.Watch(ctx, recommend.Subject{Record: rec, Related: related}, repeat)
	if err != nil {
		return LookupResult{}, err
	}
	m.Save(ctx)

	stored, _ := m.engine.Store.Find(rec.Title)
	return LookupResult{Record: stored, Recommendations: recs, Repeat: repeat}, nil
}

// related fetches the catalog recommendations of a stored record. It yields
// nothing when the record has no catalog id or the catalog fails.
func (m *MediaManager) related(ctx context.Context, rec media.Record) []media.Summary {
	if rec.ID == 0 {
		return nil
	}

	details, err := m.catalog.Details(ctx, rec.Type, rec.ID)
	if err != nil {
		logger.FromCtx(ctx).Debugw("failed to refresh related titles", "title", rec.Title, "error", err)
		return nil
	}
	return summaries(details.Recommendations.Results)
}

func catalogError(mt media.Type, query string, err error) error {
	if errors.Is(err, tmdb.ErrNotFound) {
		return fmt.Errorf("%w: %s %q", ErrNotFound, mt, query)
	}
	return fmt.Errorf("%w: %w", recommend.ErrCollaboratorUnavailable, err)
}

func recordFromDetails(mt media.Type, query string, d tmdb.Details) media.Record {
	rec := media.Record{
		ID:       d.ID,
		Title:    d.DisplayTitle(),
		Year:     "N/A",
		Rating:   d.VoteAverage,
		Overview: d.Overview,
		Genres:   make([]string, 0, len(d.Genres)),
		Type:     mt,
		Actors:   d.Credits.TopCast(topCast),
	}
	if rec.Title == "" {
		rec.Title = query
	}
	if date := d.Date(); len(date) >= 4 {
		rec.Year = date[:4]
	}
	for _, g := range d.Genres {
		rec.Genres = append(rec.Genres, g.Name)
	}

	switch mt {
	case media.Movie:
		rec.Director = recommend.UnknownDirector
		if director, ok := d.Credits.Director(); ok {
			rec.Director = director
		}
	case media.TV:
		if seasons, err := d.NumberOfSeasons.Get(); err == nil {
			rec.Seasons = seasons
		}
	}

	return rec
}

// Popular returns n popular titles, padded with fallback records when the catalog has too few
func (m *MediaManager) Popular(ctx context.Context, mt media.Type, n int) []media.Record {
	return m.engine.Composer.Popular(ctx, mt, n)
}

// Personalized recommends from the whole watch history
func (m *MediaManager) Personalized(ctx context.Context) []media.Record {
	return m.engine.Composer.Personalized(ctx)
}

type Stats struct {
	History     int                          `json:"history"`
	Movies      int                          `json:"movies"`
	TVShows     int                          `json:"tv_shows"`
	Rules       int                          `json:"rules"`
	Genres      int                          `json:"genres"`
	LastWatched string                       `json:"last_watched,omitempty"`
	Top         map[string][]recommend.Count `json:"top"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// Stats summarizes what the recommender has learned
func (m *MediaManager) Stats(ctx context.Context) Stats {
	store := m.engine.Store
	s := Stats{
		History:   len(store.WatchHistory()),
		Movies:    store.Count(media.Movie),
		TVShows:   store.Count(media.TV),
		Rules:     len(store.Rules()),
		Genres:    store.Vocabulary().Len(),
		Top:       make(map[string][]recommend.Count, len(recommend.Categories)),
		UpdatedAt: store.UpdatedAt(),
	}
	s.LastWatched, _ = store.LastWatched()

	for _, c := range recommend.Categories {
		s.Top[c.String()] = m.engine.Preferences.Top(c, statsTop)
	}

	return s
}

// History returns the watch history, most recent first
func (m *MediaManager) History() []string {
	history := m.engine.Store.WatchHistory()
	slices.Reverse(history)
	return history
}
