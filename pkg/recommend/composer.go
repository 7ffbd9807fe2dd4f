package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/media"
	"github.com/kasuboski/mediarec/pkg/metrics"
)

// Catalog is the part of the metadata service the composer reads from
type Catalog interface {
	Discover(ctx context.Context, mt media.Type, genreIDs []int) ([]media.Summary, error)
	Popular(ctx context.Context, mt media.Type) ([]media.Summary, error)
}

// Subject is the item a recommendation list is anchored to
type Subject struct {
	Record media.Record
	// Related are the catalog's own recommendations for the record
	Related []media.Summary
}

const (
	tierSimilar  = "similar"
	tierRelated  = "related"
	tierGenre    = "genre"
	tierSequence = "sequence"
	tierPopular  = "popular"
	tierFallback = "fallback"

	// movieShare is how many of a personalized list come from movies when
	// mixing movie and tv sources
	movieShare = 3
)

// Composer merges every signal source into one deduplicated list
type Composer struct {
	store       *Store
	catalog     Catalog
	similarity  *Similarity
	sequences   *SequenceMiner
	preferences *Preferences
	cfg         Config
}

func NewComposer(store *Store, catalog Catalog, similarity *Similarity, sequences *SequenceMiner, preferences *Preferences, cfg Config) *Composer {
	return &Composer{
		store:       store,
		catalog:     catalog,
		similarity:  similarity,
		sequences:   sequences,
		preferences: preferences,
		cfg:         cfg.withDefaults(),
	}
}

// results collects records up to a limit, skipping titles already seen
type results struct {
	items []media.Record
	seen  media.TitleSet
	limit int
}

func newResults(limit int, exclude ...string) *results {
	return &results{
		items: make([]media.Record, 0, limit),
		seen:  media.NewTitleSet(exclude...),
		limit: limit,
	}
}

func (r *results) full() bool {
	return len(r.items) >= r.limit
}

// add accepts up to n unseen records and returns how many were taken
func (r *results) add(recs []media.Record, n int) int {
	taken := 0
	for _, rec := range recs {
		if r.full() || taken >= n {
			break
		}
		if rec.Title == "" || r.seen.Has(rec.Title) {
			continue
		}
		r.seen.Add(rec.Title)
		r.items = append(r.items, rec)
		taken++
	}
	return taken
}

func (r *results) room() int {
	return r.limit - len(r.items)
}

type tier struct {
	name string
	run  func(ctx context.Context) ([]media.Record, error)
}

// runTier isolates a tier failure into an empty result
func runTier(ctx context.Context, t tier) []media.Record {
	log := logger.FromCtx(ctx)

	recs, err := t.run(ctx)
	if err != nil {
		metrics.TierFailures.WithLabelValues(t.name).Inc()
		if errors.Is(err, ErrModelUnavailable) {
			log.Debugw("tier skipped", "tier", t.name, "error", err)
		} else {
			log.Warnw("tier failed", "tier", t.name, "error", err)
		}
		return nil
	}

	return recs
}

func (c *Composer) accept(ctx context.Context, res *results, t tier, n int) {
	taken := res.add(runTier(ctx, t), n)
	if taken > 0 {
		metrics.TierItems.WithLabelValues(t.name).Add(float64(taken))
	}
	logger.FromCtx(ctx).Debugw("tier complete", "tier", t.name, "accepted", taken, "total", len(res.items))
}

// Compose builds the recommendation list for a looked up item. Tiers run in
// priority order while the list is short and the subject itself is never included.
func (c *Composer) Compose(ctx context.Context, subject Subject) []media.Record {
	start := time.Now()
	defer func() {
		metrics.ComposeDuration.WithLabelValues("item").Observe(time.Since(start).Seconds())
	}()

	rec := subject.Record
	mt := rec.Type
	res := newResults(c.cfg.ResultSize, rec.Title)

	tiers := []tier{
		{name: tierSimilar, run: func(context.Context) ([]media.Record, error) {
			return c.similarity.Similar(rec.Title, mt, c.cfg.SimilarCount)
		}},
		{name: tierRelated, run: func(context.Context) ([]media.Record, error) {
			return FormatAll(mt, subject.Related, c.store.Vocabulary()), nil
		}},
		{name: tierGenre, run: func(ctx context.Context) ([]media.Record, error) {
			return c.discover(ctx, mt, rec.Genres)
		}},
		{name: tierSequence, run: func(context.Context) ([]media.Record, error) {
			return c.sequences.Recommend(), nil
		}},
		{name: tierPopular, run: func(ctx context.Context) ([]media.Record, error) {
			return c.popular(ctx, mt)
		}},
	}

	for _, t := range tiers {
		if res.full() {
			break
		}
		c.accept(ctx, res, t, res.room())
	}

	if !res.full() {
		c.pad(ctx, res, mt, res.room())
	}

	return res.items
}

// Personalized recommends from the whole history. The first source with any
// result wins: sequence rules, then items similar to the last watched title,
// then preferred genres, then popular items.
func (c *Composer) Personalized(ctx context.Context) []media.Record {
	start := time.Now()
	defer func() {
		metrics.ComposeDuration.WithLabelValues("personalized").Observe(time.Since(start).Seconds())
	}()

	last, ok := c.store.LastWatched()
	if !ok {
		return []media.Record{}
	}

	seq := newResults(c.cfg.ResultSize)
	c.accept(ctx, seq, tier{name: tierSequence, run: func(context.Context) ([]media.Record, error) {
		return c.sequences.Recommend(), nil
	}}, seq.room())
	if len(seq.items) > 0 {
		return seq.items
	}

	if mt, ok := c.store.TypeOf(last); ok {
		sim := newResults(c.cfg.ResultSize)
		c.accept(ctx, sim, tier{name: tierSimilar, run: func(context.Context) ([]media.Record, error) {
			return c.similarity.Similar(last, mt, c.cfg.SimilarCount)
		}}, sim.room())
		if len(sim.items) > 0 {
			return sim.items
		}
	}

	byGenre := newResults(c.cfg.ResultSize)
	movieGenres := c.preferences.TopNames(MovieGenres, c.cfg.TopGenres)
	if len(movieGenres) > 0 {
		c.accept(ctx, byGenre, tier{name: tierGenre, run: func(ctx context.Context) ([]media.Record, error) {
			return c.discover(ctx, media.Movie, movieGenres)
		}}, movieShare)
	}
	tvGenres := c.preferences.TopNames(TVGenres, c.cfg.TopGenres)
	if len(tvGenres) > 0 && !byGenre.full() {
		c.accept(ctx, byGenre, tier{name: tierGenre, run: func(ctx context.Context) ([]media.Record, error) {
			return c.discover(ctx, media.TV, tvGenres)
		}}, byGenre.room())
	}
	if len(byGenre.items) > 0 {
		return byGenre.items
	}

	popular := newResults(c.cfg.ResultSize)
	movies := min(c.cfg.ResultSize, movieShare)
	split := []struct {
		mt    media.Type
		count int
	}{
		{mt: media.Movie, count: movies},
		{mt: media.TV, count: c.cfg.ResultSize - movies},
	}
	for _, s := range split {
		if s.count <= 0 {
			continue
		}
		taken := 0
		mt := s.mt
		if !popular.full() {
			before := len(popular.items)
			c.accept(ctx, popular, tier{name: tierPopular, run: func(ctx context.Context) ([]media.Record, error) {
				return c.popular(ctx, mt)
			}}, s.count)
			taken = len(popular.items) - before
		}
		if taken < s.count {
			c.pad(ctx, popular, mt, s.count-taken)
		}
	}

	return popular.items
}

// Popular is the popular listing of a media type padded with fallback records
func (c *Composer) Popular(ctx context.Context, mt media.Type, n int) []media.Record {
	res := newResults(n)
	c.accept(ctx, res, tier{name: tierPopular, run: func(ctx context.Context) ([]media.Record, error) {
		return c.popular(ctx, mt)
	}}, n)
	if !res.full() {
		c.pad(ctx, res, mt, res.room())
	}
	return res.items
}

func (c *Composer) pad(ctx context.Context, res *results, mt media.Type, n int) {
	taken := res.add(Fallback(mt), n)
	if taken > 0 {
		metrics.TierItems.WithLabelValues(tierFallback).Add(float64(taken))
		logger.FromCtx(ctx).Debugw("padded with fallback records", "type", mt, "count", taken)
	}
}

func (c *Composer) discover(ctx context.Context, mt media.Type, genres []string) ([]media.Record, error) {
	vocab := c.store.Vocabulary()
	ids := vocab.Lookup(mt, genres)
	if len(ids) == 0 {
		return nil, nil
	}

	summaries, err := c.catalog.Discover(ctx, mt, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: discover %s: %w", ErrCollaboratorUnavailable, mt, err)
	}
	return FormatAll(mt, summaries, vocab), nil
}

func (c *Composer) popular(ctx context.Context, mt media.Type) ([]media.Record, error) {
	summaries, err := c.catalog.Popular(ctx, mt)
	if err != nil {
		return nil, fmt.Errorf("%w: popular %s: %w", ErrCollaboratorUnavailable, mt, err)
	}
	return FormatAll(mt, summaries, c.store.Vocabulary()), nil
}
