package recommend

import (
	"context"

	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/media"
	"github.com/kasuboski/mediarec/pkg/metrics"
)

// Engine wires the recommendation components around one store
type Engine struct {
	Store       *Store
	Similarity  *Similarity
	Sequences   *SequenceMiner
	Preferences *Preferences
	Composer    *Composer
}

func New(store *Store, catalog Catalog, cfg Config) *Engine {
	cfg = cfg.withDefaults()
	similarity := NewSimilarity(store, cfg)
	sequences := NewSequenceMiner(store, cfg)
	preferences := NewPreferences(store, cfg)

	return &Engine{
		Store:       store,
		Similarity:  similarity,
		Sequences:   sequences,
		Preferences: preferences,
		Composer:    NewComposer(store, catalog, similarity, sequences, preferences, cfg),
	}
}

// Learn stores a newly looked up record. Known titles are left as they are
// and the stored record is returned.
func (e *Engine) Learn(rec media.Record, f media.Features) (media.Record, bool) {
	if e.Store.Add(rec, f) {
		return rec, true
	}
	stored, _ := e.Store.Find(rec.Title)
	return stored, false
}

// Watch runs a lookup event for a stored title: preferences are counted, the
// watch is logged and the association rules are mined again. The composed
// recommendations are cached on the record and returned.
func (e *Engine) Watch(ctx context.Context, subject Subject, repeat bool) ([]media.Record, error) {
	rec, ok := e.Store.Find(subject.Record.Title)
	if !ok {
		return nil, ErrUnknownTitle
	}
	subject.Record = rec

	e.Preferences.Record(rec)
	if err := e.Store.AppendWatch(rec.Title); err != nil {
		return nil, err
	}
	metrics.WatchEvents.WithLabelValues(rec.Type.String(), boolLabel(repeat)).Inc()

	rules := e.Sequences.Update()
	metrics.RulesMined.Set(float64(len(rules)))
	logger.FromCtx(ctx).Debugw("mined association rules", "rules", len(rules), "history", len(e.Store.snap.WatchHistory))

	recs := e.Composer.Compose(ctx, subject)
	if err := e.Store.SetRecommendations(rec.Title, recs); err != nil {
		return nil, err
	}

	return recs, nil
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
