package recommend

import (
	"fmt"
	"slices"
	"time"

	"github.com/kasuboski/mediarec/pkg/media"
)

type entry struct {
	mt    media.Type
	title string
}

// Store owns everything the recommender has learned. It is built from a loaded
// snapshot and every component mutates state only through it.
// A Store is not safe for concurrent use.
type Store struct {
	snap  media.Snapshot
	index map[string]entry
}

// NewStore takes ownership of a snapshot
func NewStore(snap media.Snapshot) *Store {
	snap.Normalize()
	s := &Store{
		snap:  snap,
		index: make(map[string]entry),
	}

	for _, mt := range media.Types {
		for title := range s.records(mt).All() {
			key := media.FoldTitle(title)
			if _, ok := s.index[key]; ok {
				continue
			}
			s.index[key] = entry{mt: mt, title: title}
		}
	}

	return s
}

// Snapshot returns the persistable state backing the store
func (s *Store) Snapshot() *media.Snapshot {
	return &s.snap
}

// UpdatedAt is when the store was last persisted
func (s *Store) UpdatedAt() time.Time {
	return s.snap.UpdatedAt
}

func (s *Store) Vocabulary() Vocabulary {
	return NewVocabulary(&s.snap.GenreCache)
}

func (s *Store) records(mt media.Type) *media.OrderedMap[media.Record] {
	if mt == media.TV {
		return &s.snap.TVShows
	}
	return &s.snap.Movies
}

func (s *Store) features(mt media.Type) *media.OrderedMap[media.Features] {
	if mt == media.TV {
		return &s.snap.TVFeatures
	}
	return &s.snap.MovieFeatures
}

// Find looks a title up in either media type, ignoring case
func (s *Store) Find(title string) (media.Record, bool) {
	e, ok := s.index[media.FoldTitle(title)]
	if !ok {
		return media.Record{}, false
	}
	return s.records(e.mt).Get(e.title)
}

// FindType looks a title up within one media type, ignoring case
func (s *Store) FindType(mt media.Type, title string) (media.Record, bool) {
	e, ok := s.index[media.FoldTitle(title)]
	if !ok || e.mt != mt {
		return media.Record{}, false
	}
	return s.records(mt).Get(e.title)
}

// TypeOf returns the media type a stored title belongs to
func (s *Store) TypeOf(title string) (media.Type, bool) {
	e, ok := s.index[media.FoldTitle(title)]
	return e.mt, ok
}

// Canonical returns the stored casing of a title
func (s *Store) Canonical(title string) (string, bool) {
	e, ok := s.index[media.FoldTitle(title)]
	return e.title, ok
}

// Add stores a record and its features the first time a title is seen.
// It returns false and leaves the store untouched for known titles.
func (s *Store) Add(rec media.Record, f media.Features) bool {
	key := media.FoldTitle(rec.Title)
	if _, ok := s.index[key]; ok {
		return false
	}

	s.index[key] = entry{mt: rec.Type, title: rec.Title}
	s.records(rec.Type).Set(rec.Title, rec)
	s.features(rec.Type).Set(rec.Title, f)
	return true
}

// SetRecommendations refreshes the cached recommendation list of a stored record
func (s *Store) SetRecommendations(title string, recs []media.Record) error {
	e, ok := s.index[media.FoldTitle(title)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTitle, title)
	}

	records := s.records(e.mt)
	rec, _ := records.Get(e.title)
	rec.Recommendations = recs
	records.Set(e.title, rec)
	return nil
}

// Features returns the stored vectors of a media type in insertion order
func (s *Store) Features(mt media.Type) media.OrderedMap[media.Features] {
	return *s.features(mt)
}

// Count is the number of stored records of a media type
func (s *Store) Count(mt media.Type) int {
	return s.records(mt).Len()
}

// AppendWatch logs a watch of a stored title under its canonical casing
func (s *Store) AppendWatch(title string) error {
	e, ok := s.index[media.FoldTitle(title)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTitle, title)
	}
	s.snap.WatchHistory = append(s.snap.WatchHistory, e.title)
	return nil
}

func (s *Store) WatchHistory() []string {
	return slices.Clone(s.snap.WatchHistory)
}

// LastWatched returns the most recent watch event
func (s *Store) LastWatched() (string, bool) {
	h := s.snap.WatchHistory
	if len(h) == 0 {
		return "", false
	}
	return h[len(h)-1], true
}

func (s *Store) Rules() []media.Rule {
	return slices.Clone(s.snap.AssociationRules)
}

// ReplaceRules swaps the whole rule set
func (s *Store) ReplaceRules(rules []media.Rule) {
	if rules == nil {
		rules = []media.Rule{}
	}
	s.snap.AssociationRules = rules
}

func (s *Store) preferences() *media.Preferences {
	return &s.snap.Preferences
}
