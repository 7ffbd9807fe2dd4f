package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kasuboski/mediarec/pkg/media"
)

// UnknownDirector is recorded when the catalog credits no director
const UnknownDirector = "Unknown"

// Category is one of the preference counter buckets
type Category int

const (
	MovieGenres Category = iota
	TVGenres
	Actors
	Directors
)

// Categories lists every preference bucket
var Categories = []Category{MovieGenres, TVGenres, Actors, Directors}

var categoryNames = map[Category]string{
	MovieGenres: "movie_genres",
	TVGenres:    "tv_genres",
	Actors:      "actors",
	Directors:   "directors",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory accepts the persisted bucket names
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown preference category %q", s)
}

// Count is a preference counter entry
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Preferences accumulates affinity counters from watched records
type Preferences struct {
	store     *Store
	maxActors int
}

func NewPreferences(store *Store, cfg Config) *Preferences {
	return &Preferences{store: store, maxActors: cfg.withDefaults().MaxActors}
}

func (p *Preferences) bucket(c Category) *media.OrderedMap[int] {
	prefs := p.store.preferences()
	switch c {
	case TVGenres:
		return &prefs.TVGenres
	case Actors:
		return &prefs.Actors
	case Directors:
		return &prefs.Directors
	default:
		return &prefs.MovieGenres
	}
}

func (p *Preferences) increment(c Category, name string) {
	b := p.bucket(c)
	n, _ := b.Get(name)
	b.Set(name, n+1)
}

// Record counts the genres, leading actors and director of a watched record
func (p *Preferences) Record(rec media.Record) {
	genres := kindOf(rec.Type).preferences
	for _, g := range rec.Genres {
		p.increment(genres, g)
	}

	for _, actor := range rec.Actors[:min(len(rec.Actors), p.maxActors)] {
		p.increment(Actors, actor)
	}

	if rec.Type == media.Movie && rec.Director != "" && rec.Director != UnknownDirector {
		p.increment(Directors, rec.Director)
	}
}

// Top returns the highest counters of a bucket. Equal counts keep insertion order.
func (p *Preferences) Top(c Category, limit int) []Count {
	b := p.bucket(c)
	out := make([]Count, 0, b.Len())
	for name, n := range b.All() {
		if n <= 0 {
			continue
		}
		out = append(out, Count{Name: name, Count: n})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopNames is Top without the counts
func (p *Preferences) TopNames(c Category, limit int) []string {
	top := p.Top(c, limit)
	names := make([]string, len(top))
	for i, t := range top {
		names[i] = t.Name
	}
	return names
}
