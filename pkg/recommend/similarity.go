package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/kasuboski/mediarec/pkg/media"
)

// Similarity answers nearest neighbor queries over the stored feature vectors.
// Models are rebuilt from scratch on every call.
type Similarity struct {
	store *Store
	k     int
}

func NewSimilarity(store *Store, cfg Config) *Similarity {
	return &Similarity{store: store, k: cfg.withDefaults().Neighbors}
}

// Model is a normalized feature matrix of one media type
type Model struct {
	mt     media.Type
	k      int
	titles []string
	matrix [][]float64
}

// Build normalizes every stored vector of a media type.
// It needs at least k+1 stored items.
func (s *Similarity) Build(mt media.Type) (*Model, error) {
	features := s.store.Features(mt)
	if features.Len() < s.k+1 {
		return nil, fmt.Errorf("%w: %d %s items, need %d", ErrModelUnavailable, features.Len(), mt, s.k+1)
	}

	vocab := s.store.Vocabulary()
	cols := vocab.Columns(mt)
	size := len(cols)

	m := &Model{
		mt:     mt,
		k:      s.k,
		titles: make([]string, 0, features.Len()),
		matrix: make([][]float64, 0, features.Len()),
	}
	for title, f := range features.All() {
		m.titles = append(m.titles, title)
		m.matrix = append(m.matrix, vectorize(mt, f, cols, size))
	}
	normalize(m.matrix)

	return m, nil
}

// Len is the number of items in the model
func (m *Model) Len() int {
	return len(m.titles)
}

type neighbor struct {
	idx  int
	dist float64
}

// Query returns up to n titles closest to title, never title itself.
// n is capped at the model's k and equal distances keep store order.
func (m *Model) Query(title string, n int) []string {
	n = min(n, m.k)
	if n <= 0 {
		return nil
	}

	self := -1
	for i, t := range m.titles {
		if media.SameTitle(t, title) {
			self = i
			break
		}
	}
	if self < 0 {
		return nil
	}

	neighbors := make([]neighbor, 0, len(m.titles)-1)
	for i, row := range m.matrix {
		if i == self {
			continue
		}
		neighbors = append(neighbors, neighbor{idx: i, dist: euclidean(m.matrix[self], row)})
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].dist < neighbors[j].dist
	})

	out := make([]string, 0, n)
	for _, nb := range neighbors[:min(n, len(neighbors))] {
		out = append(out, m.titles[nb.idx])
	}
	return out
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Similar returns the stored records nearest to title
func (s *Similarity) Similar(title string, mt media.Type, n int) ([]media.Record, error) {
	if _, ok := s.store.FindType(mt, title); !ok {
		return nil, nil
	}

	m, err := s.Build(mt)
	if err != nil {
		return nil, err
	}

	titles := m.Query(title, n)
	out := make([]media.Record, 0, len(titles))
	for _, t := range titles {
		rec, ok := s.store.FindType(mt, t)
		if !ok {
			continue
		}
		out = append(out, stored(rec))
	}
	return out, nil
}

// stored strips the cached recommendation list from a stored record
func stored(rec media.Record) media.Record {
	rec.Recommendations = nil
	return rec
}
