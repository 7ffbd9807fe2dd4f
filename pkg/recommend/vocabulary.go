package recommend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kasuboski/mediarec/pkg/media"
)

// Vocabulary is the append-only genre id to name mapping shared by both media types.
// Entries are keyed "<type>_<id>" and the per-type enumeration order assigns
// the one-hot vector columns.
type Vocabulary struct {
	cache *media.OrderedMap[string]
}

// NewVocabulary wraps the given genre cache. A nil cache gets a fresh one.
func NewVocabulary(cache *media.OrderedMap[string]) Vocabulary {
	if cache == nil {
		cache = &media.OrderedMap[string]{}
	}
	return Vocabulary{cache: cache}
}

func vocabKey(mt media.Type, id int) string {
	return fmt.Sprintf("%s_%d", mt, id)
}

func parseVocabKey(key string) (media.Type, int, bool) {
	prefix, rawID, ok := strings.Cut(key, "_")
	if !ok {
		return 0, 0, false
	}
	mt, err := media.ParseType(prefix)
	if err != nil {
		return 0, 0, false
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return 0, 0, false
	}
	return mt, id, true
}

// Register adds a genre. Registering an existing id is a no-op, names are never changed.
func (v Vocabulary) Register(mt media.Type, id int, name string) bool {
	key := vocabKey(mt, id)
	if v.cache.Has(key) {
		return false
	}
	v.cache.Set(key, name)
	return true
}

func (v Vocabulary) Name(mt media.Type, id int) (string, bool) {
	return v.cache.Get(vocabKey(mt, id))
}

// Names maps ids to genre names, skipping unknown ids
func (v Vocabulary) Names(mt media.Type, ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := v.Name(mt, id); ok {
			names = append(names, name)
		}
	}
	return names
}

// IDs lists the registered ids of a media type in enumeration order
func (v Vocabulary) IDs(mt media.Type) []int {
	var ids []int
	for key := range v.cache.All() {
		kt, id, ok := parseVocabKey(key)
		if !ok || kt != mt {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Columns returns the one-hot column index of each genre id for a media type
func (v Vocabulary) Columns(mt media.Type) map[int]int {
	ids := v.IDs(mt)
	cols := make(map[int]int, len(ids))
	for i, id := range ids {
		cols[id] = i
	}
	return cols
}

// Lookup maps genre names to ids for a media type, in enumeration order
func (v Vocabulary) Lookup(mt media.Type, names []string) []int {
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	var ids []int
	for _, id := range v.IDs(mt) {
		name, _ := v.Name(mt, id)
		if _, ok := wanted[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Find returns the id of a genre by name, ignoring case
func (v Vocabulary) Find(mt media.Type, name string) (int, bool) {
	for _, id := range v.IDs(mt) {
		n, _ := v.Name(mt, id)
		if media.SameTitle(n, name) {
			return id, true
		}
	}
	return 0, false
}

// Size is the number of genres registered for a media type
func (v Vocabulary) Size(mt media.Type) int {
	return len(v.IDs(mt))
}

// Len is the total number of registered genres
func (v Vocabulary) Len() int {
	return v.cache.Len()
}
