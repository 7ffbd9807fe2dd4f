package recommend

import (
	"slices"
	"sort"
	"strings"

	"github.com/kasuboski/mediarec/pkg/media"
)

// SequenceMiner learns association rules between titles watched close together
type SequenceMiner struct {
	store *Store
	cfg   Config
}

func NewSequenceMiner(store *Store, cfg Config) *SequenceMiner {
	return &SequenceMiner{store: store, cfg: cfg.withDefaults()}
}

// Transactions slides a window over the history. Repeats inside a window collapse
// and each transaction is sorted.
func (m *SequenceMiner) Transactions(history []string) [][]string {
	w := m.cfg.Window
	if len(history) < w {
		return nil
	}

	out := make([][]string, 0, len(history)-w+1)
	for i := 0; i+w <= len(history); i++ {
		tx := slices.Clone(history[i : i+w])
		slices.Sort(tx)
		out = append(out, slices.Compact(tx))
	}
	return out
}

type itemset struct {
	items []string
	count int
}

func setKey(items []string) string {
	return strings.Join(items, "\x00")
}

// minedRule keeps the integer counts so rankings compare exactly
type minedRule struct {
	antecedents []string
	consequents []string
	countA      int
	countC      int
	countI      int
}

// Mine runs apriori over the history and returns the ranked rules.
// It returns an empty set when there is too little history.
func (m *SequenceMiner) Mine(history []string) []media.Rule {
	if len(history) < m.cfg.MinWatchEvents {
		return []media.Rule{}
	}
	txs := m.Transactions(history)
	if len(txs) < m.cfg.MinTransactions {
		return []media.Rule{}
	}

	n := len(txs)
	frequent := m.frequentItemsets(txs)
	counts := make(map[string]int, len(frequent))
	for _, set := range frequent {
		counts[setKey(set.items)] = set.count
	}

	var mined []minedRule
	for _, set := range frequent {
		if len(set.items) < 2 {
			continue
		}
		for _, ante := range properSubsets(set.items) {
			countA := counts[setKey(ante)]
			if float64(set.count)/float64(countA) < m.cfg.MinConfidence {
				continue
			}
			cons := difference(set.items, ante)
			mined = append(mined, minedRule{
				antecedents: ante,
				consequents: cons,
				countA:      countA,
				countC:      counts[setKey(cons)],
				countI:      set.count,
			})
		}
	}

	sort.SliceStable(mined, func(i, j int) bool {
		return ruleLess(mined[i], mined[j])
	})

	rules := make([]media.Rule, 0, min(len(mined), m.cfg.MaxRules))
	for _, r := range mined[:min(len(mined), m.cfg.MaxRules)] {
		rules = append(rules, media.Rule{
			Antecedents: r.antecedents,
			Consequents: r.consequents,
			Support:     float64(r.countI) / float64(n),
			Confidence:  float64(r.countI) / float64(r.countA),
			Lift:        float64(r.countI*n) / float64(r.countA*r.countC),
		})
	}
	return rules
}

// ruleLess orders by lift, confidence and support descending, then smaller
// antecedents, then antecedent and consequent text
func ruleLess(a, b minedRule) bool {
	// lift = I*N/(A*C), N is shared
	if l, r := a.countI*b.countA*b.countC, b.countI*a.countA*a.countC; l != r {
		return l > r
	}
	// confidence = I/A
	if l, r := a.countI*b.countA, b.countI*a.countA; l != r {
		return l > r
	}
	if a.countI != b.countI {
		return a.countI > b.countI
	}
	if len(a.antecedents) != len(b.antecedents) {
		return len(a.antecedents) < len(b.antecedents)
	}
	if c := slices.Compare(a.antecedents, b.antecedents); c != 0 {
		return c < 0
	}
	return slices.Compare(a.consequents, b.consequents) < 0
}

func (m *SequenceMiner) frequentItemsets(txs [][]string) []itemset {
	n := float64(len(txs))
	frequentEnough := func(count int) bool {
		return float64(count)/n >= m.cfg.MinSupport
	}

	singles := make(map[string]int)
	for _, tx := range txs {
		for _, item := range tx {
			singles[item]++
		}
	}

	var level []itemset
	for item, count := range singles {
		if frequentEnough(count) {
			level = append(level, itemset{items: []string{item}, count: count})
		}
	}
	sortItemsets(level)

	var all []itemset
	for len(level) > 0 {
		all = append(all, level...)

		known := make(map[string]struct{}, len(level))
		for _, set := range level {
			known[setKey(set.items)] = struct{}{}
		}

		var next []itemset
		for _, cand := range joinLevel(level, known) {
			count := 0
			for _, tx := range txs {
				if containsAll(tx, cand) {
					count++
				}
			}
			if frequentEnough(count) {
				next = append(next, itemset{items: cand, count: count})
			}
		}
		sortItemsets(next)
		level = next
	}

	return all
}

func sortItemsets(sets []itemset) {
	sort.Slice(sets, func(i, j int) bool {
		return slices.Compare(sets[i].items, sets[j].items) < 0
	})
}

// joinLevel builds k+1 candidates from sorted k-itemsets sharing a k-1 prefix,
// dropping any candidate with an infrequent subset
func joinLevel(level []itemset, known map[string]struct{}) [][]string {
	var out [][]string
	for i := range level {
		for j := i + 1; j < len(level); j++ {
			a, b := level[i].items, level[j].items
			k := len(a)
			if !slices.Equal(a[:k-1], b[:k-1]) {
				break
			}

			cand := append(slices.Clone(a), b[k-1])
			if allSubsetsKnown(cand, known) {
				out = append(out, cand)
			}
		}
	}
	return out
}

func allSubsetsKnown(cand []string, known map[string]struct{}) bool {
	for skip := range cand {
		sub := make([]string, 0, len(cand)-1)
		sub = append(sub, cand[:skip]...)
		sub = append(sub, cand[skip+1:]...)
		if _, ok := known[setKey(sub)]; !ok {
			return false
		}
	}
	return true
}

// containsAll reports whether the sorted transaction holds every item
func containsAll(tx, items []string) bool {
	for _, item := range items {
		if _, ok := slices.BinarySearch(tx, item); !ok {
			return false
		}
	}
	return true
}

// properSubsets lists the non-empty proper subsets of a sorted set, each sorted
func properSubsets(items []string) [][]string {
	var out [][]string
	full := 1<<len(items) - 1
	for mask := 1; mask < full; mask++ {
		var sub []string
		for i, item := range items {
			if mask&(1<<i) != 0 {
				sub = append(sub, item)
			}
		}
		out = append(out, sub)
	}
	return out
}

func difference(items, remove []string) []string {
	out := make([]string, 0, len(items)-len(remove))
	for _, item := range items {
		if !slices.Contains(remove, item) {
			out = append(out, item)
		}
	}
	return out
}

// Update mines the stored history and replaces the stored rules
func (m *SequenceMiner) Update() []media.Rule {
	rules := m.Mine(m.store.WatchHistory())
	m.store.ReplaceRules(rules)
	return rules
}

// Query returns up to ResultSize titles that followed trigger according to the
// stored rules, in rule order
func (m *SequenceMiner) Query(trigger string) []string {
	emitted := media.NewTitleSet(trigger)
	var out []string

	for _, rule := range m.store.Rules() {
		if !slices.ContainsFunc(rule.Antecedents, func(t string) bool { return media.SameTitle(t, trigger) }) {
			continue
		}
		for _, title := range rule.Consequents {
			if emitted.Has(title) {
				continue
			}
			emitted.Add(title)
			out = append(out, title)
			if len(out) >= m.cfg.ResultSize {
				return out
			}
		}
	}
	return out
}

// Recommend maps Query results for the last watched title to stored records
func (m *SequenceMiner) Recommend() []media.Record {
	last, ok := m.store.LastWatched()
	if !ok {
		return nil
	}

	var out []media.Record
	for _, title := range m.Query(last) {
		if rec, ok := m.store.Find(title); ok {
			out = append(out, stored(rec))
		}
	}
	return out
}
