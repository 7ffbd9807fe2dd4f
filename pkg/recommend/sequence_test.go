package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/mediarec/pkg/media"
)

func storeWithHistory(t *testing.T, history ...string) *Store {
	t.Helper()

	store := NewStore(media.NewSnapshot())
	for _, title := range history {
		store.Add(movie(title), features(1, 2000))
		require.NoError(t, store.AppendWatch(title))
	}
	return store
}

func TestSequenceMiner_Transactions(t *testing.T) {
	m := NewSequenceMiner(NewStore(media.NewSnapshot()), DefaultConfig())

	assert.Empty(t, m.Transactions([]string{"A", "B"}))
	assert.Equal(t, [][]string{
		{"A", "B", "C"},
		{"A", "B"},
		{"A", "B"},
	}, m.Transactions([]string{"C", "A", "B", "A", "B"}))
}

func TestSequenceMiner_Mine(t *testing.T) {
	t.Run("short history yields no rules", func(t *testing.T) {
		m := NewSequenceMiner(NewStore(media.NewSnapshot()), DefaultConfig())
		for _, history := range [][]string{
			nil,
			{"A"},
			{"A", "B", "C", "A"},
		} {
			rules := m.Mine(history)
			assert.NotNil(t, rules)
			assert.Empty(t, rules)
		}
	})

	t.Run("repeating pattern", func(t *testing.T) {
		m := NewSequenceMiner(NewStore(media.NewSnapshot()), DefaultConfig())
		rules := m.Mine([]string{"A", "B", "C", "A", "B", "C", "D"})

		require.NotEmpty(t, rules)
		assert.LessOrEqual(t, len(rules), 10)

		found := false
		for _, r := range rules {
			if assert.ObjectsAreEqual([]string{"A"}, r.Antecedents) && contains(r.Consequents, "B") {
				found = true
				assert.InDelta(t, 1.0, r.Confidence, 1e-9)
				assert.InDelta(t, 0.8, r.Support, 1e-9)
			}
		}
		assert.True(t, found, "expected a rule A -> B in %v", rules)
	})

	t.Run("ranked by lift", func(t *testing.T) {
		m := NewSequenceMiner(NewStore(media.NewSnapshot()), DefaultConfig())
		rules := m.Mine([]string{"A", "B", "X", "Y", "Z", "A", "B", "W", "V", "U"})
		require.NotEmpty(t, rules)

		for i := 1; i < len(rules); i++ {
			assert.GreaterOrEqual(t, rules[i-1].Lift, rules[i].Lift)
		}
		// rare titles watched together are well above independence
		assert.Greater(t, rules[0].Lift, 1.0)
	})

	t.Run("deterministic", func(t *testing.T) {
		m := NewSequenceMiner(NewStore(media.NewSnapshot()), DefaultConfig())
		history := []string{"A", "B", "C", "D", "A", "C", "B", "D", "A"}
		assert.Equal(t, m.Mine(history), m.Mine(history))
	})
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

func TestSequenceMiner_Update(t *testing.T) {
	store := storeWithHistory(t, "A", "B", "C", "A", "B", "C", "D")
	store.ReplaceRules([]media.Rule{{Antecedents: []string{"stale"}, Consequents: []string{"rule"}}})

	m := NewSequenceMiner(store, DefaultConfig())
	rules := m.Update()

	require.NotEmpty(t, rules)
	assert.Equal(t, rules, store.Rules())
	for _, r := range store.Rules() {
		assert.NotContains(t, r.Antecedents, "stale")
	}
}

func TestSequenceMiner_Query(t *testing.T) {
	store := NewStore(media.NewSnapshot())
	store.ReplaceRules([]media.Rule{
		{Antecedents: []string{"A"}, Consequents: []string{"B", "C"}},
		{Antecedents: []string{"X"}, Consequents: []string{"Y"}},
		{Antecedents: []string{"A", "D"}, Consequents: []string{"C", "A", "E"}},
		{Antecedents: []string{"A"}, Consequents: []string{"F", "G", "H", "I"}},
	})
	m := NewSequenceMiner(store, DefaultConfig())

	assert.Equal(t, []string{"B", "C", "E", "F", "G"}, m.Query("a"))
	assert.Equal(t, []string{"Y"}, m.Query("X"))
	assert.Empty(t, m.Query("Z"))
}

func TestSequenceMiner_Recommend(t *testing.T) {
	store := storeWithHistory(t, "A", "B", "C", "A", "B", "C", "A")
	m := NewSequenceMiner(store, DefaultConfig())
	m.Update()

	recs := m.Recommend()
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 5)
	for _, rec := range recs {
		assert.NotEqual(t, "A", rec.Title)
	}

	empty := NewSequenceMiner(NewStore(media.NewSnapshot()), DefaultConfig())
	assert.Empty(t, empty.Recommend())
}
