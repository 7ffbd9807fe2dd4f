package media

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap_Set(t *testing.T) {
	var m OrderedMap[int]
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"b", "a"}, m.Keys())

	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestOrderedMap_JSONKeepsOrder(t *testing.T) {
	var m OrderedMap[int]
	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mid", 3)

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":2,"mid":3}`, string(b))

	var got OrderedMap[int]
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, m.Keys(), got.Keys())
	assert.Equal(t, m.Map(), got.Map())
}

func TestOrderedMap_UnmarshalJSON(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		var m OrderedMap[string]
		require.NoError(t, json.Unmarshal([]byte(`null`), &m))
		assert.Equal(t, 0, m.Len())
	})

	t.Run("not an object", func(t *testing.T) {
		var m OrderedMap[string]
		assert.Error(t, json.Unmarshal([]byte(`["a"]`), &m))
	})

	t.Run("wrong value kind", func(t *testing.T) {
		var m OrderedMap[int]
		assert.Error(t, json.Unmarshal([]byte(`{"a":"b"}`), &m))
	})

	t.Run("nested values", func(t *testing.T) {
		var m OrderedMap[Features]
		require.NoError(t, json.Unmarshal([]byte(`{"Heat":{"popularity":1.5,"vote_average":7,"vote_count":10,"year":1995,"genres":[28,80]}}`), &m))

		f, ok := m.Get("Heat")
		require.True(t, ok)
		assert.Equal(t, 1995, f.Year)
		assert.Equal(t, []int{28, 80}, f.Genres)
		assert.Nil(t, f.Seasons)
	})
}

func TestOrderedMap_All(t *testing.T) {
	var m OrderedMap[int]
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("z", 3)

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
		if k == "y" {
			break
		}
	}
	assert.Equal(t, []string{"x", "y"}, keys)
}

func TestTitleSet(t *testing.T) {
	s := NewTitleSet("  The Matrix ")
	assert.True(t, s.Has("the matrix"))
	assert.True(t, s.Has("THE MATRIX"))
	assert.False(t, s.Has("Matrix"))

	s.Add("Amélie")
	assert.True(t, s.Has("AMÉLIE"))
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{in: "movie", want: Movie},
		{in: "TV", want: TV},
		{in: " m ", want: Movie},
		{in: "t", want: TV},
		{in: "book", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestType_JSON(t *testing.T) {
	b, err := json.Marshal(Record{Title: "Dark", Type: TV})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"tv"`)

	var r Record
	require.NoError(t, json.Unmarshal(b, &r))
	assert.Equal(t, TV, r.Type)
}
