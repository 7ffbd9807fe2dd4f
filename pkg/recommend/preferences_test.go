package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/mediarec/pkg/media"
)

func TestPreferences_Record(t *testing.T) {
	store := NewStore(media.NewSnapshot())
	prefs := NewPreferences(store, DefaultConfig())

	heat := movie("Heat", "Crime", "Drama")
	heat.Actors = []string{"Al Pacino", "Robert De Niro", "Val Kilmer", "Jon Voight", "Tom Sizemore", "Ashley Judd"}
	heat.Director = "Michael Mann"
	prefs.Record(heat)

	assert.Equal(t, []Count{{Name: "Crime", Count: 1}, {Name: "Drama", Count: 1}}, prefs.Top(MovieGenres, 10))
	assert.Len(t, prefs.Top(Actors, 10), 5)
	assert.NotContains(t, prefs.TopNames(Actors, 10), "Ashley Judd")
	assert.Equal(t, []string{"Michael Mann"}, prefs.TopNames(Directors, 10))
	assert.Empty(t, prefs.Top(TVGenres, 10))

	dark := show("Dark", "Drama", "Mystery")
	dark.Director = "Baran bo Odar"
	prefs.Record(dark)
	assert.Equal(t, []string{"Drama", "Mystery"}, prefs.TopNames(TVGenres, 10))
	assert.Equal(t, []string{"Michael Mann"}, prefs.TopNames(Directors, 10))

	unknown := movie("Nameless", "Drama")
	unknown.Director = UnknownDirector
	prefs.Record(unknown)
	assert.Equal(t, []string{"Michael Mann"}, prefs.TopNames(Directors, 10))
	assert.Equal(t, []Count{{Name: "Drama", Count: 2}, {Name: "Crime", Count: 1}}, prefs.Top(MovieGenres, 10))
}

func TestPreferences_Top(t *testing.T) {
	store := NewStore(media.NewSnapshot())
	prefs := NewPreferences(store, DefaultConfig())

	prefs.Record(movie("One", "Western", "Comedy"))
	prefs.Record(movie("Two", "Horror", "Comedy"))
	prefs.Record(movie("Three", "Horror", "Animation"))

	assert.Equal(t, []string{"Comedy", "Horror", "Western"}, prefs.TopNames(MovieGenres, 3))
	assert.Equal(t, []string{"Comedy"}, prefs.TopNames(MovieGenres, 1))
	assert.Len(t, prefs.Top(MovieGenres, -1), 4)
	assert.Empty(t, prefs.Top(MovieGenres, 0))
}

func TestPreferences_RepeatDoublesCounts(t *testing.T) {
	store := NewStore(media.NewSnapshot())
	engine := New(store, nil, DefaultConfig())

	rec := movie("Arrival", "Science Fiction")
	rec.Actors = []string{"Amy Adams"}
	rec.Director = "Denis Villeneuve"
	store.Add(rec, features(10, 2016))

	for range 2 {
		engine.Preferences.Record(rec)
		require.NoError(t, store.AppendWatch(rec.Title))
	}

	assert.Equal(t, 1, store.Count(media.Movie))
	assert.Equal(t, []string{"Arrival", "Arrival"}, store.WatchHistory())
	assert.Equal(t, []Count{{Name: "Science Fiction", Count: 2}}, engine.Preferences.Top(MovieGenres, 5))
	assert.Equal(t, []Count{{Name: "Amy Adams", Count: 2}}, engine.Preferences.Top(Actors, 5))
	assert.Equal(t, []Count{{Name: "Denis Villeneuve", Count: 2}}, engine.Preferences.Top(Directors, 5))
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("composers")
	assert.Error(t, err)
}
