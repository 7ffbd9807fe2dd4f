package recommend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/mediarec/pkg/media"
)

func movie(title string, genres ...string) media.Record {
	return media.Record{Title: title, Year: "2000", Rating: 7, Genres: genres, Type: media.Movie}
}

func show(title string, genres ...string) media.Record {
	return media.Record{Title: title, Year: "2010", Rating: 8, Genres: genres, Type: media.TV, Seasons: 2}
}

func features(popularity float64, year int, genres ...int) media.Features {
	return media.Features{Popularity: popularity, VoteAverage: 7, VoteCount: 100, Year: year, Genres: genres}
}

func TestVocabulary(t *testing.T) {
	vocab := NewVocabulary(nil)

	assert.True(t, vocab.Register(media.Movie, 28, "Action"))
	assert.True(t, vocab.Register(media.TV, 10759, "Action & Adventure"))
	assert.True(t, vocab.Register(media.Movie, 18, "Drama"))
	assert.False(t, vocab.Register(media.Movie, 28, "Renamed"))

	name, ok := vocab.Name(media.Movie, 28)
	require.True(t, ok)
	assert.Equal(t, "Action", name)

	assert.Equal(t, []int{28, 18}, vocab.IDs(media.Movie))
	assert.Equal(t, []int{10759}, vocab.IDs(media.TV))
	assert.Equal(t, map[int]int{28: 0, 18: 1}, vocab.Columns(media.Movie))
	assert.Equal(t, []string{"Drama", "Action"}, vocab.Names(media.Movie, []int{18, 99, 28}))
	assert.Equal(t, []int{28, 18}, vocab.Lookup(media.Movie, []string{"Drama", "Action", "Horror"}))
	assert.Equal(t, 3, vocab.Len())
	assert.Equal(t, 2, vocab.Size(media.Movie))

	id, ok := vocab.Find(media.Movie, "drama")
	require.True(t, ok)
	assert.Equal(t, 18, id)

	_, ok = vocab.Find(media.TV, "drama")
	assert.False(t, ok)
}

func TestVocabulary_PersistedKeys(t *testing.T) {
	store := NewStore(media.NewSnapshot())
	store.Vocabulary().Register(media.TV, 18, "Drama")
	store.Vocabulary().Register(media.Movie, 28, "Action")

	b, err := json.Marshal(store.Snapshot().GenreCache)
	require.NoError(t, err)
	assert.Equal(t, `{"tv_18":"Drama","movie_28":"Action"}`, string(b))
}

func TestStore_Add(t *testing.T) {
	store := NewStore(media.NewSnapshot())

	assert.True(t, store.Add(movie("The Matrix", "Action"), features(10, 1999)))
	assert.False(t, store.Add(movie("THE MATRIX", "Drama"), features(1, 2020)))

	rec, ok := store.Find("the matrix")
	require.True(t, ok)
	assert.Equal(t, "The Matrix", rec.Title)
	assert.Equal(t, []string{"Action"}, rec.Genres)
	assert.Equal(t, 1, store.Count(media.Movie))

	f, ok := store.Features(media.Movie).Get("The Matrix")
	require.True(t, ok)
	assert.Equal(t, 1999, f.Year)

	_, ok = store.FindType(media.TV, "The Matrix")
	assert.False(t, ok)

	mt, ok := store.TypeOf("the MATRIX")
	require.True(t, ok)
	assert.Equal(t, media.Movie, mt)
}

func TestStore_AppendWatch(t *testing.T) {
	store := NewStore(media.NewSnapshot())
	store.Add(show("Dark", "Drama"), features(5, 2017))

	require.NoError(t, store.AppendWatch("dark"))
	require.NoError(t, store.AppendWatch("DARK"))
	assert.Equal(t, []string{"Dark", "Dark"}, store.WatchHistory())

	last, ok := store.LastWatched()
	require.True(t, ok)
	assert.Equal(t, "Dark", last)

	err := store.AppendWatch("Lost")
	assert.ErrorIs(t, err, ErrUnknownTitle)
	assert.Len(t, store.WatchHistory(), 2)
}

func TestStore_SetRecommendations(t *testing.T) {
	store := NewStore(media.NewSnapshot())
	store.Add(movie("Heat"), features(5, 1995))

	require.NoError(t, store.SetRecommendations("heat", []media.Record{movie("Ronin")}))
	rec, _ := store.Find("Heat")
	require.Len(t, rec.Recommendations, 1)
	assert.Equal(t, "Ronin", rec.Recommendations[0].Title)

	assert.ErrorIs(t, store.SetRecommendations("Collateral", nil), ErrUnknownTitle)
}

func TestStore_FromSnapshot(t *testing.T) {
	var snap media.Snapshot
	snap.Movies.Set("Alien", movie("Alien"))
	snap.TVShows.Set("Severance", show("Severance"))

	store := NewStore(snap)

	_, ok := store.FindType(media.Movie, "alien")
	assert.True(t, ok)
	_, ok = store.FindType(media.TV, "severance")
	assert.True(t, ok)
	assert.NotNil(t, store.WatchHistory())
	assert.NotNil(t, store.Rules())

	_, ok = store.LastWatched()
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	vocab := NewVocabulary(nil)
	vocab.Register(media.TV, 18, "Drama")

	rec := Format(media.TV, media.Summary{ID: 7, Date: "20", GenreIDs: []int{18, 5}, Rating: 8, Seasons: 3}, vocab)
	assert.Equal(t, media.Record{
		ID:       7,
		Title:    "Unknown",
		Year:     "N/A",
		Rating:   8,
		Overview: "No description available.",
		Genres:   []string{"Drama"},
		Type:     media.TV,
		Seasons:  3,
	}, rec)

	rec = Format(media.Movie, media.Summary{Title: "Up", Date: "2009-05-29", Overview: "Balloons", Seasons: 9}, vocab)
	assert.Equal(t, "2009", rec.Year)
	assert.Equal(t, "Balloons", rec.Overview)
	assert.Zero(t, rec.Seasons)
	assert.Empty(t, rec.Genres)

	recs := FormatAll(media.Movie, []media.Summary{{Title: ""}, {Title: "Up"}}, vocab)
	require.Len(t, recs, 1)
	assert.Equal(t, "Up", recs[0].Title)
}

func TestFallback(t *testing.T) {
	for _, mt := range media.Types {
		pool := Fallback(mt)
		assert.GreaterOrEqual(t, len(pool), 5, mt.String())

		seen := media.NewTitleSet()
		for _, rec := range pool {
			assert.False(t, seen.Has(rec.Title), rec.Title)
			assert.Equal(t, mt, rec.Type)
			seen.Add(rec.Title)
		}
	}
}
