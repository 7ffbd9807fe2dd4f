package manager

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kasuboski/mediarec/config"
	"github.com/kasuboski/mediarec/pkg/media"
	"github.com/kasuboski/mediarec/pkg/recommend"
	"github.com/kasuboski/mediarec/pkg/storage"
	"github.com/kasuboski/mediarec/pkg/storage/file"
	"github.com/kasuboski/mediarec/pkg/storage/storagetest"
	"github.com/kasuboski/mediarec/pkg/tmdb"
	"github.com/kasuboski/mediarec/pkg/tmdb/mocks"
)

const matrixDetails = `{
	"id": 603,
	"title": "The Matrix",
	"release_date": "1999-03-30",
	"overview": "A hacker learns the truth.",
	"popularity": 80.5,
	"vote_average": 8.2,
	"vote_count": 24000,
	"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}],
	"credits": {
		"cast": [{"name": "Keanu Reeves"}, {"name": "Carrie-Anne Moss"}],
		"crew": [{"name": "Joel Silver", "job": "Producer"}, {"name": "Lana Wachowski", "job": "Director"}]
	},
	"recommendations": {"results": [
		{"id": 604, "title": "The Matrix Reloaded", "release_date": "2003-05-15", "genre_ids": [28]},
		{"id": 605, "title": "The Matrix Revolutions", "release_date": "2003-11-05", "genre_ids": [28, 878]},
		{"id": 0, "title": ""},
		{"id": 27205, "title": "Inception", "release_date": "2010-07-15"},
		{"id": 157336, "title": "Interstellar"},
		{"id": 1891, "title": "The Empire Strikes Back", "release_date": "1980-05-20"}
	]}
}`

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

// respond returns a fresh response on every call so repeated expectations can read a body
func respond(status int, body string) func(...any) (*http.Response, error) {
	return func(...any) (*http.Response, error) {
		return response(status, body), nil
	}
}

func newGateway(t *testing.T) *storage.Gateway {
	t.Helper()
	return storage.NewGateway(file.New(filepath.Join(t.TempDir(), "state.json")))
}

func newManager(t *testing.T, snap media.Snapshot) (*MediaManager, *mocks.MockClientInterface, *storage.Gateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClientInterface(ctrl)
	gateway := newGateway(t)
	return New(client, gateway, snap, config.Config{}), client, gateway
}

func recordTitles(recs []media.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestMediaManager_Lookup(t *testing.T) {
	t.Run("new title is learned and saved", func(t *testing.T) {
		ctx := context.Background()
		m, client, gateway := newManager(t, media.NewSnapshot())

		client.EXPECT().SearchMovie(gomock.Any(), &tmdb.SearchMovieParams{Query: "the matrix"}).
			Return(response(http.StatusOK, `{"results": [{"id": 603, "title": "The Matrix"}, {"id": 1, "title": "Matrix Other"}]}`), nil)
		client.EXPECT().MovieDetails(gomock.Any(), int32(603), &tmdb.DetailsParams{AppendToResponse: ptr("credits,recommendations")}).
			Return(response(http.StatusOK, matrixDetails), nil)

		got, err := m.Lookup(ctx, media.Movie, "  the matrix ")
		require.NoError(t, err)

		assert.False(t, got.Repeat)
		assert.Equal(t, 603, got.Record.ID)
		assert.Equal(t, "The Matrix", got.Record.Title)
		assert.Equal(t, "1999", got.Record.Year)
		assert.Equal(t, "Lana Wachowski", got.Record.Director)
		assert.Equal(t, []string{"Keanu Reeves", "Carrie-Anne Moss"}, got.Record.Actors)
		assert.Equal(t, []string{"Action", "Science Fiction"}, got.Record.Genres)

		assert.Equal(t, []string{
			"The Matrix Reloaded",
			"The Matrix Revolutions",
			"Inception",
			"Interstellar",
			"The Empire Strikes Back",
		}, recordTitles(got.Recommendations))
		assert.Equal(t, []string{"Action", "Science Fiction"}, got.Recommendations[1].Genres)
		assert.Equal(t, "N/A", got.Recommendations[3].Year)
		assert.Equal(t, got.Recommendations, got.Record.Recommendations)

		snap := gateway.Load(ctx)
		assert.Equal(t, []string{"The Matrix"}, snap.WatchHistory)
		assert.Equal(t, []string{"The Matrix"}, snap.Movies.Keys())
		count, _ := snap.Preferences.Actors.Get("Keanu Reeves")
		assert.Equal(t, 1, count)
		f, ok := snap.MovieFeatures.Get("The Matrix")
		require.True(t, ok)
		assert.Equal(t, 1999, f.Year)
		assert.Equal(t, []int{28, 878}, f.Genres)
	})

	t.Run("repeat lookup is served from the store", func(t *testing.T) {
		ctx := context.Background()
		m, client, _ := newManager(t, media.NewSnapshot())

		client.EXPECT().SearchMovie(gomock.Any(), gomock.Any()).Times(1).
			Return(response(http.StatusOK, `{"results": [{"id": 603, "title": "The Matrix"}]}`), nil)
		client.EXPECT().MovieDetails(gomock.Any(), int32(603), gomock.Any()).Times(2).
			DoAndReturn(respond(http.StatusOK, matrixDetails))

		_, err := m.Lookup(ctx, media.Movie, "The Matrix")
		require.NoError(t, err)

		got, err := m.Lookup(ctx, media.Movie, "THE MATRIX")
		require.NoError(t, err)
		assert.True(t, got.Repeat)
		assert.Equal(t, "The Matrix", got.Record.Title)
		assert.Len(t, got.Recommendations, 5)

		store := m.Engine().Store
		assert.Equal(t, []string{"The Matrix", "The Matrix"}, store.WatchHistory())
		assert.Equal(t, 1, store.Count(media.Movie))
		assert.Equal(t, []recommend.Count{{Name: "Keanu Reeves", Count: 2}, {Name: "Carrie-Anne Moss", Count: 2}}, m.Engine().Preferences.Top(recommend.Actors, 5))
	})

	t.Run("repeat lookup survives a catalog outage", func(t *testing.T) {
		ctx := context.Background()
		snap := storagetest.Snapshot()
		m, client, _ := newManager(t, snap)

		client.EXPECT().TvSeriesDetails(gomock.Any(), int32(1396), gomock.Any()).Return(nil, errors.New("offline"))
		client.EXPECT().DiscoverTv(gomock.Any(), gomock.Any()).Return(nil, errors.New("offline"))
		client.EXPECT().TvSeriesPopularList(gomock.Any(), gomock.Any()).Return(nil, errors.New("offline"))

		got, err := m.Lookup(ctx, media.TV, "breaking bad")
		require.NoError(t, err)
		assert.True(t, got.Repeat)
		require.Len(t, got.Recommendations, 5)
		assert.NotContains(t, recordTitles(got.Recommendations), "Breaking Bad")
		assert.Equal(t, "Breaking Bad", m.Engine().Store.WatchHistory()[4])
	})

	t.Run("empty query", func(t *testing.T) {
		m, _, _ := newManager(t, media.NewSnapshot())

		_, err := m.Lookup(context.Background(), media.Movie, "   ")
		assert.ErrorIs(t, err, ErrEmptyQuery)
		assert.Empty(t, m.Engine().Store.WatchHistory())
	})

	t.Run("no search results", func(t *testing.T) {
		m, client, _ := newManager(t, media.NewSnapshot())
		client.EXPECT().SearchTv(gomock.Any(), &tmdb.SearchTvParams{Query: "nothing like this"}).
			Return(response(http.StatusOK, `{"results": []}`), nil)

		_, err := m.Lookup(context.Background(), media.TV, "nothing like this")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, m.Engine().Store.WatchHistory())
	})

	t.Run("details not found", func(t *testing.T) {
		m, client, _ := newManager(t, media.NewSnapshot())
		client.EXPECT().SearchMovie(gomock.Any(), gomock.Any()).
			Return(response(http.StatusOK, `{"results": [{"id": 42, "title": "Gone"}]}`), nil)
		client.EXPECT().MovieDetails(gomock.Any(), int32(42), gomock.Any()).
			Return(response(http.StatusNotFound, `{"status_message": "gone"}`), nil)

		_, err := m.Lookup(context.Background(), media.Movie, "gone")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 0, m.Engine().Store.Count(media.Movie))
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		m, client, _ := newManager(t, media.NewSnapshot())
		client.EXPECT().SearchTv(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := m.Lookup(context.Background(), media.TV, "the wire")
		assert.ErrorIs(t, err, recommend.ErrCollaboratorUnavailable)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestMediaManager_CacheGenres(t *testing.T) {
	t.Run("partial failure keeps what loaded", func(t *testing.T) {
		ctx := context.Background()
		m, client, gateway := newManager(t, media.NewSnapshot())

		client.EXPECT().GenreMovieList(gomock.Any(), gomock.Any()).
			Return(response(http.StatusOK, `{"genres": [{"id": 28, "name": "Action"}, {"id": 35, "name": "Comedy"}]}`), nil)
		client.EXPECT().GenreTvList(gomock.Any(), gomock.Any()).
			Return(response(http.StatusInternalServerError, `{}`), nil)

		err := m.CacheGenres(ctx)
		assert.ErrorIs(t, err, tmdb.ErrUnexpectedStatus)

		vocab := m.Engine().Store.Vocabulary()
		assert.Equal(t, 2, vocab.Len())
		name, ok := vocab.Name(media.Movie, 35)
		assert.True(t, ok)
		assert.Equal(t, "Comedy", name)

		snap := gateway.Load(ctx)
		assert.Equal(t, []string{"movie_28", "movie_35"}, snap.GenreCache.Keys())
	})

	t.Run("populated vocabulary is left alone", func(t *testing.T) {
		m, _, _ := newManager(t, storagetest.Snapshot())
		assert.NoError(t, m.CacheGenres(context.Background()))
	})
}

func TestMediaManager_SearchPeople(t *testing.T) {
	credits := `{
		"id": 6384,
		"cast": [
			{"id": 1, "title": "Speed", "popularity": 20, "release_date": "1994-06-09"},
			{"id": 2, "title": "John Wick", "popularity": 90},
			{"id": 3, "title": "The Matrix", "popularity": 80},
			{"id": 4, "title": "Point Break", "popularity": 20},
			{"id": 5, "title": "Constantine", "popularity": 40},
			{"id": 6, "title": "Johnny Mnemonic", "popularity": 5}
		],
		"crew": [
			{"id": 7, "title": "Man of Tai Chi", "job": "Director", "popularity": 10},
			{"id": 8, "title": "Side by Side", "job": "Producer", "popularity": 99},
			{"id": 9, "title": "Another One", "job": "director", "popularity": 30}
		]
	}`

	tests := []struct {
		name string
		role Role
		want []string
	}{
		{
			name: "actor",
			role: RoleActor,
			want: []string{"John Wick", "The Matrix", "Constantine", "Speed", "Point Break"},
		},
		{
			name: "director",
			role: RoleDirector,
			want: []string{"Another One", "Man of Tai Chi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, client, _ := newManager(t, media.NewSnapshot())
			client.EXPECT().SearchPerson(gomock.Any(), &tmdb.SearchPersonParams{Query: "keanu reeves"}).
				Return(response(http.StatusOK, `{"results": [{"id": 6384, "name": "Keanu Reeves"}, {"id": 1, "name": "Someone Else"}]}`), nil)
			client.EXPECT().PersonMovieCredits(gomock.Any(), int32(6384), gomock.Any()).
				Return(response(http.StatusOK, credits), nil)

			got, err := m.SearchPeople(context.Background(), "keanu reeves", tt.role)
			require.NoError(t, err)
			assert.Equal(t, "Keanu Reeves", got.Name)
			assert.Equal(t, tt.role, got.Role)
			assert.Equal(t, tt.want, recordTitles(got.Items))
			for _, rec := range got.Items {
				assert.Equal(t, media.Movie, rec.Type)
			}
		})
	}

	t.Run("no person", func(t *testing.T) {
		m, client, _ := newManager(t, media.NewSnapshot())
		client.EXPECT().SearchPerson(gomock.Any(), gomock.Any()).Return(response(http.StatusOK, `{"results": []}`), nil)

		_, err := m.SearchPeople(context.Background(), "nobody", RoleActor)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty query", func(t *testing.T) {
		m, _, _ := newManager(t, media.NewSnapshot())
		_, err := m.SearchPeople(context.Background(), "", RoleDirector)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "actor", want: RoleActor},
		{in: " Actors ", want: RoleActor},
		{in: "DIRECTOR", want: RoleDirector},
		{in: "writer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMediaManager_SearchGenre(t *testing.T) {
	t.Run("known genre", func(t *testing.T) {
		m, client, _ := newManager(t, storagetest.Snapshot())
		client.EXPECT().DiscoverMovie(gomock.Any(), &tmdb.DiscoverParams{WithGenres: ptr("28"), SortBy: ptr("popularity.desc")}).
			Return(response(http.StatusOK, `{"results": [
				{"id": 1, "title": "One", "genre_ids": [28]},
				{"id": 2, "title": "Two", "genre_ids": [28, 878]},
				{"id": 3, "title": "Three"},
				{"id": 4, "title": "Four"},
				{"id": 5, "title": "Five"},
				{"id": 6, "title": "Six"}
			]}`), nil)

		got, err := m.SearchGenre(context.Background(), "ACTION", media.Movie)
		require.NoError(t, err)
		assert.Equal(t, "Action", got.Genre)
		assert.Equal(t, media.Movie, got.Type)
		assert.Equal(t, []string{"One", "Two", "Three", "Four", "Five"}, recordTitles(got.Items))
		assert.Equal(t, []string{"Action", "Science Fiction"}, got.Items[1].Genres)
	})

	t.Run("unknown genre", func(t *testing.T) {
		m, _, _ := newManager(t, storagetest.Snapshot())
		_, err := m.SearchGenre(context.Background(), "Western", media.Movie)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("genre of the other type", func(t *testing.T) {
		m, _, _ := newManager(t, storagetest.Snapshot())
		_, err := m.SearchGenre(context.Background(), "Drama", media.Movie)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("no titles", func(t *testing.T) {
		m, client, _ := newManager(t, storagetest.Snapshot())
		client.EXPECT().DiscoverTv(gomock.Any(), gomock.Any()).Return(response(http.StatusOK, `{"results": []}`), nil)

		_, err := m.SearchGenre(context.Background(), "drama", media.TV)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMediaManager_Popular(t *testing.T) {
	m, client, _ := newManager(t, media.NewSnapshot())
	client.EXPECT().MoviePopularList(gomock.Any(), gomock.Any()).
		Return(response(http.StatusOK, `{"results": [{"id": 1, "title": "Hit"}, {"id": 2, "title": "Blockbuster"}]}`), nil)

	got := m.Popular(context.Background(), media.Movie, 5)
	require.Len(t, got, 5)
	assert.Equal(t, []string{"Hit", "Blockbuster"}, recordTitles(got[:2]))
}

func TestMediaManager_Personalized(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		m, _, _ := newManager(t, media.NewSnapshot())
		assert.Empty(t, m.Personalized(context.Background()))
	})
}

func TestMediaManager_Stats(t *testing.T) {
	m, _, _ := newManager(t, storagetest.Snapshot())

	got := m.Stats(context.Background())
	assert.Equal(t, 4, got.History)
	assert.Equal(t, 2, got.Movies)
	assert.Equal(t, 1, got.TVShows)
	assert.Equal(t, 1, got.Rules)
	assert.Equal(t, 3, got.Genres)
	assert.Equal(t, "The Matrix", got.LastWatched)
	assert.Equal(t, []recommend.Count{{Name: "Science Fiction", Count: 2}, {Name: "Action", Count: 2}, {Name: "Crime", Count: 1}}, got.Top["movie_genres"])
	assert.Equal(t, []recommend.Count{{Name: "Lana Wachowski", Count: 2}}, got.Top["directors"])
	assert.Equal(t, storagetest.Snapshot().UpdatedAt, got.UpdatedAt)
}

func TestMediaManager_Save(t *testing.T) {
	ctx := context.Background()
	m, _, gateway := newManager(t, storagetest.Snapshot())

	require.NoError(t, m.Save(ctx))
	snap := gateway.Load(ctx)
	assert.Equal(t, storagetest.Snapshot().WatchHistory, snap.WatchHistory)
	assert.False(t, snap.UpdatedAt.Equal(storagetest.Snapshot().UpdatedAt))
}

func TestMediaManager_History(t *testing.T) {
	m, _, _ := newManager(t, storagetest.Snapshot())
	assert.Equal(t, []string{"The Matrix", "Heat", "Breaking Bad", "The Matrix"}, m.History())
}
