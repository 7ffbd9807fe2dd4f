// Package storagetest holds the behaviour every snapshot backend shares
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/mediarec/pkg/media"
	"github.com/kasuboski/mediarec/pkg/storage"
)

// Snapshot returns a populated snapshot that survives an encode/decode round trip unchanged
func Snapshot() media.Snapshot {
	snap := media.NewSnapshot()
	seasons := 5

	snap.Movies.Set("The Matrix", media.Record{
		ID: 603, Title: "The Matrix", Year: "1999", Rating: 8.2, Overview: "A hacker learns the truth.",
		Genres: []string{"Action", "Science Fiction"}, Type: media.Movie,
		Actors: []string{"Keanu Reeves"}, Director: "Lana Wachowski",
		Recommendations: []media.Record{{Title: "Inception", Year: "2010", Rating: 8.4, Genres: []string{"Action"}, Type: media.Movie}},
	})
	snap.Movies.Set("Heat", media.Record{
		ID: 949, Title: "Heat", Year: "1995", Rating: 7.9, Genres: []string{"Crime"}, Type: media.Movie, Director: "Michael Mann",
	})
	snap.TVShows.Set("Breaking Bad", media.Record{
		ID: 1396, Title: "Breaking Bad", Year: "2008", Rating: 8.9, Genres: []string{"Drama"}, Type: media.TV, Seasons: 5,
	})

	snap.WatchHistory = []string{"The Matrix", "Breaking Bad", "Heat", "The Matrix"}

	snap.Preferences.MovieGenres.Set("Science Fiction", 2)
	snap.Preferences.MovieGenres.Set("Action", 2)
	snap.Preferences.MovieGenres.Set("Crime", 1)
	snap.Preferences.TVGenres.Set("Drama", 1)
	snap.Preferences.Actors.Set("Keanu Reeves", 2)
	snap.Preferences.Directors.Set("Lana Wachowski", 2)

	snap.GenreCache.Set("movie_878", "Science Fiction")
	snap.GenreCache.Set("movie_28", "Action")
	snap.GenreCache.Set("tv_18", "Drama")

	snap.MovieFeatures.Set("The Matrix", media.Features{Popularity: 80.5, VoteAverage: 8.2, VoteCount: 24000, Year: 1999, Genres: []int{28, 878}})
	snap.TVFeatures.Set("Breaking Bad", media.Features{Popularity: 300, VoteAverage: 8.9, VoteCount: 14000, Year: 2008, Genres: []int{18}, Seasons: &seasons})

	snap.AssociationRules = []media.Rule{
		{Antecedents: []string{"The Matrix"}, Consequents: []string{"Breaking Bad"}, Support: 0.5, Confidence: 1, Lift: 2},
	}
	snap.UpdatedAt = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	return snap
}

// RoundTrip checks that a backend reports an empty store and then returns what it was given
func RoundTrip(t *testing.T, s storage.Storage) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Init(ctx))

	_, err := s.Read(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	first := Snapshot()
	payload, err := storage.Encode(first)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, payload, first.UpdatedAt))

	second := Snapshot()
	second.WatchHistory = append(second.WatchHistory, "Heat")
	payload, err = storage.Encode(second)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, payload, second.UpdatedAt))

	got, err := s.Read(ctx)
	require.NoError(t, err)

	decoded, err := storage.Decode(got)
	require.NoError(t, err)
	assert.Equal(t, second, decoded)
	assert.Equal(t, []string{"The Matrix", "Heat"}, decoded.Movies.Keys())
}
