package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/mediarec/pkg/media"
)

func TestExtract(t *testing.T) {
	t.Run("movie details", func(t *testing.T) {
		raw := []byte(`{"popularity":61.4,"vote_average":8.4,"vote_count":30000,"release_date":"1999-03-30","genres":[{"id":28,"name":"Action"},{"id":878,"name":"Science Fiction"}]}`)

		f, err := Extract(media.Movie, raw)
		require.NoError(t, err)
		assert.Equal(t, 61.4, f.Popularity)
		assert.Equal(t, 8.4, f.VoteAverage)
		assert.Equal(t, 30000, f.VoteCount)
		assert.Equal(t, 1999, f.Year)
		assert.Equal(t, []int{28, 878}, f.Genres)
		assert.Nil(t, f.Seasons)
	})

	t.Run("tv details", func(t *testing.T) {
		raw := []byte(`{"popularity":12,"vote_average":8.1,"vote_count":900,"first_air_date":"2017-12-01","release_date":"1990-01-01","number_of_seasons":3,"genres":[{"id":18,"name":"Drama"}]}`)

		f, err := Extract(media.TV, raw)
		require.NoError(t, err)
		assert.Equal(t, 2017, f.Year)
		require.NotNil(t, f.Seasons)
		assert.Equal(t, 3, *f.Seasons)
	})

	t.Run("summary genre ids", func(t *testing.T) {
		f, err := Extract(media.Movie, []byte(`{"genre_ids":[12,16]}`))
		require.NoError(t, err)
		assert.Equal(t, []int{12, 16}, f.Genres)
	})

	t.Run("defaults", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{name: "missing date", raw: `{}`},
			{name: "null date", raw: `{"first_air_date":null,"number_of_seasons":null}`},
			{name: "empty date", raw: `{"first_air_date":""}`},
			{name: "malformed date", raw: `{"first_air_date":"soon"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f, err := Extract(media.TV, []byte(tt.raw))
				require.NoError(t, err)
				assert.Equal(t, 1970, f.Year)
				require.NotNil(t, f.Seasons)
				assert.Equal(t, 1, *f.Seasons)
				assert.Empty(t, f.Genres)
			})
		}
	})

	t.Run("not attribute shaped", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{name: "array", raw: `[1,2]`},
			{name: "string", raw: `"movie"`},
			{name: "null", raw: `null`},
			{name: "garbage", raw: `{popularity`},
			{name: "wrong kind", raw: `{"popularity":"high"}`},
			{name: "wrong genres kind", raw: `{"genres":{"id":1}}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Extract(media.Movie, []byte(tt.raw))
				assert.ErrorIs(t, err, ErrExtraction)
			})
		}
	})
}

func TestVectorize(t *testing.T) {
	vocab := NewVocabulary(nil)
	vocab.Register(media.Movie, 28, "Action")
	vocab.Register(media.TV, 18, "Drama")
	vocab.Register(media.Movie, 35, "Comedy")
	vocab.Register(media.Movie, 18, "Drama")

	t.Run("movie layout", func(t *testing.T) {
		f := media.Features{Popularity: 1.5, VoteAverage: 7, VoteCount: 10, Year: 2001, Genres: []int{18, 28, 99}}

		vec := Vectorize(media.Movie, f, vocab)
		assert.Equal(t, []float64{1.5, 7, 10, 2001, 1, 0, 1}, vec)
	})

	t.Run("tv layout", func(t *testing.T) {
		seasons := 4
		f := media.Features{Popularity: 2, VoteAverage: 8, VoteCount: 3, Year: 2010, Genres: []int{18}, Seasons: &seasons}

		vec := Vectorize(media.TV, f, vocab)
		assert.Equal(t, []float64{2, 8, 3, 2010, 4, 1}, vec)
	})

	t.Run("length matches dimensions", func(t *testing.T) {
		for _, mt := range media.Types {
			f, err := Extract(mt, []byte(`{"genres":[{"id":18}]}`))
			require.NoError(t, err)
			assert.Len(t, Vectorize(mt, f, vocab), Dimensions(mt, vocab), mt.String())
		}
		assert.Equal(t, 7, Dimensions(media.Movie, vocab))
		assert.Equal(t, 6, Dimensions(media.TV, vocab))
	})
}

func TestNormalize(t *testing.T) {
	matrix := [][]float64{
		{1, 5},
		{3, 5},
	}
	normalize(matrix)

	assert.InDelta(t, -1, matrix[0][0], 1e-9)
	assert.InDelta(t, 1, matrix[1][0], 1e-9)
	// constant columns collapse to zero instead of dividing by zero
	assert.Equal(t, 0.0, matrix[0][1])
	assert.Equal(t, 0.0, matrix[1][1])
}
