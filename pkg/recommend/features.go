package recommend

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/oapi-codegen/nullable"

	"github.com/kasuboski/mediarec/pkg/media"
)

const epsilon = 1e-10

type rawGenre struct {
	ID int `json:"id"`
}

// rawAttributes is the subset of a catalog details payload used for features
type rawAttributes struct {
	Popularity      float64                   `json:"popularity"`
	VoteAverage     float64                   `json:"vote_average"`
	VoteCount       int                       `json:"vote_count"`
	Genres          []rawGenre                `json:"genres"`
	GenreIDs        []int                     `json:"genre_ids"`
	ReleaseDate     nullable.Nullable[string] `json:"release_date"`
	FirstAirDate    nullable.Nullable[string] `json:"first_air_date"`
	NumberOfSeasons nullable.Nullable[int]    `json:"number_of_seasons"`
}

// Extract builds the feature vector of a catalog details payload.
// A missing or malformed date yields 1970 and tv defaults to one season.
func Extract(mt media.Type, raw []byte) (media.Features, error) {
	var attrs rawAttributes
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return media.Features{}, fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	// json accepts null for a struct, which is not attribute shaped
	if !isObject(raw) {
		return media.Features{}, fmt.Errorf("%w: not an object", ErrExtraction)
	}

	f := media.Features{
		Popularity:  attrs.Popularity,
		VoteAverage: attrs.VoteAverage,
		VoteCount:   attrs.VoteCount,
		Year:        defaultYear,
		Genres:      make([]int, 0, len(attrs.Genres)),
	}

	for _, g := range attrs.Genres {
		f.Genres = append(f.Genres, g.ID)
	}
	if len(attrs.Genres) == 0 && len(attrs.GenreIDs) > 0 {
		f.Genres = append(f.Genres, attrs.GenreIDs...)
	}

	date := attrs.ReleaseDate
	if mt == media.TV {
		date = attrs.FirstAirDate
	}
	f.Year = parseYear(date)

	if kindOf(mt).seasons {
		seasons := defaultSeasons
		if attrs.NumberOfSeasons.IsSpecified() && !attrs.NumberOfSeasons.IsNull() {
			seasons = attrs.NumberOfSeasons.MustGet()
		}
		f.Seasons = &seasons
	}

	return f, nil
}

func isObject(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func parseYear(date nullable.Nullable[string]) int {
	d, err := date.Get()
	if err != nil || len(d) < 4 {
		return defaultYear
	}
	year, err := strconv.Atoi(d[:4])
	if err != nil {
		return defaultYear
	}
	return year
}

// Dimensions is the vector length of a media type for the current vocabulary
func Dimensions(mt media.Type, vocab Vocabulary) int {
	n := baseNumericFields + vocab.Size(mt)
	if kindOf(mt).seasons {
		n++
	}
	return n
}

// Vectorize lays a feature vector out as numeric fields, then seasons for tv,
// then one-hot genre flags in vocabulary order
func Vectorize(mt media.Type, f media.Features, vocab Vocabulary) []float64 {
	return vectorize(mt, f, vocab.Columns(mt), vocab.Size(mt))
}

func vectorize(mt media.Type, f media.Features, cols map[int]int, size int) []float64 {
	vec := make([]float64, 0, baseNumericFields+1+size)
	vec = append(vec, f.Popularity, f.VoteAverage, float64(f.VoteCount), float64(f.Year))

	if kindOf(mt).seasons {
		seasons := defaultSeasons
		if f.Seasons != nil {
			seasons = *f.Seasons
		}
		vec = append(vec, float64(seasons))
	}

	flags := make([]float64, size)
	for _, id := range f.Genres {
		if col, ok := cols[id]; ok {
			flags[col] = 1
		}
	}

	return append(vec, flags...)
}

// normalize z-scores every column in place using the population standard deviation
func normalize(matrix [][]float64) {
	if len(matrix) == 0 {
		return
	}

	rows := float64(len(matrix))
	for col := range matrix[0] {
		var mean float64
		for _, row := range matrix {
			mean += row[col]
		}
		mean /= rows

		var variance float64
		for _, row := range matrix {
			d := row[col] - mean
			variance += d * d
		}
		std := math.Max(math.Sqrt(variance/rows), epsilon)

		for _, row := range matrix {
			row[col] = (row[col] - mean) / std
		}
	}
}
