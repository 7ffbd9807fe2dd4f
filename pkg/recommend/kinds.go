package recommend

import (
	"github.com/kasuboski/mediarec/pkg/media"
)

const (
	defaultYear       = 1970
	defaultSeasons    = 1
	missingYear       = "N/A"
	missingOverview   = "No description available."
	unknownTitle      = "Unknown"
	baseNumericFields = 4
)

// kind holds the per media type behavior of the recommender
type kind struct {
	// seasons adds the season count column after the base numeric fields
	seasons bool
	// preferences is the genre counter bucket fed by this type
	preferences Category
	// fallback is a pool of distinct records used when the catalog has nothing
	fallback []media.Record
}

var kinds = map[media.Type]kind{
	media.Movie: {
		preferences: MovieGenres,
		fallback: []media.Record{
			{Title: "The Shawshank Redemption", Year: "1994", Rating: 8.7, Overview: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.", Genres: []string{"Drama", "Crime"}, Type: media.Movie},
			{Title: "The Godfather", Year: "1972", Rating: 8.7, Overview: "The aging patriarch of an organized crime dynasty transfers control of his empire to his reluctant son.", Genres: []string{"Drama", "Crime"}, Type: media.Movie},
			{Title: "Spirited Away", Year: "2001", Rating: 8.5, Overview: "A young girl wanders into a world ruled by gods, witches and spirits.", Genres: []string{"Animation", "Family", "Fantasy"}, Type: media.Movie},
			{Title: "The Dark Knight", Year: "2008", Rating: 8.5, Overview: "Batman raises the stakes in his war on crime.", Genres: []string{"Drama", "Action", "Crime", "Thriller"}, Type: media.Movie},
			{Title: "Parasite", Year: "2019", Rating: 8.5, Overview: "All unemployed, Ki-taek's family takes peculiar interest in the wealthy Parks.", Genres: []string{"Comedy", "Thriller", "Drama"}, Type: media.Movie},
			{Title: "Seven Samurai", Year: "1954", Rating: 8.5, Overview: "A samurai answers a village's request for protection after he falls on hard times.", Genres: []string{"Action", "Drama"}, Type: media.Movie},
		},
	},
	media.TV: {
		seasons:     true,
		preferences: TVGenres,
		fallback: []media.Record{
			{Title: "Breaking Bad", Year: "2008", Rating: 8.9, Overview: "A high school chemistry teacher diagnosed with cancer turns to manufacturing methamphetamine.", Genres: []string{"Drama", "Crime"}, Type: media.TV, Seasons: 5},
			{Title: "The Wire", Year: "2002", Rating: 8.6, Overview: "Told from the points of view of both the Baltimore homicide and narcotics detectives and their targets.", Genres: []string{"Crime", "Drama"}, Type: media.TV, Seasons: 5},
			{Title: "Chernobyl", Year: "2019", Rating: 8.6, Overview: "The true story of one of the worst man-made catastrophes in history.", Genres: []string{"Drama"}, Type: media.TV, Seasons: 1},
			{Title: "Avatar: The Last Airbender", Year: "2005", Rating: 8.7, Overview: "A young boy must master the four elements to bring balance to a war torn world.", Genres: []string{"Animation", "Action & Adventure", "Sci-Fi & Fantasy"}, Type: media.TV, Seasons: 3},
			{Title: "The Sopranos", Year: "1999", Rating: 8.6, Overview: "New Jersey mob boss Tony Soprano deals with personal and professional issues.", Genres: []string{"Drama", "Crime"}, Type: media.TV, Seasons: 6},
			{Title: "Fleabag", Year: "2016", Rating: 8.1, Overview: "A comedy about a dry-witted woman navigating life and love in London.", Genres: []string{"Comedy", "Drama"}, Type: media.TV, Seasons: 2},
		},
	},
}

func kindOf(mt media.Type) kind {
	return kinds[mt]
}

// Fallback returns the static records used when the catalog cannot be reached
func Fallback(mt media.Type) []media.Record {
	pool := kindOf(mt).fallback
	out := make([]media.Record, len(pool))
	copy(out, pool)
	return out
}

// Format converts a catalog summary into the standard record shape
func Format(mt media.Type, s media.Summary, vocab Vocabulary) media.Record {
	rec := media.Record{
		ID:       s.ID,
		Title:    s.Title,
		Year:     missingYear,
		Rating:   s.Rating,
		Overview: s.Overview,
		Genres:   vocab.Names(mt, s.GenreIDs),
		Type:     mt,
	}

	if rec.Title == "" {
		rec.Title = unknownTitle
	}
	if len(s.Date) >= 4 {
		rec.Year = s.Date[:4]
	}
	if rec.Overview == "" {
		rec.Overview = missingOverview
	}
	if kindOf(mt).seasons {
		rec.Seasons = s.Seasons
	}

	return rec
}

// FormatAll formats summaries, dropping entries without a title
func FormatAll(mt media.Type, summaries []media.Summary, vocab Vocabulary) []media.Record {
	out := make([]media.Record, 0, len(summaries))
	for _, s := range summaries {
		if s.Title == "" {
			continue
		}
		out = append(out, Format(mt, s, vocab))
	}
	return out
}
