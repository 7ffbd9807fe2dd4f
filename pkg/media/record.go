package media

import "time"

// Record is the stored description of a movie or tv show
type Record struct {
	ID              int      `json:"id,omitempty"`
	Title           string   `json:"title"`
	Year            string   `json:"year"`
	Rating          float64  `json:"rating"`
	Overview        string   `json:"overview,omitempty"`
	Genres          []string `json:"genres"`
	Type            Type     `json:"type"`
	Actors          []string `json:"actors,omitempty"`
	Director        string   `json:"director,omitempty"`
	Seasons         int      `json:"seasons,omitempty"`
	Recommendations []Record `json:"recommendations,omitempty"`
}

// Features is the numeric description of a record used for similarity
type Features struct {
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Year        int     `json:"year"`
	Genres      []int   `json:"genres"`
	Seasons     *int    `json:"seasons,omitempty"`
}

// Summary is a catalog list entry before it is formatted into a Record
type Summary struct {
	ID         int
	Title      string
	Date       string
	Rating     float64
	Overview   string
	GenreIDs   []int
	Popularity float64
	Seasons    int
}

// Rule is a mined association rule between watched titles
type Rule struct {
	Antecedents []string `json:"antecedents"`
	Consequents []string `json:"consequents"`
	Support     float64  `json:"support"`
	Confidence  float64  `json:"confidence"`
	Lift        float64  `json:"lift"`
}

// Preferences holds the affinity counters learned from watched items
type Preferences struct {
	MovieGenres OrderedMap[int] `json:"movie_genres"`
	TVGenres    OrderedMap[int] `json:"tv_genres"`
	Actors      OrderedMap[int] `json:"actors"`
	Directors   OrderedMap[int] `json:"directors"`
}

// Snapshot is everything the recommender has learned. It is the unit of persistence.
type Snapshot struct {
	Movies           OrderedMap[Record]   `json:"movies"`
	TVShows          OrderedMap[Record]   `json:"tv_shows"`
	WatchHistory     []string             `json:"watch_history"`
	Preferences      Preferences          `json:"preferences"`
	GenreCache       OrderedMap[string]   `json:"genre_cache"`
	MovieFeatures    OrderedMap[Features] `json:"movie_features"`
	TVFeatures       OrderedMap[Features] `json:"tv_features"`
	AssociationRules []Rule               `json:"association_rules"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// NewSnapshot returns an empty snapshot
func NewSnapshot() Snapshot {
	return Snapshot{
		WatchHistory:     []string{},
		AssociationRules: []Rule{},
		UpdatedAt:        time.Now().UTC(),
	}
}

// Normalize replaces missing lists with empty ones so a decoded snapshot
// behaves like a fresh one
func (s *Snapshot) Normalize() {
	if s.WatchHistory == nil {
		s.WatchHistory = []string{}
	}
	if s.AssociationRules == nil {
		s.AssociationRules = []Rule{}
	}
}
