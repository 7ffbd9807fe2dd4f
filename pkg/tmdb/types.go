package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/oapi-codegen/nullable"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GenreList struct {
	Genres []Genre `json:"genres"`
}

// ListItem is an entry of a search, discover, popular, recommendation or credits listing.
// Movies carry title and release_date, tv shows carry name and first_air_date.
type ListItem struct {
	ID           int                       `json:"id"`
	Title        string                    `json:"title,omitempty"`
	Name         string                    `json:"name,omitempty"`
	ReleaseDate  nullable.Nullable[string] `json:"release_date,omitempty"`
	FirstAirDate nullable.Nullable[string] `json:"first_air_date,omitempty"`
	Overview     string                    `json:"overview"`
	Popularity   float64                   `json:"popularity"`
	VoteAverage  float64                   `json:"vote_average"`
	VoteCount    int                       `json:"vote_count"`
	GenreIDs     []int                     `json:"genre_ids"`
	// Job is set on crew credits
	Job string `json:"job,omitempty"`
}

type Page struct {
	Page         int        `json:"page"`
	Results      []ListItem `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

type CastMember struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Details is a movie or tv details payload with appended credits and recommendations
type Details struct {
	ID              int                       `json:"id"`
	Title           string                    `json:"title,omitempty"`
	Name            string                    `json:"name,omitempty"`
	Overview        string                    `json:"overview"`
	ReleaseDate     nullable.Nullable[string] `json:"release_date,omitempty"`
	FirstAirDate    nullable.Nullable[string] `json:"first_air_date,omitempty"`
	Popularity      float64                   `json:"popularity"`
	VoteAverage     float64                   `json:"vote_average"`
	VoteCount       int                       `json:"vote_count"`
	Genres          []Genre                   `json:"genres"`
	NumberOfSeasons nullable.Nullable[int]    `json:"number_of_seasons,omitempty"`
	Credits         Credits                   `json:"credits"`
	Recommendations Page                      `json:"recommendations"`

	// Raw is the undecoded payload
	Raw json.RawMessage `json:"-"`
}

type Person struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

type PersonPage struct {
	Page    int      `json:"page"`
	Results []Person `json:"results"`
}

type PersonCredits struct {
	ID   int        `json:"id"`
	Cast []ListItem `json:"cast"`
	Crew []ListItem `json:"crew"`
}

// Parse reads and decodes a response body, closing it
func Parse[T any](res *http.Response) (T, error) {
	var out T
	defer res.Body.Close()

	b, err := readBody(res)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// ParseDetails decodes a details response and keeps the raw payload
func ParseDetails(res *http.Response) (Details, error) {
	defer res.Body.Close()

	b, err := readBody(res)
	if err != nil {
		return Details{}, err
	}

	var d Details
	if err := json.Unmarshal(b, &d); err != nil {
		return Details{}, fmt.Errorf("failed to decode details: %w", err)
	}
	if d.ID == 0 {
		return Details{}, fmt.Errorf("failed to decode details: missing id")
	}
	d.Raw = b

	return d, nil
}

func readBody(res *http.Response) ([]byte, error) {
	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return b, nil
}

// date picks whichever of the movie or tv date is set, empty when neither is
func date(release, firstAir nullable.Nullable[string]) string {
	if d, err := release.Get(); err == nil && d != "" {
		return d
	}
	if d, err := firstAir.Get(); err == nil {
		return d
	}
	return ""
}

// DisplayTitle returns the title of a movie or the name of a tv show
func (i ListItem) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// Date returns the release or first air date
func (i ListItem) Date() string {
	return date(i.ReleaseDate, i.FirstAirDate)
}

func (d Details) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

func (d Details) Date() string {
	return date(d.ReleaseDate, d.FirstAirDate)
}

// Director returns the first crew member credited as director
func (c Credits) Director() (string, bool) {
	for _, m := range c.Crew {
		if m.Job == "Director" {
			return m.Name, true
		}
	}
	return "", false
}

// TopCast returns the names of the first n credited actors
func (c Credits) TopCast(n int) []string {
	names := make([]string, 0, min(n, len(c.Cast)))
	for _, m := range c.Cast[:min(n, len(c.Cast))] {
		names = append(names, m.Name)
	}
	return names
}
