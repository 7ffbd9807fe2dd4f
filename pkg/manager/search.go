package manager

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/media"
	"github.com/kasuboski/mediarec/pkg/recommend"
	"github.com/kasuboski/mediarec/pkg/tmdb"
)

// Role is how a person is credited on a movie
type Role string

const (
	RoleActor    Role = "actor"
	RoleDirector Role = "director"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleActor, "actors", "cast":
		return RoleActor, nil
	case RoleDirector, "directors":
		return RoleDirector, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type PeopleResult struct {
	Name  string         `json:"name"`
	Role  Role           `json:"role"`
	Items []media.Record `json:"items"`
}

// SearchPeople returns the most popular movies of the best matching person in the given role
func (m *MediaManager) SearchPeople(ctx context.Context, query string, role Role) (PeopleResult, error) {
	log := logger.FromCtx(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return PeopleResult{}, ErrEmptyQuery
	}

	person, err := m.catalog.SearchPerson(ctx, query)
	if err != nil {
		return PeopleResult{}, catalogError(media.Movie, query, err)
	}

	credits, err := m.catalog.PersonMovieCredits(ctx, person.ID)
	if err != nil {
		return PeopleResult{}, catalogError(media.Movie, query, err)
	}

	var movies []tmdb.ListItem
	switch role {
	case RoleDirector:
		for _, c := range credits.Crew {
			if strings.EqualFold(c.Job, "director") {
				movies = append(movies, c)
			}
		}
	default:
		movies = credits.Cast
	}

	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Popularity > movies[j].Popularity
	})
	movies = movies[:min(resultSize, len(movies))]

	name := person.Name
	if name == "" {
		name = query
	}
	log.Debugw("found person credits", "name", name, "role", role, "count", len(movies))

	return PeopleResult{
		Name:  name,
		Role:  role,
		Items: recommend.FormatAll(media.Movie, summaries(movies), m.engine.Store.Vocabulary()),
	}, nil
}

type GenreResult struct {
	Genre string         `json:"genre"`
	Type  media.Type     `json:"type"`
	Items []media.Record `json:"items"`
}

// SearchGenre lists the most popular titles of a genre known to the vocabulary
func (m *MediaManager) SearchGenre(ctx context.Context, name string, mt media.Type) (GenreResult, error) {
	vocab := m.engine.Store.Vocabulary()
	id, ok := vocab.Find(mt, strings.TrimSpace(name))
	if !ok {
		return GenreResult{}, fmt.Errorf("%w: %s genre %q", ErrNotFound, mt, name)
	}

	found, err := m.catalog.Discover(ctx, mt, []int{id})
	if err != nil {
		return GenreResult{}, catalogError(mt, name, err)
	}

	items := recommend.FormatAll(mt, found, vocab)
	if len(items) == 0 {
		return GenreResult{}, fmt.Errorf("%w: no %s titles for genre %q", ErrNotFound, mt, name)
	}

	genre, _ := vocab.Name(mt, id)
	return GenreResult{
		Genre: genre,
		Type:  mt,
		Items: items[:min(resultSize, len(items))],
	}, nil
}
