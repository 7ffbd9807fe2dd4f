package manager

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kasuboski/mediarec/pkg/cache"
	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/media"
	"github.com/kasuboski/mediarec/pkg/metrics"
	"github.com/kasuboski/mediarec/pkg/recommend"
	"github.com/kasuboski/mediarec/pkg/tmdb"
)

type TMDBClientInterface tmdb.ClientInterface

const (
	appendToResponse = "credits,recommendations"
	sortByPopularity = "popularity.desc"

	DefaultCacheTTL = time.Hour
)

// endpoints are the catalog operations that exist once per media type
type endpoints struct {
	search   func(ctx context.Context, c TMDBClientInterface, query string) (*http.Response, error)
	details  func(c TMDBClientInterface, ctx context.Context, id int32, params *tmdb.DetailsParams, reqEditors ...tmdb.RequestEditorFn) (*http.Response, error)
	discover func(c TMDBClientInterface, ctx context.Context, params *tmdb.DiscoverParams, reqEditors ...tmdb.RequestEditorFn) (*http.Response, error)
	popular  func(c TMDBClientInterface, ctx context.Context, params *tmdb.PopularListParams, reqEditors ...tmdb.RequestEditorFn) (*http.Response, error)
	genres   func(c TMDBClientInterface, ctx context.Context, params *tmdb.GenreListParams, reqEditors ...tmdb.RequestEditorFn) (*http.Response, error)
}

var catalogEndpoints = map[media.Type]endpoints{
	media.Movie: {
		search: func(ctx context.Context, c TMDBClientInterface, query string) (*http.Response, error) {
			return c.SearchMovie(ctx, &tmdb.SearchMovieParams{Query: query})
		},
		details:  TMDBClientInterface.MovieDetails,
		discover: TMDBClientInterface.DiscoverMovie,
		popular:  TMDBClientInterface.MoviePopularList,
		genres:   TMDBClientInterface.GenreMovieList,
	},
	media.TV: {
		search: func(ctx context.Context, c TMDBClientInterface, query string) (*http.Response, error) {
			return c.SearchTv(ctx, &tmdb.SearchTvParams{Query: query})
		},
		details:  TMDBClientInterface.TvSeriesDetails,
		discover: TMDBClientInterface.DiscoverTv,
		popular:  TMDBClientInterface.TvSeriesPopularList,
		genres:   TMDBClientInterface.GenreTvList,
	},
}

// Catalog adapts the tmdb client to the shapes the recommender works with
type Catalog struct {
	tmdb    TMDBClientInterface
	genres  *cache.Cache[media.Type, []tmdb.Genre]
	popular *cache.Cache[media.Type, []media.Summary]
}

var _ recommend.Catalog = (*Catalog)(nil)

func NewCatalog(client TMDBClientInterface, ttl time.Duration) *Catalog {
	return &Catalog{
		tmdb:    client,
		genres:  cache.New[media.Type, []tmdb.Genre](ttl),
		popular: cache.New[media.Type, []media.Summary](ttl),
	}
}

func endpointsFor(mt media.Type) (endpoints, error) {
	e, ok := catalogEndpoints[mt]
	if !ok {
		return endpoints{}, fmt.Errorf("unsupported media type %s", mt)
	}
	return e, nil
}

// fetch performs one catalog request and decodes it, counting the outcome
func fetch[T any](ctx context.Context, endpoint string, do func() (*http.Response, error), parse func(*http.Response) (T, error)) (T, error) {
	var out T
	log := logger.FromCtx(ctx)

	res, err := do()
	if err != nil {
		if res != nil {
			res.Body.Close()
		}
		metrics.CatalogRequests.WithLabelValues(endpoint, "error").Inc()
		log.Debugw("catalog request failed", "endpoint", endpoint, "error", err)
		return out, err
	}

	out, err = parse(res)
	switch {
	case errors.Is(err, tmdb.ErrNotFound):
		metrics.CatalogRequests.WithLabelValues(endpoint, "not_found").Inc()
	case err != nil:
		metrics.CatalogRequests.WithLabelValues(endpoint, "error").Inc()
		log.Debugw("failed to parse catalog response", "endpoint", endpoint, "error", err)
	default:
		metrics.CatalogRequests.WithLabelValues(endpoint, "ok").Inc()
	}

	return out, err
}

// Search returns the catalog matches for query
func (c *Catalog) Search(ctx context.Context, mt media.Type, query string) ([]tmdb.ListItem, error) {
	e, err := endpointsFor(mt)
	if err != nil {
		return nil, err
	}

	page, err := fetch(ctx, "search_"+mt.String(), func() (*http.Response, error) {
		return e.search(ctx, c.tmdb, query)
	}, tmdb.Parse[tmdb.Page])
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Details returns a title with its credits and the catalog's own recommendations
func (c *Catalog) Details(ctx context.Context, mt media.Type, id int) (tmdb.Details, error) {
	e, err := endpointsFor(mt)
	if err != nil {
		return tmdb.Details{}, err
	}

	params := &tmdb.DetailsParams{AppendToResponse: ptr(appendToResponse)}
	return fetch(ctx, "details_"+mt.String(), func() (*http.Response, error) {
		return e.details(c.tmdb, ctx, int32(id), params)
	}, tmdb.ParseDetails)
}

// Discover lists titles having all of genreIDs, most popular first
func (c *Catalog) Discover(ctx context.Context, mt media.Type, genreIDs []int) ([]media.Summary, error) {
	e, err := endpointsFor(mt)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(genreIDs))
	for i, id := range genreIDs {
		ids[i] = strconv.Itoa(id)
	}
	params := &tmdb.DiscoverParams{
		WithGenres: ptr(strings.Join(ids, ",")),
		SortBy:     ptr(sortByPopularity),
	}

	page, err := fetch(ctx, "discover_"+mt.String(), func() (*http.Response, error) {
		return e.discover(c.tmdb, ctx, params)
	}, tmdb.Parse[tmdb.Page])
	if err != nil {
		return nil, err
	}
	return summaries(page.Results), nil
}

// Popular lists the currently popular titles. Results are cached.
func (c *Catalog) Popular(ctx context.Context, mt media.Type) ([]media.Summary, error) {
	e, err := endpointsFor(mt)
	if err != nil {
		return nil, err
	}

	out, hit, err := c.popular.GetOrLoad(mt, func() ([]media.Summary, error) {
		page, err := fetch(ctx, "popular_"+mt.String(), func() (*http.Response, error) {
			return e.popular(c.tmdb, ctx, nil)
		}, tmdb.Parse[tmdb.Page])
		if err != nil {
			return nil, err
		}
		return summaries(page.Results), nil
	})
	countCache("popular", hit)

	return out, err
}

// Genres lists the genres of a media type. Results are cached.
func (c *Catalog) Genres(ctx context.Context, mt media.Type) ([]tmdb.Genre, error) {
	e, err := endpointsFor(mt)
	if err != nil {
		return nil, err
	}

	out, hit, err := c.genres.GetOrLoad(mt, func() ([]tmdb.Genre, error) {
		list, err := fetch(ctx, "genres_"+mt.String(), func() (*http.Response, error) {
			return e.genres(c.tmdb, ctx, nil)
		}, tmdb.Parse[tmdb.GenreList])
		if err != nil {
			return nil, err
		}
		return list.Genres, nil
	})
	countCache("genres", hit)

	return out, err
}

// SearchPerson returns the best person match for query
func (c *Catalog) SearchPerson(ctx context.Context, query string) (tmdb.Person, error) {
	page, err := fetch(ctx, "search_person", func() (*http.Response, error) {
		return c.tmdb.SearchPerson(ctx, &tmdb.SearchPersonParams{Query: query})
	}, tmdb.Parse[tmdb.PersonPage])
	if err != nil {
		return tmdb.Person{}, err
	}
	if len(page.Results) == 0 {
		return tmdb.Person{}, tmdb.ErrNotFound
	}
	return page.Results[0], nil
}

func (c *Catalog) PersonMovieCredits(ctx context.Context, personID int) (tmdb.PersonCredits, error) {
	return fetch(ctx, "person_credits", func() (*http.Response, error) {
		return c.tmdb.PersonMovieCredits(ctx, int32(personID), nil)
	}, tmdb.Parse[tmdb.PersonCredits])
}

func countCache(name string, hit bool) {
	if hit {
		metrics.CacheHits.WithLabelValues(name).Inc()
		return
	}
	metrics.CacheMisses.WithLabelValues(name).Inc()
}

func summary(i tmdb.ListItem) media.Summary {
	return media.Summary{
		ID:         i.ID,
		Title:      i.DisplayTitle(),
		Date:       i.Date(),
		Rating:     i.VoteAverage,
		Overview:   i.Overview,
		GenreIDs:   i.GenreIDs,
		Popularity: i.Popularity,
	}
}

func summaries(items []tmdb.ListItem) []media.Summary {
	out := make([]media.Summary, len(items))
	for i, item := range items {
		out[i] = summary(item)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
