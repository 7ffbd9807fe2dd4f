package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// RequestEditorFn is the function signature for the RequestEditor callback function
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// HttpRequestDoer performs HTTP requests.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the catalog's v3 api
type Client struct {
	// The endpoint of the server conforming to this interface, with scheme,
	// https://api.deepmap.com for example. This can contain a path relative
	// to the server, such as https://api.deepmap.com/dev-test, and all the
	// paths will be relative to this url.
	Server string

	// Doer for performing requests, typically a *http.Client with any
	// customized settings, such as certificate chains.
	Client HttpRequestDoer

	// A list of callbacks for modifying requests which are generated before sending over
	// the network.
	RequestEditors []RequestEditorFn
}

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

// NewClient creates a new Client, with reasonable defaults
func NewClient(server string, opts ...ClientOption) (*Client, error) {
	client := Client{
		Server: server,
	}
	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}
	if !strings.HasSuffix(client.Server, "/") {
		client.Server += "/"
	}
	if client.Client == nil {
		client.Client = &http.Client{}
	}
	return &client, nil
}

// WithHTTPClient allows overriding the default Doer
func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.Client = doer
		return nil
	}
}

// WithRequestEditorFn allows setting up a callback function, which will be
// called right before sending the request
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

// ClientInterface is the catalog operations used by the recommender
type ClientInterface interface {
	SearchMovie(ctx context.Context, params *SearchMovieParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	SearchTv(ctx context.Context, params *SearchTvParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	MovieDetails(ctx context.Context, movieID int32, params *DetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	TvSeriesDetails(ctx context.Context, seriesID int32, params *DetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	DiscoverMovie(ctx context.Context, params *DiscoverParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	DiscoverTv(ctx context.Context, params *DiscoverParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	MoviePopularList(ctx context.Context, params *PopularListParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	TvSeriesPopularList(ctx context.Context, params *PopularListParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	GenreMovieList(ctx context.Context, params *GenreListParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	GenreTvList(ctx context.Context, params *GenreListParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	SearchPerson(ctx context.Context, params *SearchPersonParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	PersonMovieCredits(ctx context.Context, personID int32, params *PersonMovieCreditsParams, reqEditors ...RequestEditorFn) (*http.Response, error)
}

var _ ClientInterface = (*Client)(nil)

type SearchMovieParams struct {
	Query        string  `form:"query" json:"query"`
	IncludeAdult *bool   `form:"include_adult,omitempty" json:"include_adult,omitempty"`
	Language     *string `form:"language,omitempty" json:"language,omitempty"`
	Page         *int32  `form:"page,omitempty" json:"page,omitempty"`
	Year         *string `form:"year,omitempty" json:"year,omitempty"`
}

type SearchTvParams struct {
	Query            string  `form:"query" json:"query"`
	FirstAirDateYear *int32  `form:"first_air_date_year,omitempty" json:"first_air_date_year,omitempty"`
	IncludeAdult     *bool   `form:"include_adult,omitempty" json:"include_adult,omitempty"`
	Language         *string `form:"language,omitempty" json:"language,omitempty"`
	Page             *int32  `form:"page,omitempty" json:"page,omitempty"`
}

type DetailsParams struct {
	// AppendToResponse is a comma separated list of extra sections, like credits,recommendations
	AppendToResponse *string `form:"append_to_response,omitempty" json:"append_to_response,omitempty"`
	Language         *string `form:"language,omitempty" json:"language,omitempty"`
}

type DiscoverParams struct {
	// WithGenres is a comma (AND) or pipe (OR) separated list of genre ids
	WithGenres *string `form:"with_genres,omitempty" json:"with_genres,omitempty"`
	SortBy     *string `form:"sort_by,omitempty" json:"sort_by,omitempty"`
	Language   *string `form:"language,omitempty" json:"language,omitempty"`
	Page       *int32  `form:"page,omitempty" json:"page,omitempty"`
}

type PopularListParams struct {
	Language *string `form:"language,omitempty" json:"language,omitempty"`
	Page     *int32  `form:"page,omitempty" json:"page,omitempty"`
}

type GenreListParams struct {
	Language *string `form:"language,omitempty" json:"language,omitempty"`
}

type SearchPersonParams struct {
	Query        string  `form:"query" json:"query"`
	IncludeAdult *bool   `form:"include_adult,omitempty" json:"include_adult,omitempty"`
	Language     *string `form:"language,omitempty" json:"language,omitempty"`
	Page         *int32  `form:"page,omitempty" json:"page,omitempty"`
}

type PersonMovieCreditsParams struct {
	Language *string `form:"language,omitempty" json:"language,omitempty"`
}

// queryParam is one optional query string parameter
type queryParam struct {
	name     string
	value    any
	required bool
}

// deref unwraps optional parameters, reporting false for unset ones
func deref(v any) (any, bool) {
	switch p := v.(type) {
	case nil:
		return nil, false
	case *string:
		if p == nil {
			return nil, false
		}
		return *p, true
	case *int32:
		if p == nil {
			return nil, false
		}
		return *p, true
	case *bool:
		if p == nil {
			return nil, false
		}
		return *p, true
	}
	return v, true
}

// newGetRequest builds a GET request for operationPath. Path parameters are
// substituted in order for each %s in the path.
func newGetRequest(server string, operationPath string, pathParams []any, query []queryParam) (*http.Request, error) {
	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	styled := make([]any, len(pathParams))
	for i, p := range pathParams {
		v, err := runtime.StyleParamWithLocation("simple", false, fmt.Sprintf("param%d", i), runtime.ParamLocationPath, p)
		if err != nil {
			return nil, err
		}
		styled[i] = v
	}
	operationPath = fmt.Sprintf(operationPath, styled...)
	operationPath = strings.TrimPrefix(operationPath, "/")

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	queryValues := queryURL.Query()
	for _, q := range query {
		value, ok := deref(q.value)
		if !ok && !q.required {
			continue
		}

		queryFrag, err := runtime.StyleParamWithLocation("form", true, q.name, runtime.ParamLocationQuery, value)
		if err != nil {
			return nil, err
		}
		parsed, err := url.ParseQuery(queryFrag)
		if err != nil {
			return nil, err
		}
		for k, v := range parsed {
			for _, v2 := range v {
				queryValues.Add(k, v2)
			}
		}
	}
	queryURL.RawQuery = queryValues.Encode()

	return http.NewRequest(http.MethodGet, queryURL.String(), nil)
}

func (c *Client) applyEditors(ctx context.Context, req *http.Request, additionalEditors []RequestEditorFn) error {
	for _, r := range c.RequestEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	for _, r := range additionalEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, operationPath string, pathParams []any, query []queryParam, reqEditors []RequestEditorFn) (*http.Response, error) {
	req, err := newGetRequest(c.Server, operationPath, pathParams, query)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) SearchMovie(ctx context.Context, params *SearchMovieParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	if params == nil {
		params = &SearchMovieParams{}
	}
	return c.get(ctx, "/3/search/movie", nil, []queryParam{
		{name: "query", value: params.Query, required: true},
		{name: "include_adult", value: params.IncludeAdult},
		{name: "language", value: params.Language},
		{name: "page", value: params.Page},
		{name: "year", value: params.Year},
	}, reqEditors)
}

func (c *Client) SearchTv(ctx context.Context, params *SearchTvParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	if params == nil {
		params = &SearchTvParams{}
	}
	return c.get(ctx, "/3/search/tv", nil, []queryParam{
		{name: "query", value: params.Query, required: true},
		{name: "first_air_date_year", value: params.FirstAirDateYear},
		{name: "include_adult", value: params.IncludeAdult},
		{name: "language", value: params.Language},
		{name: "page", value: params.Page},
	}, reqEditors)
}

func detailsQuery(params *DetailsParams) []queryParam {
	if params == nil {
		return nil
	}
	return []queryParam{
		{name: "append_to_response", value: params.AppendToResponse},
		{name: "language", value: params.Language},
	}
}

func (c *Client) MovieDetails(ctx context.Context, movieID int32, params *DetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	return c.get(ctx, "/3/movie/%s", []any{movieID}, detailsQuery(params), reqEditors)
}

func (c *Client) TvSeriesDetails(ctx context.Context, seriesID int32, params *DetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	return c.get(ctx, "/3/tv/%s", []any{seriesID}, detailsQuery(params), reqEditors)
}

func discoverQuery(params *DiscoverParams) []queryParam {
	if params == nil {
		return nil
	}
	return []queryParam{
		{name: "with_genres", value: params.WithGenres},
		{name: "sort_by", value: params.SortBy},
		{name: "language", value: params.Language},
		{name: "page", value: params.Page},
	}
}

func (c *Client) DiscoverMovie(ctx context.Context, params *DiscoverParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	return c.get(ctx, "/3/discover/movie", nil, discoverQuery(params), reqEditors)
}

func (c *Client) DiscoverTv(ctx context.Context, params *DiscoverParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	return c.get(ctx, "/3/discover/tv", nil, discoverQuery(params), reqEditors)
}

func popularQuery(params *PopularListParams) []queryParam {
	if params == nil {
		return nil
	}
	return []queryParam{
		{name: "language", value: params.Language},
		{name: "page", value: params.Page},
	}
}

func (c *Client) MoviePopularList(ctx context.Context, params *PopularListParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	return c.get(ctx, "/3/movie/popular", nil, popularQuery(params), reqEditors)
}

func (c *Client) TvSeriesPopularList(ctx context.Context, params *PopularListParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	return c.get(ctx, "/3/tv/popular", nil, popularQuery(params), reqEditors)
}

func genreQuery(params *GenreListParams) []queryParam {
	if params == nil {
		return nil
	}
	return []queryParam{{name: "language", value: params.Language}}
}

func (c *Client) GenreMovieList(ctx context.Context, params *GenreListParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	return c.get(ctx, "/3/genre/movie/list", nil, genreQuery(params), reqEditors)
}

func (c *Client) GenreTvList(ctx context.Context, params *GenreListParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	return c.get(ctx, "/3/genre/tv/list", nil, genreQuery(params), reqEditors)
}

func (c *Client) SearchPerson(ctx context.Context, params *SearchPersonParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	if params == nil {
		params = &SearchPersonParams{}
	}
	return c.get(ctx, "/3/search/person", nil, []queryParam{
		{name: "query", value: params.Query, required: true},
		{name: "include_adult", value: params.IncludeAdult},
		{name: "language", value: params.Language},
		{name: "page", value: params.Page},
	}, reqEditors)
}

func (c *Client) PersonMovieCredits(ctx context.Context, personID int32, params *PersonMovieCreditsParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	var query []queryParam
	if params != nil {
		query = []queryParam{{name: "language", value: params.Language}}
	}
	return c.get(ctx, "/3/person/%s/movie_credits", []any{personID}, query, reqEditors)
}
