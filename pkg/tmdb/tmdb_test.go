package tmdb

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kasuboski/mediarec/pkg/http/mocks"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestParseDetails(t *testing.T) {
	t.Run("Test successful response", func(t *testing.T) {
		body := `{
			"id": 1396,
			"name": "Breaking Bad",
			"first_air_date": "2008-01-20",
			"number_of_seasons": 5,
			"genres": [{"id": 18, "name": "Drama"}],
			"credits": {
				"cast": [{"name": "Bryan Cranston"}, {"name": "Aaron Paul"}],
				"crew": [{"name": "Vince Gilligan", "job": "Creator"}, {"name": "Michelle MacLaren", "job": "Director"}]
			},
			"recommendations": {"results": [{"id": 1, "name": "Better Call Saul"}]}
		}`

		d, err := ParseDetails(response(http.StatusOK, body))
		require.NoError(t, err)
		assert.Equal(t, "Breaking Bad", d.DisplayTitle())
		assert.Equal(t, "2008-01-20", d.Date())
		seasons, err := d.NumberOfSeasons.Get()
		require.NoError(t, err)
		assert.Equal(t, 5, seasons)
		assert.Equal(t, []string{"Bryan Cranston"}, d.Credits.TopCast(1))

		director, ok := d.Credits.Director()
		assert.True(t, ok)
		assert.Equal(t, "Michelle MacLaren", director)
		assert.Len(t, d.Recommendations.Results, 1)
		assert.JSONEq(t, body, string(d.Raw))
	})

	t.Run("Test response with status code other than 200", func(t *testing.T) {
		_, err := ParseDetails(response(http.StatusNotFound, `{"status_message": "not found"}`))
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = ParseDetails(response(http.StatusUnauthorized, `{}`))
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("Test empty response body", func(t *testing.T) {
		_, err := ParseDetails(response(http.StatusOK, `{}`))
		assert.Error(t, err)
	})

	t.Run("Test response with invalid JSON", func(t *testing.T) {
		_, err := ParseDetails(response(http.StatusOK, strings.Repeat(`{"key":"value"}`, 10)))
		assert.Error(t, err)
	})

	t.Run("Test nil response", func(t *testing.T) {
		_, err := ParseDetails(response(http.StatusOK, ""))
		assert.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	page, err := Parse[Page](response(http.StatusOK, `{
		"page": 1,
		"results": [
			{"id": 1, "title": "Heat", "release_date": null},
			{"id": 2, "name": "The Wire", "first_air_date": "2002-06-02", "genre_ids": [18, 80]}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, page.Results, 2)

	assert.Equal(t, "", page.Results[0].Date())
	assert.True(t, page.Results[0].ReleaseDate.IsNull())
	assert.Equal(t, "The Wire", page.Results[1].DisplayTitle())
	assert.Equal(t, "2002-06-02", page.Results[1].Date())
	assert.Equal(t, []int{18, 80}, page.Results[1].GenreIDs)

	_, err = Parse[Page](response(http.StatusOK, `[`))
	assert.Error(t, err)

	_, err = Parse[Page](response(http.StatusInternalServerError, ``))
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestCredits(t *testing.T) {
	c := Credits{
		Cast: []CastMember{{Name: "A"}, {Name: "B"}},
		Crew: []CrewMember{{Name: "W", Job: "Writer"}},
	}

	assert.Equal(t, []string{"A", "B"}, c.TopCast(5))
	assert.Empty(t, c.TopCast(0))
	_, ok := c.Director()
	assert.False(t, ok)
}

func TestBreakerDoer(t *testing.T) {
	settings := BreakerSettings{
		MinRequests:  2,
		FailureRatio: 0.5,
		Interval:     time.Minute,
		Timeout:      time.Minute,
	}
	req, err := http.NewRequest(http.MethodGet, "https://example.com/3/movie/1", nil)
	require.NoError(t, err)

	t.Run("passes responses through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockHTTPClient(ctrl)
		next.EXPECT().Do(req).Return(response(http.StatusNotFound, ""), nil)

		b := NewBreakerDoer(next, settings)
		resp, err := b.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "closed", b.State())
	})

	t.Run("opens after failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockHTTPClient(ctrl)
		gomock.InOrder(
			next.EXPECT().Do(req).Return(response(http.StatusBadGateway, ""), nil),
			next.EXPECT().Do(req).Return(nil, errors.New("connection refused")),
		)

		b := NewBreakerDoer(next, settings)

		resp, err := b.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		_, err = b.Do(req)
		assert.ErrorContains(t, err, "connection refused")
		assert.Equal(t, "open", b.State())

		_, err = b.Do(req)
		assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	})
}
