package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kasuboski/mediarec/pkg/pagination"
)

// ParsePaginationParams reads page and pageSize from the query string
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{
		Page:     1,
		PageSize: pagination.DefaultPageSize,
	}

	qp := r.URL.Query()

	if pageStr := qp.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page parameter: must be positive integer")
		}
		params.Page = page
	}

	if pageSizeStr := qp.Get("pageSize"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil || pageSize < 1 || pageSize > pagination.MaxPageSize {
			return params, fmt.Errorf("invalid pageSize parameter: must be between 1 and %d", pagination.MaxPageSize)
		}
		params.PageSize = pageSize
	}

	return params, nil
}
