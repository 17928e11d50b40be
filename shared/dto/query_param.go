package dto

import (
	"hotel/shared/constant"
	"net/http"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries the requested ordering of a listing. SortBy is only a
// request: repositories accept it when it names one of their own columns.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the sort_by and sort_dir query
// parameters, keeping the current values for anything missing or invalid.
//
//	q := dto.QueryParams{SortBy: "check_in_date", SortDir: dto.SortDirDesc}
//	q.FromRequest(req)
func (q *QueryParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	if sortBy := strings.TrimSpace(queryParams.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = strings.ToLower(sortBy)
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}
}
