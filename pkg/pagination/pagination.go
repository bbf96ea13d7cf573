// Package pagination provides types and utilities for paged list requests
// against APIs that take skip/limit parameters and return no total count.
package pagination

import (
	"net/url"
	"strconv"
)

// PageRequest identifies one page of a list. Page is zero-based.
type PageRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Normalize adjusts the request to ensure valid pagination values based on the config.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size < 1 {
		r.Size = cfg.DefaultPageSize
	}
	if r.Size > cfg.MaxPageSize {
		r.Size = cfg.MaxPageSize
	}
}

// Skip returns the number of records preceding this page.
func (r PageRequest) Skip() int {
	return r.Page * r.Size
}

// Query encodes the request as skip/limit URL parameters.
func (r PageRequest) Query() url.Values {
	v := url.Values{}
	v.Set("skip", strconv.Itoa(r.Skip()))
	v.Set("limit", strconv.Itoa(r.Size))
	return v
}

// EstimateTotal approximates the total record count from one page of results.
// The API does not report a true total, so this is a lower bound: the records
// skipped so far plus the records received. When a full page came back the
// server may hold more records than this estimate.
func EstimateTotal(r PageRequest, received int) int {
	if received == 0 && r.Page == 0 {
		return 0
	}
	return r.Skip() + received
}

// LastPage reports whether a page of the given length can be the final page.
func LastPage(r PageRequest, received int) bool {
	return received < r.Size
}
