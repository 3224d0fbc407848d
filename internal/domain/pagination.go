package domain

import (
	"fmt"
	"strconv"
)

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// PageInfo is the transient page metadata recomputed on every request.
// swagger:model PageInfo
type PageInfo struct {
	Page       int    `json:"page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	First      bool   `json:"first"`
	Last       bool   `json:"last"`
	HasPrev    bool   `json:"has_prev"`
	HasNext    bool   `json:"has_next"`
	PrevURL    string `json:"prev_url,omitempty"`
	NextURL    string `json:"next_url,omitempty"`
}

// NewPageInfo builds PageInfo from the current page, the total row count,
// the page size, and the number of rows actually returned for this page.
//
// Last and HasNext are derived from the returned row count, not from a
// page-number comparison: a page is "last" when it came back under-full.
// A page that exactly exhausts the total therefore still reports HasNext,
// and the next link points one page past the end. Callers that cannot
// tolerate that may compare Page against TotalPages instead.
func NewPageInfo(page, total, pageSize, returned int) PageInfo {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PageInfo{
		Page:       page,
		Total:      total,
		TotalPages: totalPages,
		First:      page == 1,
		Last:       returned < pageSize,
		HasPrev:    page > 1,
		HasNext:    returned == pageSize,
	}
}

// WithLinks returns a copy of p with prev/next links templated on baseURL.
// The links are parameterized by page +/- 1 and are not range-checked
// against TotalPages.
func (p PageInfo) WithLinks(baseURL string) PageInfo {
	p.PrevURL = fmt.Sprintf("%s/?page=%d", baseURL, p.Page-1)
	p.NextURL = fmt.Sprintf("%s/?page=%d", baseURL, p.Page+1)
	return p
}

// NormalizePage coerces a raw page query value to a valid page number.
// Non-integer, fractional, or sub-1 input yields 1.
func NormalizePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
