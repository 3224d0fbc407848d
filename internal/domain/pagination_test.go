package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "valid page", raw: "3", want: 3},
		{name: "page one", raw: "1", want: 1},
		{name: "empty", raw: "", want: 1},
		{name: "non-numeric", raw: "abc", want: 1},
		{name: "fractional", raw: "2.5", want: 1},
		{name: "zero", raw: "0", want: 1},
		{name: "negative", raw: "-3", want: 1},
		{name: "large", raw: "1000", want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePage(tt.raw))
		})
	}
}

func TestPaginationParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, PageSize: 50}.Offset())
	assert.Equal(t, 50, PaginationParams{Page: 2, PageSize: 50}.Offset())
	assert.Equal(t, 0, PaginationParams{Page: 0, PageSize: 50}.Offset())
	assert.Equal(t, 0, PaginationParams{Page: -1, PageSize: 50}.Offset())
}

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		total    int
		pageSize int
		returned int
		want     PageInfo
	}{
		{
			name: "first of several pages",
			page: 1, total: 120, pageSize: 50, returned: 50,
			want: PageInfo{Page: 1, Total: 120, TotalPages: 3, First: true, Last: false, HasPrev: false, HasNext: true},
		},
		{
			name: "middle page",
			page: 2, total: 120, pageSize: 50, returned: 50,
			want: PageInfo{Page: 2, Total: 120, TotalPages: 3, First: false, Last: false, HasPrev: true, HasNext: true},
		},
		{
			name: "under-full last page",
			page: 3, total: 120, pageSize: 50, returned: 20,
			want: PageInfo{Page: 3, Total: 120, TotalPages: 3, First: false, Last: true, HasPrev: true, HasNext: false},
		},
		{
			name: "empty result set",
			page: 1, total: 0, pageSize: 50, returned: 0,
			want: PageInfo{Page: 1, Total: 0, TotalPages: 0, First: true, Last: true, HasPrev: false, HasNext: false},
		},
		{
			// The heuristic is by returned row count, not page math: a
			// full final page still reports HasNext.
			name: "exactly exhausted total still signals next",
			page: 2, total: 100, pageSize: 50, returned: 50,
			want: PageInfo{Page: 2, Total: 100, TotalPages: 2, First: false, Last: false, HasPrev: true, HasNext: true},
		},
		{
			name: "single partial page",
			page: 1, total: 7, pageSize: 50, returned: 7,
			want: PageInfo{Page: 1, Total: 7, TotalPages: 1, First: true, Last: true, HasPrev: false, HasNext: false},
		},
		{
			name: "total exactly one page",
			page: 1, total: 50, pageSize: 50, returned: 50,
			want: PageInfo{Page: 1, Total: 50, TotalPages: 1, First: true, Last: false, HasPrev: false, HasNext: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPageInfo(tt.page, tt.total, tt.pageSize, tt.returned)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPageInfo_totalPagesIsCeil(t *testing.T) {
	for total := 0; total <= 210; total += 7 {
		got := NewPageInfo(1, total, 50, 0).TotalPages
		want := (total + 49) / 50
		assert.Equal(t, want, got, "total=%d", total)
		if total == 0 {
			assert.Zero(t, got)
		} else {
			assert.Positive(t, got)
		}
	}
}

func TestPageInfo_WithLinks(t *testing.T) {
	p := NewPageInfo(2, 120, 50, 50).WithLinks("/events")
	assert.Equal(t, "/events/?page=1", p.PrevURL)
	assert.Equal(t, "/events/?page=3", p.NextURL)

	// Links are not range-checked: page 1 still gets a page-0 prev link.
	p = NewPageInfo(1, 10, 50, 10).WithLinks("/admin/signups")
	assert.Equal(t, "/admin/signups/?page=0", p.PrevURL)
	assert.Equal(t, "/admin/signups/?page=2", p.NextURL)
}
