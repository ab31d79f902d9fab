package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParams_Validate(t *testing.T) {
	tests := []struct {
		name         string
		in           PageParams
		maxPageSize  int
		wantPage     int
		wantPageSize int
	}{
		{"in range", PageParams{Page: 2, PageSize: 20}, 100, 2, 20},
		{"zero page", PageParams{Page: 0, PageSize: 20}, 100, 1, 20},
		{"negative page", PageParams{Page: -5, PageSize: 20}, 100, 1, 20},
		{"zero page size", PageParams{Page: 1, PageSize: 0}, 100, 1, 1},
		{"negative page size", PageParams{Page: 1, PageSize: -1}, 100, 1, 1},
		{"over max", PageParams{Page: 1, PageSize: 500}, 100, 1, 100},
		{"at max", PageParams{Page: 1, PageSize: 100}, 100, 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Validate(tt.maxPageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestPageParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PageParams{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 10, PageParams{Page: 2, PageSize: 10}.Offset())
	assert.Equal(t, 40, PageParams{Page: 5, PageSize: 10}.Offset())
	assert.Equal(t, 0, PageParams{Page: 0, PageSize: 10}.Offset())
}

func TestDefaultPageParams(t *testing.T) {
	p := DefaultPageParams()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name           string
		page, pageSize int
		total          int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"empty collection", 1, 10, 0, 1, false, false},
		{"exact multiple", 1, 10, 20, 2, true, false},
		{"partial last page", 1, 10, 21, 3, true, false},
		{"single page", 1, 10, 5, 1, false, false},
		{"middle page", 2, 10, 30, 3, true, true},
		{"last page", 3, 10, 30, 3, false, true},
		{"beyond last page", 99, 10, 30, 3, false, true},
		{"fifteen items pages of ten", 2, 10, 15, 2, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeta(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.page, m.Page)
			assert.Equal(t, tt.pageSize, m.PageSize)
			assert.Equal(t, tt.total, m.Total)
			assert.Equal(t, tt.wantTotalPages, m.TotalPages)
			assert.Equal(t, tt.wantHasNext, m.HasNext)
			assert.Equal(t, tt.wantHasPrev, m.HasPrev)
		})
	}
}

func TestMetaFromParams(t *testing.T) {
	m := MetaFromParams(PageParams{Page: 2, PageSize: 5}, 12)
	assert.Equal(t, 2, m.Page)
	assert.Equal(t, 5, m.PageSize)
	assert.Equal(t, 12, m.Total)
	assert.Equal(t, 3, m.TotalPages)
}
