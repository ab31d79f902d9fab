// Package pagination implements offset pagination: page-parameter
// sanitization and page-metadata computation.
package pagination

// Defaults applied when the caller supplies no parameters.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// PageParams are caller-supplied paging parameters. Validate is the only
// sanitization point; past that boundary page and page size are safe.
type PageParams struct {
	Page     int
	PageSize int
}

// DefaultPageParams returns page 1 with the default page size.
func DefaultPageParams() PageParams {
	return PageParams{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Validate clamps Page to a minimum of 1 and PageSize into [1, maxPageSize].
func (p PageParams) Validate(maxPageSize int) PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 1
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

// Offset is the number of rows to skip.
func (p PageParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit is the number of rows to take.
func (p PageParams) Limit() int { return p.PageSize }

// Meta is the derived pagination metadata returned alongside a page of items.
// Recomputed per query, never persisted.
type Meta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewMeta computes metadata for the requested page. TotalPages uses ceiling
// division with a floor of 1 when total or pageSize is 0. HasNext and HasPrev
// are computed from the raw requested page, so a page beyond the last is
// reported with HasNext=false rather than clamped.
func NewMeta(page, pageSize, total int) Meta {
	totalPages := 1
	if total > 0 && pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Meta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// MetaFromParams computes metadata from validated params and a total count.
func MetaFromParams(params PageParams, total int) Meta {
	return NewMeta(params.Page, params.PageSize, total)
}
