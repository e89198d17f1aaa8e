package model

import "strings"

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 50
	// MaxPageNumber keeps Offset far from int overflow.
	MaxPageNumber     = 1_000_000
)

// PageParams are the paging, sorting and search parameters of a list query.
// OrderBy is a comma separated list of "field" or "field desc".
type PageParams struct {
	PageNumber int
	PageSize   int
	OrderBy    string
	SearchTerm string
}

func (p PageParams) Normalize() PageParams {
	if p.PageNumber < 1 {
		p.PageNumber = DefaultPageNumber
	}
	if p.PageNumber > MaxPageNumber {
		p.PageNumber = MaxPageNumber
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	p.OrderBy = strings.TrimSpace(p.OrderBy)
	p.SearchTerm = strings.ToLower(strings.TrimSpace(p.SearchTerm))
	return p
}

func (p PageParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

type PageMeta struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
	TotalPages  int `json:"totalPages"`
}

func (m PageMeta) HasPrevious() bool {
	return m.CurrentPage > 1
}

func (m PageMeta) HasNext() bool {
	return m.CurrentPage < m.TotalPages
}

type Page[T any] struct {
	Items []T
	Meta  PageMeta
}

// NewPage expects params already normalized.
func NewPage[T any](items []T, totalCount int, params PageParams) *Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (totalCount + params.PageSize - 1) / params.PageSize
	}
	return &Page[T]{
		Items: items,
		Meta: PageMeta{
			CurrentPage: params.PageNumber,
			PageSize:    params.PageSize,
			TotalCount:  totalCount,
			TotalPages:  totalPages,
		},
	}
}

// Pagination and Payload let the HTTP layer split a page into header metadata and body.
func (p *Page[T]) Pagination() PageMeta {
	return p.Meta
}

func (p *Page[T]) Payload() any {
	return p.Items
}
