package pagination

import (
	"github.com/go-playground/validator/v10"

	"github.com/akovalyov/authcore/internal/common/constants"
)

var validate = validator.New()

// Params are page-number style query parameters. Zero values are
// replaced with defaults by NewParams; Validate enforces the bounds.
type Params struct {
	Page     int `json:"page" validate:"gte=1"`
	PageSize int `json:"page_size" validate:"gte=1,lte=100"`
}

func NewParams(page, pageSize int) Params {
	if page <= 0 {
		page = constants.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

func (p Params) Validate() error {
	return validate.Struct(p)
}

// Offset is the number of items to skip for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Params) Limit() int {
	return p.PageSize
}

// Page is one page of results plus the totals needed to render
// pagination controls.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Pages    int `json:"pages"`
}

func NewPage[T any](items []T, total int, params Params) Page[T] {
	pages := 0
	if total > 0 {
		pages = (total + params.PageSize - 1) / params.PageSize
	}
	return Page[T]{
		Items:    items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		Pages:    pages,
	}
}
