// Package pagination turns page/perPage requests into store windows and
// builds the envelope every list endpoint returns.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type Params struct {
	Page    int
	PerPage int
}

// Normalize fills defaults for zero values. Callers validate negatives first.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

type Window struct {
	Skip int
	Take int
}

func Paginate(page, perPage int) Window {
	p := Params{Page: page, PerPage: perPage}.Normalize()
	return Window{Skip: (p.Page - 1) * p.PerPage, Take: p.PerPage}
}

func (p Params) Window() Window {
	return Paginate(p.Page, p.PerPage)
}

// TotalPages never reports zero pages: an empty result is still one page.
func TotalPages(totalRecords, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	pages := (totalRecords + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

type Meta struct {
	Page         int `json:"page"`
	PerPage      int `json:"perPage"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

type Page[T any] struct {
	Items      []T
	Pagination Meta
}

func NewPage[T any](items []T, params Params, totalRecords int) Page[T] {
	params = params.Normalize()
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items: items,
		Pagination: Meta{
			Page:         params.Page,
			PerPage:      params.PerPage,
			TotalRecords: totalRecords,
			TotalPages:   TotalPages(totalRecords, params.PerPage),
		},
	}
}

// Envelope renders the page as {<collection>: [...], pagination: {...}}.
func (p Page[T]) Envelope(collection string) map[string]interface{} {
	return map[string]interface{}{
		collection:   p.Items,
		"pagination": p.Pagination,
	}
}
