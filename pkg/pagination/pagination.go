package pagination

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params selects one page of a list. Pages start at 1.
type Params struct {
	Page     int
	PageSize int
}

// Bounds returns the half open range of a page within total items
func (p Params) Bounds(total int) (start, end int) {
	size := p.size()
	start = min(max(p.Page-1, 0)*size, total)
	end = min(start+size, total)
	return start, end
}

func (p Params) size() int {
	switch {
	case p.PageSize <= 0:
		return DefaultPageSize
	case p.PageSize > MaxPageSize:
		return MaxPageSize
	}
	return p.PageSize
}

func (p Params) BuildMeta(totalItems int) Meta {
	size := p.size()
	return Meta{
		Page:       max(p.Page, 1),
		PageSize:   size,
		TotalItems: totalItems,
		TotalPages: (totalItems + size - 1) / size,
	}
}

// Slice cuts the page out of items
func Slice[T any](items []T, p Params) ([]T, Meta) {
	start, end := p.Bounds(len(items))
	return items[start:end], p.BuildMeta(len(items))
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
