package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Pagination selects one page of a listing. Pages are 1-based.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Metadata describes where the page sits among totalRecords records. An empty
// listing has no first or last page.
func (p Pagination) Metadata(totalRecords int) *Metadata {
	m := &Metadata{
		CurrentPage:  p.Page,
		PageSize:     p.PageSize,
		TotalRecords: totalRecords,
	}

	if totalRecords > 0 {
		m.FirstPage = 1
		m.LastPage = (totalRecords + p.PageSize - 1) / p.PageSize
	}

	return m
}
