package ports

// PageRequest carries pagination and sorting parameters for list queries.
// Page is 0-based. SortBy is a domain field name validated by the service
// before it reaches the repository.
type PageRequest struct {
	Page   int
	Size   int
	SortBy string
	Desc   bool
}

// Offset returns the number of rows to skip for this page.
func (p PageRequest) Offset() int64 {
	return int64(p.Page) * int64(p.Size)
}

// TotalPages computes the page count for a given total item count.
func (p PageRequest) TotalPages(total int64) int {
	if p.Size <= 0 {
		return 0
	}
	pages := int(total / int64(p.Size))
	if total%int64(p.Size) != 0 {
		pages++
	}
	return pages
}
