package shared

// PageRequest is a zero-based page specification. Page 0 with size 10 covers
// the first ten rows.
type PageRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Offset returns the row offset for SQL queries.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Limit returns the row limit for SQL queries.
func (p PageRequest) Limit() int {
	return p.Size
}

// PageMeta describes one page of a larger result set. It echoes the requested
// page number and size together with the total match count, regardless of how
// many rows the page itself holds.
type PageMeta struct {
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"total_elements"`
}

// NewPageMeta builds the metadata for a page request and a total count.
func NewPageMeta(req PageRequest, total int) PageMeta {
	return PageMeta{
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
	}
}
