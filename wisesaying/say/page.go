package say

import "math"

// DefaultPageSize is the number of sayings shown per page when no explicit size is given.
const DefaultPageSize = 5

// Pageable describes which slice of a result set to fetch. Page numbers start at 1.
type Pageable struct {
	PageNo   int
	PageSize int
}

// NewPageable normalizes the given page number and size: pages below 1 become 1 and sizes below 1 become DefaultPageSize.
func NewPageable(pageNo, pageSize int) Pageable {
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return Pageable{
		PageNo:   pageNo,
		PageSize: pageSize,
	}
}

// Offset is the number of records that precede this page. It saturates at math.MaxInt for page numbers too large to
// address.
func (p Pageable) Offset() int {
	if p.PageNo <= 1 || p.PageSize < 1 {
		return 0
	}
	if p.PageNo-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.PageNo - 1) * p.PageSize
}

// Page is one slice of a (possibly filtered) listing along with the information needed to render a pager.
type Page struct {
	Content    []Say `json:"content"`
	PageNo     int   `json:"pageNo"`
	PageSize   int   `json:"pageSize"`
	TotalCount int   `json:"totalCount"`
}

// TotalPages is the number of pages needed to show all TotalCount records (0 when there are none).
func (p Page) TotalPages() int {
	if p.TotalCount == 0 || p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// Slice cuts the page described by the pageable out of a full, already ordered and filtered, result set.
func Slice(all []Say, pageable Pageable) *Page {
	total := len(all)
	from := min(pageable.Offset(), total)
	if from < 0 {
		from = 0
	}
	to := from + min(pageable.PageSize, total-from)
	if to < from {
		to = from
	}

	content := make([]Say, to-from)
	copy(content, all[from:to])

	return &Page{
		Content:    content,
		PageNo:     pageable.PageNo,
		PageSize:   pageable.PageSize,
		TotalCount: total,
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
