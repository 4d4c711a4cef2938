package domain

import (
	"errors"
	"fmt"
)

// Default paging configuration used by list views.
const (
	DefaultRowsPerPage          = 8
	DefaultPageNumbersPerWindow = 10
)

// ErrInvalidPagingConfig is returned when rows per page or page numbers per window is not positive.
var ErrInvalidPagingConfig = errors.New("invalid paging config")

// PagingConfig is the fixed configuration of a list view.
type PagingConfig struct {
	RowsPerPage          int
	PageNumbersPerWindow int
}

// Validate reports a configuration error. It never clamps.
func (c PagingConfig) Validate() error {
	if c.RowsPerPage <= 0 {
		return fmt.Errorf("%w: rows per page must be positive, got %d", ErrInvalidPagingConfig, c.RowsPerPage)
	}
	if c.PageNumbersPerWindow <= 0 {
		return fmt.Errorf("%w: page numbers per window must be positive, got %d", ErrInvalidPagingConfig, c.PageNumbersPerWindow)
	}
	return nil
}

// PaginationRequest holds everything needed to compute one page of a list.
// RequestedPage is 1-based and may be out of range.
type PaginationRequest struct {
	RequestedPage        int
	TotalRowCount        int
	RowsPerPage          int
	PageNumbersPerWindow int
}

// PaginationResult is the row window to fetch plus the page-number window to render.
// swagger:model PaginationResult
type PaginationResult struct {
	BeginRow          int  `json:"begin_row"`
	RowsPerPage       int  `json:"rows_per_page"`
	LastPageNumber    int  `json:"last_page_number"`
	CurrentPageNumber int  `json:"current_page_number"`
	StartPageNumber   int  `json:"start_page_number"`
	EndPageNumber     int  `json:"end_page_number"`
	HasPrevWindow     bool `json:"has_prev_window"`
	HasNextWindow     bool `json:"has_next_window"`
}

// ComputePagination derives a PaginationResult from req. Out-of-range pages and
// row counts are clamped; only a non-positive rows/window configuration is an error.
func ComputePagination(req PaginationRequest) (PaginationResult, error) {
	cfg := PagingConfig{RowsPerPage: req.RowsPerPage, PageNumbersPerWindow: req.PageNumbersPerWindow}
	if err := cfg.Validate(); err != nil {
		return PaginationResult{}, err
	}
	return compute(req), nil
}

func compute(req PaginationRequest) PaginationResult {
	total := max(req.TotalRowCount, 0)
	rows := req.RowsPerPage
	window := req.PageNumbersPerWindow

	lastPage := total / rows
	if total%rows != 0 {
		lastPage++
	}
	lastPage = max(lastPage, 1)
	current := min(max(req.RequestedPage, 1), lastPage)

	start := (current-1)/window*window + 1
	end := start + min(window-1, lastPage-start)

	return PaginationResult{
		BeginRow:          (current - 1) * rows,
		RowsPerPage:       rows,
		LastPageNumber:    lastPage,
		CurrentPageNumber: current,
		StartPageNumber:   start,
		EndPageNumber:     end,
		HasPrevWindow:     start > 1,
		HasNextWindow:     end < lastPage,
	}
}

// PageNumbers returns the page numbers of the visible window in order.
func (r PaginationResult) PageNumbers() []int {
	if r.EndPageNumber < r.StartPageNumber {
		return []int{}
	}
	pages := make([]int, 0, r.EndPageNumber-r.StartPageNumber+1)
	for p := r.StartPageNumber; p <= r.EndPageNumber; p++ {
		pages = append(pages, p)
	}
	return pages
}

// PrevWindowPage is the page a "previous" link points to, or 0 when there is none.
func (r PaginationResult) PrevWindowPage() int {
	if !r.HasPrevWindow {
		return 0
	}
	return r.StartPageNumber - 1
}

// NextWindowPage is the page a "next" link points to, or 0 when there is none.
func (r PaginationResult) NextWindowPage() int {
	if !r.HasNextWindow {
		return 0
	}
	return r.EndPageNumber + 1
}

// Pager computes pagination for a validated PagingConfig. It holds no mutable
// state and is safe for concurrent use.
type Pager struct {
	cfg PagingConfig
}

// NewPager validates cfg and returns a Pager. A configuration error here is
// meant to stop startup.
func NewPager(cfg PagingConfig) (*Pager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pager{cfg: cfg}, nil
}

// Compute returns the pagination for requestedPage over totalRowCount rows.
func (p *Pager) Compute(requestedPage, totalRowCount int) PaginationResult {
	return compute(PaginationRequest{
		RequestedPage:        requestedPage,
		TotalRowCount:        totalRowCount,
		RowsPerPage:          p.cfg.RowsPerPage,
		PageNumbersPerWindow: p.cfg.PageNumbersPerWindow,
	})
}
