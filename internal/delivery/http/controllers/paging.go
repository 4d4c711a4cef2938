package controllers

import (
	h "gdhealth/internal/delivery/http/helpers"
	"gdhealth/internal/domain"
)

// PageMeta is the paging block of list responses: the computed window plus a
// ready-to-render page bar.
// swagger:model PageMeta
type PageMeta struct {
	domain.PaginationResult
	Total int       `json:"total"`
	Nav   h.PageNav `json:"nav"`
}

func newPageMeta(p domain.PaginationResult, total int) PageMeta {
	return PageMeta{
		PaginationResult: p,
		Total:            total,
		Nav:              h.NewPageNav(p.PageNumbers(), p.CurrentPageNumber, p.PrevWindowPage(), p.NextWindowPage()),
	}
}
