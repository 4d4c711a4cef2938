package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// DefaultPage is used when the page query parameter is missing or not a number.
const DefaultPage = 1

// ParsePage reads the page query parameter. It never rejects a request:
// missing or non-numeric values become DefaultPage, and out-of-range numbers
// are passed through for the pager to clamp.
func ParsePage(r *http.Request) int {
	s := strings.TrimSpace(r.URL.Query().Get("page"))
	if s == "" {
		return DefaultPage
	}
	page, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		// Atoi saturates at the int bounds; the pager clamps from there.
		return page
	}
	if err != nil {
		return DefaultPage
	}
	return page
}

// PageLink is one entry of the page-number bar.
// swagger:model PageLink
type PageLink struct {
	Page    int  `json:"page"`
	Current bool `json:"current"`
}

// PageNav is the navigation block returned with paged lists.
// swagger:model PageNav
type PageNav struct {
	Pages    []PageLink `json:"pages"`
	PrevPage int        `json:"prev_page,omitempty"`
	NextPage int        `json:"next_page,omitempty"`
}

// NewPageNav builds the page-number bar from the visible window.
func NewPageNav(pages []int, current, prev, next int) PageNav {
	links := make([]PageLink, len(pages))
	for i, p := range pages {
		links[i] = PageLink{Page: p, Current: p == current}
	}
	return PageNav{Pages: links, PrevPage: prev, NextPage: next}
}

// PathID parses the positive integer path value name.
func PathID(r *http.Request, name string) (int64, error) {
	s := r.PathValue(name)
	if s == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
