package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of reports shown per page
const DefaultPageSize = 5

// Page is one window of a sorted sequence plus its metadata
type Page[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	TotalItems  int
	PageSize    int
	HasNext     bool
	HasPrev     bool
}

// ValidationError reports a malformed pagination parameter
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be a positive integer", e.Field, e.Value)
}

// TotalPages returns ceil(total/size) using integer arithmetic.
func TotalPages(total, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	pages := total / size
	if total%size > 0 {
		pages++
	}
	return pages
}

// Paginate slices sorted into the requested 1-based page.
//
// A page past the end yields no items and keeps the requested page number.
// A page number below 1 is treated as 1 and a page size below 1 falls back
// to DefaultPageSize. Items shares its backing array with sorted.
func Paginate[T any](sorted []T, pageNumber, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	total := len(sorted)
	pages := TotalPages(total, pageSize)

	// pages <= total, so start cannot overflow once pageNumber is in range.
	items := []T{}
	if pageNumber <= pages {
		start := (pageNumber - 1) * pageSize
		end := min(start+pageSize, total)
		items = sorted[start:end]
	}

	return Page[T]{
		Items:       items,
		CurrentPage: pageNumber,
		TotalPages:  pages,
		TotalItems:  total,
		PageSize:    pageSize,
		HasNext:     pageNumber < pages,
		HasPrev:     pageNumber > 1,
	}
}

// ParsePage converts the raw page query value. An empty value means page 1.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, &ValidationError{Field: "page", Value: raw}
	}
	return page, nil
}
