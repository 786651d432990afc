// Package paging turns page/limit and sort/order request parameters into
// query offsets and ordering terms.
package paging

import (
	"math"
	"strconv"
	"strings"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

const (
	// MinSize and MaxSize bound the page size accepted from clients.
	MinSize = 1
	MaxSize = 50

	// FieldPage and FieldLimit name the request parameters in validation errors.
	FieldPage  = "page"
	FieldLimit = "limit"
)

// Page is a validated 1-based page request.
type Page struct {
	Number int
	Size   int
}

// NewPage validates number and size. Out-of-range values are rejected, never clamped.
func NewPage(number, size int) (Page, error) {
	v := apperr.NewValidation()
	sizeOK := size >= MinSize && size <= MaxSize
	if !sizeOK {
		v.Add(FieldLimit, "limit must be between 1 and 50")
	}
	switch {
	case number < 1:
		v.Add(FieldPage, "page must be at least 1")
	case sizeOK && int64(number-1) > math.MaxInt64/int64(size):
		// The offset (number-1)*size must fit in an int64.
		v.Add(FieldPage, "page is out of range")
	}
	if err := v.OrNil(); err != nil {
		return Page{}, err
	}
	return Page{Number: number, Size: size}, nil
}

// Parse reads raw query values. Empty values fall back to page 1 and defaultSize.
func Parse(rawPage, rawSize string, defaultSize int) (Page, error) {
	v := apperr.NewValidation()

	number := 1
	if s := strings.TrimSpace(rawPage); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			v.Add(FieldPage, "page must be an integer")
		}
		number = n
	}

	size := defaultSize
	if s := strings.TrimSpace(rawSize); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			v.Add(FieldLimit, "limit must be an integer")
		}
		size = n
	}

	if err := v.OrNil(); err != nil {
		return Page{}, err
	}
	return NewPage(number, size)
}

// Offset is the number of elements skipped before this page.
func (p Page) Offset() int64 {
	return int64(p.Number-1) * int64(p.Size)
}

// Limit is the maximum number of elements on this page.
func (p Page) Limit() int64 {
	return int64(p.Size)
}

// Pages is ceil(total/size).
func (p Page) Pages(total int64) int64 {
	size := int64(p.Size)
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Meta is the pagination block returned next to a result page.
type Meta struct {
	Count int   `json:"count"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int64 `json:"pages"`
}

// Meta builds the response metadata for count returned elements out of total.
func (p Page) Meta(count int, total int64) Meta {
	return Meta{
		Count: count,
		Total: total,
		Page:  p.Number,
		Pages: p.Pages(total),
	}
}
