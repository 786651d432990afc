package paging

import (
	"strings"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

const (
	FieldSort  = "sort"
	FieldOrder = "order"
)

// SortSpec is the allow-list of sortable keys for one entity, mapped to the
// column they order by, plus the ordering used when no key is requested.
type SortSpec struct {
	Columns map[string]string
	Default []query.Order
}

// Resolve maps a requested key and direction to ordering terms.
// An empty key yields the default ordering; an unknown key or direction is a validation error.
func (s SortSpec) Resolve(key, direction string) ([]query.Order, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		out := make([]query.Order, len(s.Default))
		copy(out, s.Default)
		return out, nil
	}

	column, ok := s.Columns[key]
	if !ok {
		return nil, apperr.Invalid(FieldSort, "unsupported sort key "+key)
	}

	dir := query.Desc
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "desc":
	case "asc":
		dir = query.Asc
	default:
		return nil, apperr.Invalid(FieldOrder, "order must be asc or desc")
	}

	return []query.Order{{Column: column, Direction: dir}}, nil
}
