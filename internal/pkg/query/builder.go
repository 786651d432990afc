package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// Order is one ORDER BY term.
type Order struct {
	Column    string
	Direction Direction
}

// Builder constructs SQL SELECT queries for Cloud Spanner.
// Every method returns a new Builder, so a base query can be shared and
// specialised. Parameter names are generated at Build time.
type Builder struct {
	table        string
	selectCols   []string
	whereClauses []Condition
	orders       []Order
	limitVal     int64
	offsetVal    int64
}

// From creates a new Builder for the specified table.
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectCols:   []string{},
		whereClauses: []Condition{},
		orders:       []Order{},
	}
}

// Select specifies the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Where adds a WHERE condition. Multiple calls are combined with AND logic.
// Nil conditions are ignored.
func (b *Builder) Where(condition Condition) *Builder {
	if condition == nil {
		return b
	}
	nb := b.clone()
	nb.whereClauses = append(nb.whereClauses, condition)
	return nb
}

// WhereAll adds every condition, see Where.
func (b *Builder) WhereAll(conditions []Condition) *Builder {
	nb := b
	for _, c := range conditions {
		nb = nb.Where(c)
	}
	return nb
}

// OrderBy appends an ordering term. Earlier terms take precedence.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.orders = append(nb.orders, Order{Column: column, Direction: direction})
	return nb
}

// OrderByTerms appends several ordering terms.
func (b *Builder) OrderByTerms(orders []Order) *Builder {
	nb := b.clone()
	nb.orders = append(nb.orders, orders...)
	return nb
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.offsetVal = offset
	return nb
}

// Count returns a builder for COUNT(*) over the same FROM and WHERE clauses.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []string{"COUNT(*)"}
	nb.limitVal = 0
	nb.offsetVal = 0
	nb.orders = []Order{}
	return nb
}

// Build constructs the final spanner.Statement with SQL and parameters.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		paramIndex := 0
		for _, condition := range b.whereClauses {
			fragment, condParams := condition.SQL(paramIndex)
			whereParts = append(whereParts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	if len(b.orders) > 0 {
		sql.WriteString(" ORDER BY ")
		terms := make([]string, 0, len(b.orders))
		for _, o := range b.orders {
			terms = append(terms, o.Column+" "+o.Direction.String())
		}
		sql.WriteString(strings.Join(terms, ", "))
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	if b.offsetVal > 0 {
		sql.WriteString(" OFFSET @offset")
		params["offset"] = b.offsetVal
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:        b.table,
		selectCols:   make([]string, len(b.selectCols)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		orders:       make([]Order, len(b.orders)),
		limitVal:     b.limitVal,
		offsetVal:    b.offsetVal,
	}
	copy(nb.selectCols, b.selectCols)
	copy(nb.whereClauses, b.whereClauses)
	copy(nb.orders, b.orders)
	return nb
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
