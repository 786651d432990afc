package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is the first free parameter number (@p0, @p1, etc.).
	SQL(paramIndex int) (string, map[string]interface{})
}

func paramName(index int) string {
	return fmt.Sprintf("p%d", index)
}

// comparison implements binary comparisons (field op value).
type comparison struct {
	field string
	op    string
	value interface{}
}

// Eq creates an equality condition.
// Example: Eq("status", "active") generates "status = @p0"
func Eq(field string, value interface{}) Condition {
	return &comparison{field: field, op: "=", value: value}
}

// Gte creates a lower-bound condition.
// Example: Gte("bedrooms", 2) generates "bedrooms >= @p0"
func Gte(field string, value interface{}) Condition {
	return &comparison{field: field, op: ">=", value: value}
}

// Lte creates an upper-bound condition.
// Example: Lte("price_amount", max) generates "price_amount <= @p0"
func Lte(field string, value interface{}) Condition {
	return &comparison{field: field, op: "<=", value: value}
}

func (c *comparison) SQL(paramIndex int) (string, map[string]interface{}) {
	name := paramName(paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, name), map[string]interface{}{name: c.value}
}

// containsFold implements case-insensitive substring matching.
type containsFold struct {
	field string
	value string
}

// ContainsFold creates a case-insensitive substring condition.
// Example: ContainsFold("city", "Delhi") generates "LOWER(city) LIKE @p0" with "%delhi%".
// LIKE wildcards in value are escaped and match literally.
func ContainsFold(field, value string) Condition {
	return &containsFold{field: field, value: value}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (c *containsFold) SQL(paramIndex int) (string, map[string]interface{}) {
	name := paramName(paramIndex)
	pattern := "%" + likeEscaper.Replace(strings.ToLower(c.value)) + "%"
	return fmt.Sprintf("LOWER(%s) LIKE @%s", c.field, name), map[string]interface{}{name: pattern}
}

// arrayContains implements membership in an ARRAY column.
type arrayContains struct {
	field string
	value interface{}
}

// ArrayContains creates a condition matching rows whose array column holds value.
// Example: ArrayContains("amenities", "pool") generates "@p0 IN UNNEST(amenities)"
func ArrayContains(field string, value interface{}) Condition {
	return &arrayContains{field: field, value: value}
}

func (c *arrayContains) SQL(paramIndex int) (string, map[string]interface{}) {
	name := paramName(paramIndex)
	return fmt.Sprintf("@%s IN UNNEST(%s)", name, c.field), map[string]interface{}{name: c.value}
}

// orGroup joins its conditions with OR inside parentheses.
type orGroup struct {
	conditions []Condition
}

// Or groups conditions with OR logic. It returns nil when no conditions are
// given; Builder.Where ignores nil conditions.
func Or(conditions ...Condition) Condition {
	kept := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		if c != nil {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return &orGroup{conditions: kept}
}

func (g *orGroup) SQL(paramIndex int) (string, map[string]interface{}) {
	parts := make([]string, 0, len(g.conditions))
	params := make(map[string]interface{})
	for _, c := range g.conditions {
		fragment, condParams := c.SQL(paramIndex)
		parts = append(parts, fragment)
		for k, v := range condParams {
			params[k] = v
		}
		paramIndex += len(condParams)
	}
	return "(" + strings.Join(parts, " OR ") + ")", params
}

// IsNull creates a WHERE condition for NULL checks.
// Example: IsNull("license_number") generates "license_number IS NULL"
func IsNull(field string) Condition {
	return &nullCheck{field: field}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
func IsNotNull(field string) Condition {
	return &nullCheck{field: field, not: true}
}

type nullCheck struct {
	field string
	not   bool
}

func (c *nullCheck) SQL(int) (string, map[string]interface{}) {
	if c.not {
		return c.field + " IS NOT NULL", map[string]interface{}{}
	}
	return c.field + " IS NULL", map[string]interface{}{}
}
