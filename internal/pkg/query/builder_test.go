package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("properties").
		Select("property_id", "title", "city").
		Build()

	assert.Equal(t, "SELECT property_id, title, city FROM properties", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("properties").Build()

	assert.Equal(t, "SELECT * FROM properties", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("properties").
		Select("property_id").
		Where(Eq("status", "active")).
		Where(Gte("bedrooms", int64(2))).
		Where(Lte("price_amount", 500000.0)).
		Build()

	assert.Equal(t, "SELECT property_id FROM properties WHERE status = @p0 AND bedrooms >= @p1 AND price_amount <= @p2", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "active",
		"p1": int64(2),
		"p2": 500000.0,
	}, stmt.Params)
}

func TestBuilder_OrGroupParamsContinueNumbering(t *testing.T) {
	stmt := From("properties").
		Select("property_id").
		Where(Eq("status", "active")).
		Where(Or(ContainsFold("title", "Sea"), ContainsFold("city", "Sea"))).
		Where(Eq("listing_type", "rent")).
		Build()

	assert.Equal(t, "SELECT property_id FROM properties WHERE status = @p0 AND (LOWER(title) LIKE @p1 OR LOWER(city) LIKE @p2) AND listing_type = @p3", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "active",
		"p1": "%sea%",
		"p2": "%sea%",
		"p3": "rent",
	}, stmt.Params)
}

func TestBuilder_OrderByTermsKeepOrder(t *testing.T) {
	stmt := From("properties").
		Select("property_id").
		OrderBy("featured", Desc).
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t, "SELECT property_id FROM properties ORDER BY featured DESC, created_at DESC", stmt.SQL)
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("properties").
		Select("property_id").
		Limit(12).
		Offset(24).
		Build()

	assert.Equal(t, "SELECT property_id FROM properties LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(12),
		"offset": int64(24),
	}, stmt.Params)
}

func TestBuilder_ZeroOffsetOmitted(t *testing.T) {
	stmt := From("properties").Select("property_id").Limit(12).Offset(0).Build()

	assert.Equal(t, "SELECT property_id FROM properties LIMIT @limit", stmt.SQL)
}

func TestBuilder_Count(t *testing.T) {
	builder := From("properties").
		Select("property_id", "title").
		Where(Eq("status", "active")).
		Where(ContainsFold("city", "delhi")).
		OrderBy("created_at", Desc).
		Limit(12).
		Offset(12)

	countStmt := builder.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM properties WHERE status = @p0 AND LOWER(city) LIKE @p1", countStmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "active",
		"p1": "%delhi%",
	}, countStmt.Params)

	mainStmt := builder.Build()
	assert.Contains(t, mainStmt.SQL, "ORDER BY created_at DESC LIMIT @limit OFFSET @offset")
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("properties").Select("property_id")

	stmt1 := base.Where(Eq("status", "active")).Build()
	stmt2 := base.Where(Eq("city", "Pune")).OrderBy("views", Desc).Build()

	assert.Contains(t, stmt1.SQL, "status = @p0")
	assert.NotContains(t, stmt1.SQL, "city")
	assert.NotContains(t, stmt1.SQL, "ORDER BY")

	assert.Contains(t, stmt2.SQL, "city = @p0")
	assert.NotContains(t, stmt2.SQL, "status")
}

func TestBuilder_NilConditionIgnored(t *testing.T) {
	stmt := From("properties").
		Select("property_id").
		Where(nil).
		Where(Or()).
		Build()

	assert.Equal(t, "SELECT property_id FROM properties", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_WhereAll(t *testing.T) {
	stmt := From("users").
		Select("user_id").
		WhereAll([]Condition{Eq("is_agent", true), Eq("is_active", true)}).
		Build()

	assert.Equal(t, "SELECT user_id FROM users WHERE is_agent = @p0 AND is_active = @p1", stmt.SQL)
}

func TestBuilder_String(t *testing.T) {
	str := From("properties").Select("property_id").Where(Eq("status", "active")).String()

	require.NotEmpty(t, str)
	assert.Contains(t, str, "SQL:")
	assert.Contains(t, str, "Params:")
	assert.Contains(t, str, "properties")
}
