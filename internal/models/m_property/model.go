package m_property

import (
	"fmt"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the properties table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a property.
// Both timestamps are set to the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.PropertyID,
			data.AgentID,
			data.Title,
			data.Description,
			data.PropertyType,
			data.ListingType,
			data.Status,
			data.PriceAmount,
			data.PriceCurrency,
			data.PriceUnit,
			data.Street,
			data.City,
			data.State,
			data.ZipCode,
			data.Country,
			data.Latitude,
			data.Longitude,
			data.Bedrooms,
			data.Bathrooms,
			data.AreaValue,
			data.AreaUnit,
			data.Floors,
			data.Parking,
			data.Furnishing,
			data.YearBuilt,
			data.Amenities,
			data.Views,
			data.Impressions,
			data.Clicks,
			data.Featured,
			data.Verified,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific property fields.
// updated_at is always set.
func (m *Model) UpdateMut(propertyID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, PropertyID)
	values = append(values, propertyID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// TouchMut bumps updated_at without changing any other column.
func (m *Model) TouchMut(propertyID string) *spanner.Mutation {
	return spanner.Update(TableName, []string{PropertyID, UpdatedAt}, []interface{}{propertyID, spanner.CommitTimestamp})
}

// DeleteMut creates a Spanner mutation for deleting a property.
// Images, inquiries and price history cascade.
func (m *Model) DeleteMut(propertyID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{propertyID})
}

// IncrementStmt returns a DML statement that adds one to a counter column.
func (m *Model) IncrementStmt(propertyID, column string) (spanner.Statement, error) {
	switch column {
	case Views, Impressions, Clicks:
	default:
		return spanner.Statement{}, fmt.Errorf("column %s is not a counter", column)
	}
	return spanner.Statement{
		SQL:    fmt.Sprintf("UPDATE %s SET %s = %s + 1 WHERE %s = @id", TableName, column, column, PropertyID),
		Params: map[string]interface{}{"id": propertyID},
	}, nil
}
