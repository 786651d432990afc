package m_property_image

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe operations on the property_images table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut writes an image row. created_at keeps the value of the first write.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	createdAt := interface{}(data.CreatedAt)
	if data.CreatedAt.IsZero() {
		createdAt = spanner.CommitTimestamp
	}
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.PropertyID,
			data.ImageID,
			data.URL,
			data.PublicID,
			data.Caption,
			data.IsPrimary,
			data.Position,
			createdAt,
		},
	)
}

// DeleteMut removes one image of a property.
func (m *Model) DeleteMut(propertyID, imageID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{propertyID, imageID})
}

// PropertyKeyRange addresses every image of a property.
func (m *Model) PropertyKeyRange(propertyID string) spanner.KeySet {
	return spanner.Key{propertyID}.AsPrefix()
}
