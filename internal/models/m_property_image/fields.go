package m_property_image

const (
	TableName = "property_images"

	PropertyID = "property_id"
	ImageID    = "image_id"
	URL        = "url"
	PublicID   = "public_id"
	Caption    = "caption"
	IsPrimary  = "is_primary"
	Position   = "position"
	CreatedAt  = "created_at"
)

var Columns = []string{PropertyID, ImageID, URL, PublicID, Caption, IsPrimary, Position, CreatedAt}
