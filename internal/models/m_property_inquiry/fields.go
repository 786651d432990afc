package m_property_inquiry

const (
	TableName = "property_inquiries"

	PropertyID = "property_id"
	InquiryID  = "inquiry_id"
	UserID     = "user_id"
	Name       = "name"
	Email      = "email"
	Phone      = "phone"
	Message    = "message"
	CreatedAt  = "created_at"
)

var Columns = []string{PropertyID, InquiryID, UserID, Name, Email, Phone, Message, CreatedAt}
