package m_contact

// Field name constants for the contacts table.
const (
	TableName = "contacts"

	ContactID  = "contact_id"
	Name       = "name"
	Email      = "email"
	Phone      = "phone"
	Subject    = "subject"
	Message    = "message"
	Category   = "category"
	Status     = "status"
	Priority   = "priority"
	AssignedTo = "assigned_to"
	IsRead     = "is_read"
	CreatedAt  = "created_at"
	UpdatedAt  = "updated_at"
)

var Columns = []string{
	ContactID, Name, Email, Phone, Subject, Message, Category, Status, Priority,
	AssignedTo, IsRead, CreatedAt, UpdatedAt,
}
