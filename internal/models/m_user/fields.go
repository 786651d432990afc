package m_user

// Field name constants for the users table.
const (
	TableName = "users"

	UserID                = "user_id"
	Name                  = "name"
	Email                 = "email"
	PasswordHash          = "password_hash"
	Phone                 = "phone"
	Role                  = "role"
	IsAgent               = "is_agent"
	IsActive              = "is_active"
	LicenseNumber         = "license_number"
	ExperienceYears       = "experience_years"
	Specializations       = "specializations"
	Bio                   = "bio"
	AgentPhone            = "agent_phone"
	AgentStreet           = "agent_street"
	AgentCity             = "agent_city"
	AgentState            = "agent_state"
	ProfileImage          = "profile_image"
	RatingAverage         = "rating_average"
	RatingCount           = "rating_count"
	TransactionCount      = "transaction_count"
	Verified              = "verified"
	VerificationDocuments = "verification_documents"
	CreatedAt             = "created_at"
	UpdatedAt             = "updated_at"
)

// Index names used for unique lookups.
const (
	IndexEmail   = "idx_users_email"
	IndexLicense = "idx_users_license"
)

// Columns lists every column in Data field order.
var Columns = []string{
	UserID, Name, Email, PasswordHash, Phone, Role, IsAgent, IsActive,
	LicenseNumber, ExperienceYears, Specializations, Bio,
	AgentPhone, AgentStreet, AgentCity, AgentState, ProfileImage,
	RatingAverage, RatingCount, TransactionCount, Verified, VerificationDocuments,
	CreatedAt, UpdatedAt,
}

// PublicColumns is Columns without the password hash.
var PublicColumns = []string{
	UserID, Name, Email, Phone, Role, IsAgent, IsActive,
	LicenseNumber, ExperienceYears, Specializations, Bio,
	AgentPhone, AgentStreet, AgentCity, AgentState, ProfileImage,
	RatingAverage, RatingCount, TransactionCount, Verified, VerificationDocuments,
	CreatedAt, UpdatedAt,
}
