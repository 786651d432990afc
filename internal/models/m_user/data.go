package m_user

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the users table.
// Agent profile columns are NULL for plain users.
type Data struct {
	UserID                string             `spanner:"user_id"`
	Name                  string             `spanner:"name"`
	Email                 string             `spanner:"email"`
	PasswordHash          string             `spanner:"password_hash"`
	Phone                 spanner.NullString `spanner:"phone"`
	Role                  string             `spanner:"role"`
	IsAgent               bool               `spanner:"is_agent"`
	IsActive              bool               `spanner:"is_active"`
	LicenseNumber         spanner.NullString `spanner:"license_number"`
	ExperienceYears       spanner.NullInt64  `spanner:"experience_years"`
	Specializations       []string           `spanner:"specializations"`
	Bio                   spanner.NullString `spanner:"bio"`
	AgentPhone            spanner.NullString `spanner:"agent_phone"`
	AgentStreet           spanner.NullString `spanner:"agent_street"`
	AgentCity             spanner.NullString `spanner:"agent_city"`
	AgentState            spanner.NullString `spanner:"agent_state"`
	ProfileImage          spanner.NullString `spanner:"profile_image"`
	RatingAverage         float64            `spanner:"rating_average"`
	RatingCount           int64              `spanner:"rating_count"`
	TransactionCount      int64              `spanner:"transaction_count"`
	Verified              bool               `spanner:"verified"`
	VerificationDocuments spanner.NullJSON   `spanner:"verification_documents"`
	CreatedAt             time.Time          `spanner:"created_at"`
	UpdatedAt             time.Time          `spanner:"updated_at"`
}
