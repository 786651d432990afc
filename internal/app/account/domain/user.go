package domain

import (
	"strings"
	"time"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// Field names for change tracking
const (
	FieldName         = "name"
	FieldPhone        = "phone"
	FieldPasswordHash = "passwordHash"
	FieldAgentProfile = "agentProfile"
	FieldRating       = "rating"
	FieldVerified     = "verified"
)

const (
	MinPasswordLen = 6
	maxNameLen     = 100
)

// User is an account. Agents carry an AgentProfile.
type User struct {
	id           string
	name         string
	email        string
	passwordHash string
	phone        string
	role         auth.Role
	active       bool
	agent        *AgentProfile
	createdAt    time.Time
	updatedAt    time.Time

	changes *ChangeTracker
	events  []DomainEvent
}

// Registration is the validated input of a new account.
type Registration struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Agent    *AgentProfileInput
}

// NormalizeEmail trims and lower-cases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks the registration fields, password included.
func (r Registration) Validate() error {
	v := apperr.NewValidation()
	name := strings.TrimSpace(r.Name)
	if v.Required("name", name) {
		v.MaxLen("name", name, maxNameLen)
	}
	email := NormalizeEmail(r.Email)
	if v.Required("email", email) {
		v.Email("email", email)
	}
	if v.Required("password", r.Password) {
		v.MinLen("password", r.Password, MinPasswordLen)
	}
	if r.Agent != nil {
		v.Merge(r.Agent.validate("agentProfile."))
	}
	return v.OrNil()
}

// NewUser creates an active account. Registrations with an agent profile
// get the agent role.
func NewUser(id string, r Registration, passwordHash string, now time.Time) (*User, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	u := &User{
		id:           id,
		name:         strings.TrimSpace(r.Name),
		email:        NormalizeEmail(r.Email),
		passwordHash: passwordHash,
		phone:        strings.TrimSpace(r.Phone),
		role:         auth.RoleUser,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
		changes:      NewChangeTracker(),
		events:       make([]DomainEvent, 0),
	}
	if r.Agent != nil {
		u.role = auth.RoleAgent
		u.agent = r.Agent.profile()
	}

	u.recordEvent(&UserRegisteredEvent{UserID: id, Role: string(u.role), RegisteredAt: now})
	return u, nil
}

// UserSnapshot is the stored state of a user.
type UserSnapshot struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Role         auth.Role
	Active       bool
	Agent        *AgentProfile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructUser reconstitutes a User from storage with a clean change set.
func ReconstructUser(s UserSnapshot) *User {
	return &User{
		id:           s.ID,
		name:         s.Name,
		email:        s.Email,
		passwordHash: s.PasswordHash,
		phone:        s.Phone,
		role:         s.Role,
		active:       s.Active,
		agent:        s.Agent,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
		changes:      NewChangeTracker(),
		events:       make([]DomainEvent, 0),
	}
}

// Getters
func (u *User) ID() string                  { return u.id }
func (u *User) Name() string                { return u.name }
func (u *User) Email() string               { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Phone() string               { return u.phone }
func (u *User) Role() auth.Role             { return u.role }
func (u *User) Active() bool                { return u.active }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }
func (u *User) Changes() *ChangeTracker     { return u.changes }
func (u *User) DomainEvents() []DomainEvent { return u.events }

// AgentProfile returns a copy of the agent profile, or nil for plain users.
func (u *User) AgentProfile() *AgentProfile {
	if u.agent == nil {
		return nil
	}
	cp := *u.agent
	cp.Specializations = append([]string(nil), u.agent.Specializations...)
	cp.VerificationDocuments = append([]Document(nil), u.agent.VerificationDocuments...)
	return &cp
}

// IsAgent reports whether the user has an agent profile.
func (u *User) IsAgent() bool { return u.agent != nil }

// Principal is the token subject for this user.
func (u *User) Principal() auth.Principal {
	return auth.Principal{UserID: u.id, Role: u.role}
}

// UpdateProfile changes name and phone. Nil values are left unchanged.
func (u *User) UpdateProfile(name, phone *string, now time.Time) error {
	v := apperr.NewValidation()
	if name != nil {
		n := strings.TrimSpace(*name)
		if v.Required("name", n) {
			v.MaxLen("name", n, maxNameLen)
		}
	}
	if err := v.OrNil(); err != nil {
		return err
	}

	if name != nil && strings.TrimSpace(*name) != u.name {
		u.name = strings.TrimSpace(*name)
		u.changes.MarkDirty(FieldName)
	}
	if phone != nil && strings.TrimSpace(*phone) != u.phone {
		u.phone = strings.TrimSpace(*phone)
		u.changes.MarkDirty(FieldPhone)
	}
	if u.changes.HasChanges() {
		u.updatedAt = now
	}
	return nil
}

// SetPasswordHash replaces the stored hash.
func (u *User) SetPasswordHash(hash string, now time.Time) {
	u.passwordHash = hash
	u.updatedAt = now
	u.changes.MarkDirty(FieldPasswordHash)
}

// Rate folds value into the agent's rating. Users cannot rate themselves
// and only active agents can be rated.
func (u *User) Rate(raterID string, value int, now time.Time) error {
	if u.agent == nil || !u.active {
		return ErrAgentNotFound
	}
	if raterID == u.id {
		return apperr.Invalid("rating", "you cannot rate yourself")
	}

	rating, err := u.agent.Rating.Fold(value)
	if err != nil {
		return err
	}

	u.agent.Rating = rating
	u.updatedAt = now
	u.changes.MarkDirty(FieldRating)

	u.recordEvent(&AgentRatedEvent{
		AgentID: u.id,
		RaterID: raterID,
		Rating:  value,
		Average: rating.Average,
		Count:   rating.Count,
		RatedAt: now,
	})
	return nil
}

// SetVerified changes the agent's verified flag.
func (u *User) SetVerified(verified bool, by string, now time.Time) error {
	if u.agent == nil {
		return ErrAgentNotFound
	}
	if u.agent.Verified == verified {
		return nil
	}

	u.agent.Verified = verified
	u.updatedAt = now
	u.changes.MarkDirty(FieldVerified)

	u.recordEvent(&AgentVerifiedEvent{
		AgentID:   u.id,
		Verified:  verified,
		ChangedBy: by,
		ChangedAt: now,
	})
	return nil
}

func (u *User) recordEvent(event DomainEvent) {
	u.events = append(u.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (u *User) ClearEvents() {
	u.events = make([]DomainEvent, 0)
}
