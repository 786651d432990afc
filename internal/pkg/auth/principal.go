// Package auth issues and verifies bearer tokens and hashes passwords.
package auth

import "context"

// Role is the authorization role carried in a token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
	Role   Role
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// CanList reports whether the caller may create property listings.
func (p Principal) CanList() bool { return p.Role == RoleAgent || p.Role == RoleAdmin }

// Lookup resolves the stored principal behind a verified token subject.
type Lookup interface {
	Principal(ctx context.Context, userID string) (Principal, error)
}

// Owns reports whether the caller is ownerID or an admin.
func (p Principal) Owns(ownerID string) bool {
	return p.IsAdmin() || (p.UserID != "" && p.UserID == ownerID)
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
