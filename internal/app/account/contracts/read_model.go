package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// UserDTO is the client representation of a user. The password hash is never exposed.
type UserDTO struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone,omitempty"`
	Role           string           `json:"role"`
	IsAgent        bool             `json:"isAgent"`
	IsActive       bool             `json:"isActive"`
	AgentProfile   *AgentProfileDTO `json:"agentProfile,omitempty"`
	ActiveListings *int64           `json:"activeListings,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type RatingDTO struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type AgentProfileDTO struct {
	LicenseNumber         string              `json:"licenseNumber,omitempty"`
	ExperienceYears       int64               `json:"experienceYears"`
	Specializations       []string            `json:"specializations"`
	Bio                   string              `json:"bio,omitempty"`
	Phone                 string              `json:"phone,omitempty"`
	Address               domain.AgentAddress `json:"address"`
	ProfileImage          string              `json:"profileImage,omitempty"`
	Rating                RatingDTO           `json:"rating"`
	TransactionCount      int64               `json:"transactionCount"`
	Verified              bool                `json:"verified"`
	VerificationDocuments []domain.Document   `json:"verificationDocuments,omitempty"`
}

// NewUserDTO maps an aggregate to its client representation.
func NewUserDTO(u *domain.User) *UserDTO {
	dto := &UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Phone:     u.Phone(),
		Role:      string(u.Role()),
		IsAgent:   u.IsAgent(),
		IsActive:  u.Active(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
	if p := u.AgentProfile(); p != nil {
		specs := p.Specializations
		if specs == nil {
			specs = []string{}
		}
		dto.AgentProfile = &AgentProfileDTO{
			LicenseNumber:         p.LicenseNumber,
			ExperienceYears:       p.ExperienceYears,
			Specializations:       specs,
			Bio:                   p.Bio,
			Phone:                 p.Phone,
			Address:               p.Address,
			ProfileImage:          p.ProfileImage,
			Rating:                RatingDTO{Average: p.Rating.Average, Count: p.Rating.Count},
			TransactionCount:      p.TransactionCount,
			Verified:              p.Verified,
			VerificationDocuments: p.VerificationDocuments,
		}
	}
	return dto
}

// ListQuery is a rendered agent search.
type ListQuery struct {
	Conditions []query.Condition
	Orders     []query.Order
	Page       paging.Page
}

// ReadModel defines the interface for account queries.
type ReadModel interface {
	GetUser(ctx context.Context, userID string) (*UserDTO, error)

	// GetAgent returns an active agent with the number of active listings.
	GetAgent(ctx context.Context, agentID string) (*UserDTO, error)

	// ListAgents returns one page of agents and the total match count.
	ListAgents(ctx context.Context, q ListQuery) ([]*UserDTO, int64, error)
}
