package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

const maxBioLen = 1000

// AgentAddress is the office address of an agent.
type AgentAddress struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
}

// Document is an uploaded verification document.
type Document struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AgentProfile is the agent-specific part of a user.
type AgentProfile struct {
	LicenseNumber         string
	ExperienceYears       int64
	Specializations       []string
	Bio                   string
	Phone                 string
	Address               AgentAddress
	ProfileImage          string
	Rating                Rating
	TransactionCount      int64
	Verified              bool
	VerificationDocuments []Document
}

// AgentProfileInput is the client-editable part of an agent profile.
// Nil fields are left unchanged on update.
type AgentProfileInput struct {
	LicenseNumber         *string
	ExperienceYears       *int64
	Specializations       *[]string
	Bio                   *string
	Phone                 *string
	Address               *AgentAddress
	ProfileImage          *string
	VerificationDocuments *[]Document
}

func (in AgentProfileInput) validate(prefix string) *apperr.ValidationError {
	v := apperr.NewValidation()
	if in.ExperienceYears != nil {
		v.Check(*in.ExperienceYears >= 0 && *in.ExperienceYears <= 80, prefix+"experienceYears", "experience must be between 0 and 80 years")
	}
	if in.Bio != nil {
		v.MaxLen(prefix+"bio", strings.TrimSpace(*in.Bio), maxBioLen)
	}
	if in.LicenseNumber != nil {
		v.MaxLen(prefix+"licenseNumber", strings.TrimSpace(*in.LicenseNumber), 50)
	}
	if in.VerificationDocuments != nil {
		for i, d := range *in.VerificationDocuments {
			field := fmt.Sprintf("%sverificationDocuments[%d]", prefix, i)
			v.Check(strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.URL) != "", field, "name and url are required")
		}
	}
	return v
}

func (in AgentProfileInput) profile() *AgentProfile {
	p := &AgentProfile{}
	in.applyTo(p)
	return p
}

func (in AgentProfileInput) applyTo(p *AgentProfile) {
	if in.LicenseNumber != nil {
		p.LicenseNumber = strings.TrimSpace(*in.LicenseNumber)
	}
	if in.ExperienceYears != nil {
		p.ExperienceYears = *in.ExperienceYears
	}
	if in.Specializations != nil {
		p.Specializations = normalizeTags(*in.Specializations)
	}
	if in.Bio != nil {
		p.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		p.Address = AgentAddress{
			Street: strings.TrimSpace(in.Address.Street),
			City:   strings.TrimSpace(in.Address.City),
			State:  strings.TrimSpace(in.Address.State),
		}
	}
	if in.ProfileImage != nil {
		p.ProfileImage = strings.TrimSpace(*in.ProfileImage)
	}
	if in.VerificationDocuments != nil {
		p.VerificationDocuments = append([]Document(nil), *in.VerificationDocuments...)
	}
}

// LicenseChange returns the new license number when in changes it.
func (u *User) LicenseChange(in AgentProfileInput) (string, bool) {
	if in.LicenseNumber == nil || u.agent == nil {
		return "", false
	}
	license := strings.TrimSpace(*in.LicenseNumber)
	return license, license != "" && license != u.agent.LicenseNumber
}

// UpdateAgentProfile applies a partial profile update. Rating, transaction
// count and the verified flag are not client-editable.
func (u *User) UpdateAgentProfile(in AgentProfileInput, now time.Time) error {
	if u.agent == nil {
		return ErrNotAgent
	}
	if err := in.validate("").OrNil(); err != nil {
		return err
	}

	in.applyTo(u.agent)
	u.updatedAt = now
	u.changes.MarkDirty(FieldAgentProfile)
	return nil
}

func normalizeTags(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
