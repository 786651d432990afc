package domain

import (
	contactdomain "github.com/light-bringer/estate-service/internal/app/contact/domain"
	propertydomain "github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// Counts is the raw output of the grouped count queries, keyed by the
// stored column value.
type Counts struct {
	PropertiesByStatus map[string]int64
	PropertiesByType   map[string]int64
	UsersByRole        map[string]int64
	VerifiedAgents     int64
	UnverifiedAgents   int64
	ContactsByStatus   map[string]int64
	TotalViews         int64
	TotalInquiries     int64
}

type PropertyStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
	ByType   map[string]int64 `json:"byType"`
}

type UserStats struct {
	Total  int64            `json:"total"`
	ByRole map[string]int64 `json:"byRole"`
}

type AgentStats struct {
	Total      int64 `json:"total"`
	Verified   int64 `json:"verified"`
	Unverified int64 `json:"unverified"`
}

type ContactStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// SiteStats is the admin overview across every context.
type SiteStats struct {
	Properties     PropertyStats `json:"properties"`
	Users          UserStats     `json:"users"`
	Agents         AgentStats    `json:"agents"`
	Contacts       ContactStats  `json:"contacts"`
	TotalViews     int64         `json:"totalViews"`
	TotalInquiries int64         `json:"totalInquiries"`
}

// BuildSiteStats zero-fills every known enum value and derives the totals.
// Values outside the known enums are kept as they are.
func BuildSiteStats(c Counts) SiteStats {
	s := SiteStats{
		Properties: PropertyStats{
			ByStatus: fill(c.PropertiesByStatus, propertydomain.Statuses),
			ByType:   fill(c.PropertiesByType, propertydomain.PropertyTypes),
		},
		Users: UserStats{
			ByRole: fill(c.UsersByRole, []auth.Role{auth.RoleUser, auth.RoleAgent, auth.RoleAdmin}),
		},
		Agents: AgentStats{
			Total:      c.VerifiedAgents + c.UnverifiedAgents,
			Verified:   c.VerifiedAgents,
			Unverified: c.UnverifiedAgents,
		},
		Contacts: ContactStats{
			ByStatus: fill(c.ContactsByStatus, contactdomain.Statuses),
		},
		TotalViews:     c.TotalViews,
		TotalInquiries: c.TotalInquiries,
	}
	s.Properties.Total = sum(s.Properties.ByStatus)
	s.Users.Total = sum(s.Users.ByRole)
	s.Contacts.Total = sum(s.Contacts.ByStatus)
	return s
}

func fill[T ~string](counts map[string]int64, keys []T) map[string]int64 {
	out := make(map[string]int64, len(keys)+len(counts))
	for _, k := range keys {
		out[string(k)] = 0
	}
	for k, n := range counts {
		out[k] += n
	}
	return out
}

func sum(m map[string]int64) int64 {
	var n int64
	for _, v := range m {
		n += v
	}
	return n
}
