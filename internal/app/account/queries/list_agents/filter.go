package list_agents

import (
	"strconv"
	"strings"

	"github.com/light-bringer/estate-service/internal/models/m_user"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// DefaultPageSize is the agent page size when none is requested.
const DefaultPageSize = 10

// Sorting is the agent sort allow-list.
var Sorting = paging.SortSpec{
	Columns: map[string]string{
		"rating":       m_user.RatingAverage,
		"experience":   m_user.ExperienceYears,
		"transactions": m_user.TransactionCount,
		"createdAt":    m_user.CreatedAt,
	},
	Default: []query.Order{
		{Column: m_user.RatingAverage, Direction: query.Desc},
		{Column: m_user.TransactionCount, Direction: query.Desc},
	},
}

// Filter holds the raw agent search parameters.
type Filter struct {
	City           string
	Specialization string
	Verified       string
	Search         string
}

// BuildFilter returns the conditions for an agent search. Only active agents
// are listed; empty or unparsable parameters are omitted.
func BuildFilter(f Filter) []query.Condition {
	conds := []query.Condition{
		query.Eq(m_user.IsAgent, true),
		query.Eq(m_user.IsActive, true),
	}

	if city := strings.TrimSpace(f.City); city != "" {
		conds = append(conds, query.ContainsFold(m_user.AgentCity, city))
	}
	if spec := strings.ToLower(strings.TrimSpace(f.Specialization)); spec != "" {
		conds = append(conds, query.ArrayContains(m_user.Specializations, spec))
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(f.Verified)); err == nil {
		conds = append(conds, query.Eq(m_user.Verified, v))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		conds = append(conds, query.Or(
			query.ContainsFold(m_user.Name, s),
			query.ContainsFold(m_user.Bio, s),
		))
	}
	return conds
}
