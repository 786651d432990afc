package get_agent

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
)

// Query returns a public agent profile with its active listing count.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get agent query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

func (q *Query) Execute(ctx context.Context, agentID string) (*contracts.UserDTO, error) {
	return q.readModel.GetAgent(ctx, agentID)
}
