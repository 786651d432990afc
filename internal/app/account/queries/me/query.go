package me

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// Query returns the caller's own account.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new me query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

func (q *Query) Execute(ctx context.Context, caller auth.Principal) (*contracts.UserDTO, error) {
	return q.readModel.GetUser(ctx, caller.UserID)
}
