package current_principal

import (
	"context"
	"errors"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

var errSessionRevoked = apperr.Kind(apperr.ErrUnauthenticated, errors.New("not authorized, account is no longer active"))

// Query loads the account behind a token so that role changes and
// deactivation apply to tokens issued before them.
type Query struct {
	repo contracts.UserRepository
}

// NewQuery creates a new current principal query.
func NewQuery(repo contracts.UserRepository) *Query {
	return &Query{repo: repo}
}

// Principal returns the stored identity of userID. Unknown and inactive
// accounts are unauthenticated.
func (q *Query) Principal(ctx context.Context, userID string) (auth.Principal, error) {
	user, err := q.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return auth.Principal{}, errSessionRevoked
		}
		return auth.Principal{}, err
	}
	if !user.Active() {
		return auth.Principal{}, errSessionRevoked
	}
	return user.Principal(), nil
}
