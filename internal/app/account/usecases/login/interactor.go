package login

import (
	"context"
	"errors"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// Request holds the credentials.
type Request struct {
	Email    string
	Password string
}

// Interactor handles sign-in.
type Interactor struct {
	repo   contracts.UserRepository
	hasher *auth.Hasher
	tokens *auth.TokenManager
}

// NewInteractor creates a new login interactor.
func NewInteractor(repo contracts.UserRepository, hasher *auth.Hasher, tokens *auth.TokenManager) *Interactor {
	return &Interactor{repo: repo, hasher: hasher, tokens: tokens}
}

// Execute checks the credentials and issues a token. Unknown emails and
// wrong passwords fail the same way.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.Session, error) {
	v := apperr.NewValidation()
	v.Required("email", req.Email)
	v.Required("password", req.Password)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	user, err := i.repo.GetByEmail(ctx, domain.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := i.hasher.Check(user.PasswordHash(), req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active() {
		return nil, domain.ErrAccountDisabled
	}

	token, expires, err := i.tokens.Issue(user.Principal())
	if err != nil {
		return nil, err
	}
	return &contracts.Session{User: user, Token: token, ExpiresAt: expires}, nil
}
