package contracts

import (
	"time"

	"github.com/light-bringer/estate-service/internal/app/account/domain"
)

// Session is a signed-in user and the token that identifies them.
type Session struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}
