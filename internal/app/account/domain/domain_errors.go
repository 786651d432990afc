package domain

import (
	"errors"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

// Domain errors as sentinel values
var (
	ErrUserNotFound       = apperr.Kind(apperr.ErrNotFound, errors.New("user not found"))
	ErrAgentNotFound      = apperr.Kind(apperr.ErrNotFound, errors.New("agent not found"))
	ErrEmailTaken         = apperr.Kind(apperr.ErrConflict, errors.New("email is already registered"))
	ErrLicenseTaken       = apperr.Kind(apperr.ErrConflict, errors.New("license number is already registered"))
	ErrInvalidCredentials = apperr.Kind(apperr.ErrUnauthenticated, errors.New("invalid email or password"))
	ErrAccountDisabled    = apperr.Kind(apperr.ErrForbidden, errors.New("account is disabled"))
	ErrNotAgent           = apperr.Kind(apperr.ErrForbidden, errors.New("only agents have an agent profile"))
)

// ErrAdminOnly is returned when a non-admin tries an admin action on a user.
var ErrAdminOnly = apperr.Kind(apperr.ErrForbidden, errors.New("only admins can verify agents"))
