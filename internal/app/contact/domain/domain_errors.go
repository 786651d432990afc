package domain

import (
	"errors"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

// Domain errors as sentinel values
var (
	ErrContactNotFound = apperr.Kind(apperr.ErrNotFound, errors.New("contact not found"))
	ErrAdminOnly       = apperr.Kind(apperr.ErrForbidden, errors.New("only admins can manage contact submissions"))
)
