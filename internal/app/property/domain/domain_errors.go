package domain

import (
	"errors"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

// Domain errors as sentinel values
var (
	ErrPropertyNotFound = apperr.Kind(apperr.ErrNotFound, errors.New("property not found"))
	ErrImageNotFound    = apperr.Kind(apperr.ErrNotFound, errors.New("image not found"))
	ErrNotOwner         = apperr.Kind(apperr.ErrForbidden, errors.New("not authorized to modify this property"))
	ErrNotAgent         = apperr.Kind(apperr.ErrForbidden, errors.New("only agents can list properties"))
	ErrAdminOnly        = apperr.Kind(apperr.ErrForbidden, errors.New("only admins can change featured or verified"))
)
