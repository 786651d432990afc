package domain

import (
	"errors"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

var ErrAdminOnly = apperr.Kind(apperr.ErrForbidden, errors.New("admin access required"))
