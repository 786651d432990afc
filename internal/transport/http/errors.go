package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

// statusFor maps an error to its HTTP status and client message.
func statusFor(err error) (int, string) {
	if v, ok := apperr.AsValidation(err); ok {
		return http.StatusBadRequest, firstMessage(v)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}

	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func firstMessage(v *apperr.ValidationError) string {
	if len(v.Fields) == 1 {
		for _, msg := range v.Fields {
			return msg
		}
	}
	return "validation failed"
}

// ErrorHandler writes the error envelope. Internal error details are only
// exposed in development.
func ErrorHandler(development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := statusFor(err)
		body := errorBody{Success: false, Message: message}
		if v, ok := apperr.AsValidation(err); ok {
			body.Errors = v.Fields
		}
		if status == http.StatusInternalServerError {
			log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
			if development {
				body.Detail = err.Error()
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Printf("failed to write error response: %v", err)
		}
	}
}
