package admin

import (
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := apperr.AsValidation(err); ok {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		log.Printf("admin rpc failed: %v", err)
		return status.Error(codes.Internal, "internal server error")
	}
}
