package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates hub errors into gRPC status errors.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrAuthentication):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, ErrMalformedEvent):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrReservedGroup):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrUnknownConnection), errors.Is(err, ErrUnreachableTarget):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrRateLimited), errors.Is(err, ErrSinkFull):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
