package grpc

import (
	"errors"

	"github.com/DRSN-tech/visual-search/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isInputError отличает ошибки клиентского ввода от сбоев сервиса:
// первые логируются как Warn, вторые как Error.
func isInputError(err error) bool {
	return errors.Is(err, e.ErrNoImage) ||
		errors.Is(err, e.ErrDecodeFailed) ||
		errors.Is(err, e.ErrInvalidTopK) ||
		errors.Is(err, e.ErrUnsupportedMediaType) ||
		errors.Is(err, e.ErrNoProducts)
}

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrNoImage):
		return status.Error(codes.InvalidArgument, e.ErrNoImage.Error())
	case errors.Is(err, e.ErrDecodeFailed):
		return status.Error(codes.InvalidArgument, e.ErrDecodeFailed.Error())
	case errors.Is(err, e.ErrInvalidTopK):
		return status.Error(codes.InvalidArgument, e.ErrInvalidTopK.Error())
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return status.Error(codes.InvalidArgument, e.ErrUnsupportedMediaType.Error())
	case errors.Is(err, e.ErrNoProducts):
		return status.Error(codes.InvalidArgument, e.ErrNoProducts.Error())
	case errors.Is(err, e.ErrModelUnavailable):
		return status.Error(codes.Unavailable, e.ErrModelUnavailable.Error())
	case errors.Is(err, e.ErrSearchTimeout):
		return status.Error(codes.DeadlineExceeded, e.ErrSearchTimeout.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
