package grpc

import (
	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCErrorResponse сопоставляет ошибку сценария со статусом gRPC.
func GRPCErrorResponse(err error) error {
	if domainErr, ok := domain.AsError(err); ok {
		switch domainErr.Kind {
		case domain.KindValidation:
			return status.Error(codes.InvalidArgument, domainErr.Error())
		case domain.KindNotFound:
			return status.Error(codes.NotFound, domainErr.Error())
		}
	}

	return status.Error(codes.Internal, e.ErrInternalServerError.Error())
}
