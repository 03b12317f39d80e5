package storefront

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
	chat "github.com/murkotick/storefront-service/internal/app/chat/domain"
	checkout "github.com/murkotick/storefront-service/internal/app/checkout/domain"
	"github.com/murkotick/storefront-service/internal/app/session"
)

// mapError translates application sentinel errors into gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Not found
	if errors.Is(err, catalog.ErrProductNotFound) || errors.Is(err, session.ErrSessionNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}

	// Invalid argument (checkout form)
	switch {
	case errors.Is(err, checkout.ErrMissingField),
		errors.Is(err, checkout.ErrInvalidEmail),
		errors.Is(err, checkout.ErrUnknownPaymentMethod):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	// Failed precondition (state)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, chat.ErrAdvisorBusy):
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
