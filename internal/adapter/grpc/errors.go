package grpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/simaogato/nestegg-backend/internal/usecase/goalform"
)

// mapError converts domain errors to gRPC status errors.
// Validation failures carry an errdetails.BadRequest listing each field.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var verr *goalform.ValidationError
	if errors.As(err, &verr) {
		violations := make([]*errdetails.BadRequest_FieldViolation, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			violations = append(violations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: v.Description,
			})
		}
		return withBadRequest(codes.InvalidArgument, verr.Error(), violations)
	}

	var ferr *fieldError
	if errors.As(err, &ferr) {
		return withBadRequest(codes.InvalidArgument, ferr.Error(), []*errdetails.BadRequest_FieldViolation{
			{Field: ferr.field, Description: ferr.err.Error()},
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidTarget),
		errors.Is(err, domain.ErrInvalidContribution):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrFormClosed),
		errors.Is(err, domain.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrFetch),
		errors.Is(err, domain.ErrRefreshInFlight):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Error(codes.Internal, err.Error())
}

func withBadRequest(code codes.Code, msg string, violations []*errdetails.BadRequest_FieldViolation) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.BadRequest{FieldViolations: violations})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
