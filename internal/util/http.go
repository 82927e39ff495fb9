package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/api/httperrors"
	"github/chapool/hl-signer/internal/types"
)

// BindAndValidateBody binds the request body to v and validates it against
// its schema. Schema violations are returned as a 400 validation error.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("echo binder is not the default binder")
	}

	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates a response model before writing it as JSON.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromContext(c.Request().Context()).Error().Err(err).Msg("Response model failed validation")
		return err
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	ctx := c.Request().Context()

	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	var compositeError *oerrors.CompositeError
	if errors.As(err, &compositeError) {
		LogFromContext(ctx).Debug().Errs("validation_errors", compositeError.Errors).Msg("Payload did not match schema, returning HTTP validation error")

		valErrs := formatValidationErrors(ctx, compositeError)
		return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), valErrs)
	}

	var validationError *oerrors.Validation
	if errors.As(err, &validationError) {
		LogFromContext(ctx).Debug().AnErr("validation_error", validationError).Msg("Payload did not match schema, returning HTTP validation error")

		valErrs := []*types.HTTPValidationErrorDetail{
			{
				Key:   &validationError.Name,
				In:    &validationError.In,
				Error: swag.String(validationError.Error()),
			},
		}
		return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), valErrs)
	}

	LogFromContext(ctx).Error().Err(err).Msg("Failed to validate payload, returning generic HTTP error")
	return err
}

func formatValidationErrors(ctx context.Context, err *oerrors.CompositeError) []*types.HTTPValidationErrorDetail {
	valErrs := make([]*types.HTTPValidationErrorDetail, 0, len(err.Errors))
	for _, e := range err.Errors {
		switch ee := e.(type) {
		case *oerrors.Validation:
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Key:   &ee.Name,
				In:    &ee.In,
				Error: swag.String(ee.Error()),
			})
		case *oerrors.CompositeError:
			valErrs = append(valErrs, formatValidationErrors(ctx, ee)...)
		default:
			LogFromContext(ctx).Warn().Err(e).Str("err_type", fmt.Sprintf("%T", e)).Msg("Received unknown error type while validating payload, skipping")
		}
	}

	return valErrs
}
