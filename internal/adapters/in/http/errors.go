package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"logiflow/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler renders every error returned by a route as an Error body.
//
//   - request validation failures           -> 422 with field details
//   - malformed JSON bodies                 -> 400
//   - errs.ErrObjectNotFound                -> 404
//   - errs.ErrStorageUnavailable            -> 503
//   - errors raised by echo itself          -> their own status
//   - anything else                         -> 500, logged
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http-error-handler")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		body := toErrorBody(err)
		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"status", body.Code,
				"error", err,
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(body.Code)
		} else {
			writeErr = ctx.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func toErrorBody(err error) Error {
	var (
		paramErr      *paramError
		validationErr validator.ValidationErrors
		typeErr       *json.UnmarshalTypeError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &paramErr):
		return validationBody([]FieldError{{Field: paramErr.field, Message: paramErr.message}})
	case errors.As(err, &validationErr):
		details := make([]FieldError, 0, len(validationErr))
		for _, fe := range validationErr {
			details = append(details, describeFieldError(fe))
		}
		return validationBody(details)
	case errs.IsValidation(err):
		return validationBody(domainFieldErrors(err))
	case errors.As(err, &typeErr):
		return validationBody([]FieldError{{Field: typeErr.Field, Message: "must be of type " + typeErr.Type.String()}})
	case errors.Is(err, errs.ErrObjectNotFound):
		return Error{Code: http.StatusNotFound, Message: "Resource not found"}
	case errors.Is(err, errs.ErrStorageUnavailable):
		return Error{Code: http.StatusServiceUnavailable, Message: "Storage is unavailable"}
	case errors.As(err, &httpErr):
		return echoErrorBody(httpErr)
	default:
		return Error{Code: http.StatusInternalServerError, Message: "Internal server error"}
	}
}

func validationBody(details []FieldError) Error {
	return Error{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Details: details,
	}
}

func echoErrorBody(httpErr *echo.HTTPError) Error {
	if httpErr.Code == http.StatusBadRequest && httpErr.Internal != nil {
		return Error{Code: http.StatusBadRequest, Message: "Malformed JSON body"}
	}

	if msg, ok := httpErr.Message.(string); ok {
		return Error{Code: httpErr.Code, Message: msg}
	}
	return Error{Code: httpErr.Code, Message: http.StatusText(httpErr.Code)}
}

// domainFieldErrors flattens the validation errors of the errs package,
// possibly joined, into field details.
func domainFieldErrors(err error) []FieldError {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var details []FieldError
		for _, inner := range joined.Unwrap() {
			details = append(details, domainFieldErrors(inner)...)
		}
		return details
	}

	var (
		required   *errs.ValueIsRequiredError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
	)
	switch {
	case errors.As(err, &required):
		return []FieldError{{Field: required.ParamName, Message: "field required"}}
	case errors.As(err, &invalid):
		return []FieldError{{Field: invalid.ParamName, Message: err.Error()}}
	case errors.As(err, &outOfRange):
		return []FieldError{{Field: outOfRange.ParamName, Message: err.Error()}}
	default:
		return nil
	}
}
