package http

import (
	"errors"
	"net/http"
	"strings"

	"orders/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// Error type discriminators exposed on the wire. Clients dispatch on these
// rather than parsing messages.
const (
	errorTypeBadRequest = "BadRequestError"
	errorTypeValidation = "ValidationError"
	errorTypeNotFound   = "NotFoundError"
	errorTypeConflict   = "ConflictError"
	errorTypeInternal   = "InternalServerError"
)

// ErrorResponse is the error body shared by every endpoint.
type ErrorResponse struct {
	StatusCode int            `json:"statusCode"`
	Type       string         `json:"type"`
	Message    string         `json:"message"`
	Context    map[string]any `json:"context,omitempty"`
}

// badRequestResponse covers malformed payloads that never reached
// validation, such as broken JSON.
func badRequestResponse(message string) (int, ErrorResponse) {
	return http.StatusBadRequest, ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Type:       errorTypeBadRequest,
		Message:    message,
	}
}

// requestValidationResponse converts validator failures into a 422 with one
// context entry per offending field.
func requestValidationResponse(err error) (int, ErrorResponse) {
	fields := map[string]any{}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			fields[fieldName(fieldErr)] = fieldErr.Tag()
		}
	}

	return http.StatusUnprocessableEntity, ErrorResponse{
		StatusCode: http.StatusUnprocessableEntity,
		Type:       errorTypeValidation,
		Message:    "request validation failed",
		Context:    fields,
	}
}

// fieldName strips the struct prefix from the validator namespace, leaving
// a path like "items[0].quantity".
func fieldName(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return namespace
}

// domainErrorResponse maps a core error to its transport representation.
// Validation kinds become 422, missing objects 404, version conflicts 409.
// Anything unrecognized becomes an opaque 500; the caller logs the detail
// server-side.
func domainErrorResponse(err error) (int, ErrorResponse) {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, ErrorResponse{
			StatusCode: http.StatusNotFound,
			Type:       errorTypeNotFound,
			Message:    notFoundErr.Error(),
			Context:    map[string]any{"id": notFoundErr.ID},
		}
	}

	if errors.Is(err, errs.ErrVersionIsInvalid) {
		return http.StatusConflict, ErrorResponse{
			StatusCode: http.StatusConflict,
			Type:       errorTypeConflict,
			Message:    "the order was modified by a concurrent request, retry with fresh state",
		}
	}

	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return http.StatusUnprocessableEntity, ErrorResponse{
			StatusCode: http.StatusUnprocessableEntity,
			Type:       errorTypeValidation,
			Message:    err.Error(),
			Context:    validationContext(err),
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Type:       errorTypeInternal,
		Message:    "internal server error",
	}
}

// validationContext extracts the offending parameter name when the typed
// error carries one.
func validationContext(err error) map[string]any {
	var requiredErr *errs.ValueIsRequiredError
	if errors.As(err, &requiredErr) {
		return map[string]any{"param": requiredErr.ParamName}
	}

	var invalidErr *errs.ValueIsInvalidError
	if errors.As(err, &invalidErr) {
		return map[string]any{"param": invalidErr.ParamName}
	}

	var rangeErr *errs.ValueIsOutOfRangeError
	if errors.As(err, &rangeErr) {
		return map[string]any{
			"param": rangeErr.ParamName,
			"min":   rangeErr.Min,
			"max":   rangeErr.Max,
		}
	}

	return nil
}
