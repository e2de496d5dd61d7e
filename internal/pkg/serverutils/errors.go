package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind is the stable error code surfaced to API clients.
type ErrorKind string

const (
	KindInvalidArgument  ErrorKind = "invalid_argument"
	KindUnauthenticated  ErrorKind = "unauthenticated"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindNotFound         ErrorKind = "not_found"
	KindAlreadyExists    ErrorKind = "already_exists"
	KindInternal         ErrorKind = "internal"
)

// ApiError carries a kind plus a human-readable message. The wrapped cause
// is for the log channel only and never reaches the client.
type ApiError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *ApiError) Error() string {
	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.cause
}

// HTTPStatus maps the kind to its HTTP status code.
func (e *ApiError) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidArgument:
		return fiber.StatusBadRequest
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindPermissionDenied:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindAlreadyExists:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func NewInvalidArgument(message string) *ApiError {
	return &ApiError{Kind: KindInvalidArgument, Message: message}
}

func NewUnauthenticated(message string) *ApiError {
	return &ApiError{Kind: KindUnauthenticated, Message: message}
}

func NewPermissionDenied(message string) *ApiError {
	return &ApiError{Kind: KindPermissionDenied, Message: message}
}

func NewNotFound(message string) *ApiError {
	return &ApiError{Kind: KindNotFound, Message: message}
}

func NewAlreadyExists(message string) *ApiError {
	return &ApiError{Kind: KindAlreadyExists, Message: message}
}

// NewInternal hides the cause behind a generic message; the cause is kept
// for logging.
func NewInternal(cause error) *ApiError {
	return &ApiError{Kind: KindInternal, Message: "internal server error", cause: cause}
}

// AsApiError normalizes any error into an ApiError. Unknown errors become
// Internal so no store detail leaks to the caller.
func AsApiError(err error) *ApiError {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternal(err)
}
