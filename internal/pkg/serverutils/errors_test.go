package serverutils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusPerKind(t *testing.T) {
	cases := map[*ApiError]int{
		NewInvalidArgument("bad"):       fiber.StatusBadRequest,
		NewUnauthenticated("no"):        fiber.StatusUnauthorized,
		NewPermissionDenied("no"):       fiber.StatusForbidden,
		NewNotFound("gone"):             fiber.StatusNotFound,
		NewAlreadyExists("dup"):         fiber.StatusConflict,
		NewInternal(errors.New("boom")): fiber.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, err.HTTPStatus(), err.Message)
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewInternal(cause)

	assert.Equal(t, "internal server error", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestAsApiErrorNormalizesUnknownErrors(t *testing.T) {
	plain := errors.New("record not found")
	apiErr := AsApiError(plain)

	assert.Equal(t, KindInternal, apiErr.Kind)
	assert.Equal(t, plain, errors.Unwrap(apiErr))

	// Already-typed errors pass through untouched.
	nf := NewNotFound("schematic not found")
	assert.Same(t, nf, AsApiError(nf))
}
