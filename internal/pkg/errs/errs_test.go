package errs_test

import (
	"errors"
	"testing"

	"quickcommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "1001")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "1001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 1001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("store unavailable")
		err := errs.NewObjectNotFoundErrorWithCause("partnerId", "7", cause)

		assert.Equal(t, "partnerId", err.ParamName)
		assert.Equal(t, "7", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: partnerId, ID is: 7 (cause: store unavailable)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("integer id renders as a plain number", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", int64(1001))
		assert.Equal(t, "object not found: 1001", err.Error())

		withCause := errs.NewObjectNotFoundErrorWithCause("orderId", int64(1001),
			errors.New("store unavailable"))
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 1001 (cause: store unavailable)",
			withCause.Error())
	})

	t.Run("errors.Is classification", func(t *testing.T) {
		var err error = errs.NewObjectNotFoundError("customerId", int64(42))
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("DELIVERED is not a valid status to cancel")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: status (cause: DELIVERED is not a valid status to cancel)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 6, 1, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 6, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 6 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize strips newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}
