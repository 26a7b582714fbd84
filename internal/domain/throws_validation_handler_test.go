package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrowsValidationHandler_Append(t *testing.T) {
	h := NewThrowsValidationHandler()

	_, err := h.Append(NewErrorMessage("bad name"))

	domainErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, domainErr.Kind)
	assert.Equal(t, []ErrorMessage{{Message: "bad name"}}, domainErr.Errors)
	assert.Empty(t, h.Errors())
	assert.False(t, h.HasErrors())
}

func TestThrowsValidationHandler_AppendHandler(t *testing.T) {
	other := NotificationWith(NewErrorMessage("a"))
	_, _ = other.Append(NewErrorMessage("b"))

	_, err := NewThrowsValidationHandler().AppendHandler(other)

	domainErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, []ErrorMessage{{Message: "a"}, {Message: "b"}}, domainErr.Errors)
	assert.Equal(t, "a; b", domainErr.Error())
}

func TestThrowsValidationHandler_ValidatePropagatesStructuredFailure(t *testing.T) {
	original := NewNotFoundError("missing")

	err := NewThrowsValidationHandler().Validate(func() error { return original })

	assert.Same(t, original, err)
}

func TestThrowsValidationHandler_ValidateWrapsGenericFailure(t *testing.T) {
	cause := errors.New("boom")

	err := NewThrowsValidationHandler().Validate(func() error { return cause })

	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "boom", err.Error())
}

func TestThrowsValidationHandler_ValidateSuccess(t *testing.T) {
	assert.NoError(t, NewThrowsValidationHandler().Validate(func() error { return nil }))
}

func TestError_Kinds(t *testing.T) {
	cause := errors.New("connection refused")
	infra := NewInfrastructureError(cause)

	assert.True(t, IsKind(infra, KindInfrastructure))
	assert.False(t, IsKind(infra, KindNotFound))
	assert.ErrorIs(t, infra, cause)
	assert.Equal(t, "connection refused", infra.Error())

	notFound := NewNotFoundError("category not found for id 1")
	assert.True(t, IsKind(notFound, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}
