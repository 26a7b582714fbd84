package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotification_AppendKeepsOrder(t *testing.T) {
	n := NewNotification()
	assert.False(t, n.HasErrors())
	assert.Empty(t, n.Errors())

	h, err := n.Append(NewErrorMessage("first"))
	require.NoError(t, err)
	assert.Same(t, n, h)

	_, err = n.Append(NewErrorMessage("second"))
	require.NoError(t, err)

	assert.True(t, n.HasErrors())
	assert.Equal(t, []ErrorMessage{{Message: "first"}, {Message: "second"}}, n.Errors())
	assert.Equal(t, "first", n.FirstError())
}

func TestNotification_AppendHandler(t *testing.T) {
	other := NotificationWith(NewErrorMessage("b"))
	_, _ = other.Append(NewErrorMessage("c"))

	n := NotificationWith(NewErrorMessage("a"))
	h, err := n.AppendHandler(other)
	require.NoError(t, err)
	assert.Same(t, n, h)
	assert.Equal(t, []ErrorMessage{{Message: "a"}, {Message: "b"}, {Message: "c"}}, n.Errors())
}

func TestNotification_AppendEmptyThrowsHandler(t *testing.T) {
	n := NewNotification()
	_, err := n.AppendHandler(NewThrowsValidationHandler())
	require.NoError(t, err)
	assert.False(t, n.HasErrors())
}

func TestNotification_ValidateCollectsStructuredFailure(t *testing.T) {
	n := NewNotification()

	err := n.Validate(func() error {
		return NewValidationError(NewErrorMessage("x"), NewErrorMessage("y"))
	})

	require.NoError(t, err)
	assert.Equal(t, []ErrorMessage{{Message: "x"}, {Message: "y"}}, n.Errors())
}

func TestNotification_ValidateCollectsGenericFailure(t *testing.T) {
	n := NewNotification()

	err := n.Validate(func() error { return errors.New("boom") })

	require.NoError(t, err)
	assert.Equal(t, []ErrorMessage{{Message: "boom"}}, n.Errors())
}

func TestNotification_ValidateSuccessfulStep(t *testing.T) {
	n := NewNotification()
	ran := false

	require.NoError(t, n.Validate(func() error {
		ran = true
		return nil
	}))

	assert.True(t, ran)
	assert.False(t, n.HasErrors())
}

func TestNotificationFromError(t *testing.T) {
	n := NotificationFromError(errors.New("gateway failure"))

	require.Len(t, n.Errors(), 1)
	assert.Equal(t, "gateway failure", n.FirstError())
	assert.EqualError(t, n.Cause(), "gateway failure")
}

func TestNotification_ValidationHasNoCause(t *testing.T) {
	n := NotificationWith(ErrMsgNameNull)

	assert.NoError(t, n.Cause())
}

func TestNotification_ErrorsReturnsCopy(t *testing.T) {
	n := NewNotification()
	_, _ = n.Append(ErrMsgNameNull)
	_, _ = n.Append(ErrMsgNameEmpty)

	errs := n.Errors()
	errs[0], errs[1] = errs[1], errs[0]
	errs[0] = NewErrorMessage("tampered")

	assert.Equal(t, []ErrorMessage{ErrMsgNameNull, ErrMsgNameEmpty}, n.Errors())
	assert.Equal(t, "name must not be null", n.FirstError())
}
