package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingCategory() *domain.Category {
	return domain.NewCategory(strPtr("Film"), nil, true)
}

func TestUpdateCategory_Valid(t *testing.T) {
	category := existingCategory()
	id := category.ID

	gateway := new(gatewayMock)
	gateway.On("FindByID", mock.Anything, id).Return(category, nil).Once()
	gateway.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.ID == id &&
			c.NameValue() == "Valid Category" &&
			c.DescriptionValue() == "This is a valid category description." &&
			!c.IsActive &&
			c.DeletedAt != nil
	})).Return(echo, nil).Once()

	uc := NewUpdateCategoryUC(gateway)
	res, err := uc.Execute(context.Background(), NewUpdateCategoryCommand(
		id.String(), strPtr("Valid Category"), strPtr("This is a valid category description."), false,
	))

	require.NoError(t, err)
	require.True(t, res.IsOk())
	assert.Equal(t, id, res.Value().ID)
	gateway.AssertExpectations(t)
}

func TestUpdateCategory_InvalidName(t *testing.T) {
	category := existingCategory()

	gateway := new(gatewayMock)
	gateway.On("FindByID", mock.Anything, category.ID).Return(category, nil).Once()

	uc := NewUpdateCategoryUC(gateway)
	res, err := uc.Execute(context.Background(), NewUpdateCategoryCommand(category.ID.String(), strPtr("ab"), nil, true))

	require.NoError(t, err)
	require.False(t, res.IsOk())
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, domain.ErrMsgNameLength, res.Errors()[0])
	gateway.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	id := domain.NewCategoryID()

	gateway := new(gatewayMock)
	gateway.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

	uc := NewUpdateCategoryUC(gateway)
	_, err := uc.Execute(context.Background(), NewUpdateCategoryCommand(id.String(), strPtr("Valid Category"), nil, true))

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.Equal(t, "category not found for id "+id.String(), err.Error())
	gateway.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCategory_MalformedID(t *testing.T) {
	gateway := new(gatewayMock)

	uc := NewUpdateCategoryUC(gateway)
	_, err := uc.Execute(context.Background(), NewUpdateCategoryCommand("42", strPtr("Valid Category"), nil, true))

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.Contains(t, err.Error(), "42")
	gateway.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateCategory_GatewayUpdateFailureIsReported(t *testing.T) {
	category := existingCategory()

	gateway := new(gatewayMock)
	gateway.On("FindByID", mock.Anything, category.ID).Return(category, nil).Once()
	gateway.On("Update", mock.Anything, mock.Anything).Return(nil, errors.New("Gateway failure")).Once()

	uc := NewUpdateCategoryUC(gateway)
	res, err := uc.Execute(context.Background(), NewUpdateCategoryCommand(category.ID.String(), strPtr("Valid Category"), nil, true))

	require.NoError(t, err)
	require.False(t, res.IsOk())
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "Gateway failure", res.Errors()[0].Message)
	gateway.AssertNumberOfCalls(t, "FindByID", 1)
	gateway.AssertNumberOfCalls(t, "Update", 1)
}

func TestUpdateCategory_FindFailurePropagates(t *testing.T) {
	id := domain.NewCategoryID()
	cause := errors.New("connection refused")

	gateway := new(gatewayMock)
	gateway.On("FindByID", mock.Anything, id).Return(nil, cause).Once()

	uc := NewUpdateCategoryUC(gateway)
	_, err := uc.Execute(context.Background(), NewUpdateCategoryCommand(id.String(), strPtr("Valid Category"), nil, true))

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInfrastructure))
	assert.ErrorIs(t, err, cause)
}

func TestUpdateCategory_DeletedBeforeWrite(t *testing.T) {
	category := existingCategory()

	gateway := new(gatewayMock)
	gateway.On("FindByID", mock.Anything, category.ID).Return(category, nil).Once()
	gateway.On("Update", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("CategoryRepo.Update: %w", e.ErrCategoryNotFound)).Once()

	uc := NewUpdateCategoryUC(gateway)
	_, err := uc.Execute(context.Background(), NewUpdateCategoryCommand(category.ID.String(), strPtr("Valid Category"), nil, true))

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
