package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/stretchr/testify/mock"
)

type gatewayMock struct {
	mock.Mock
}

var _ CategoryGateway = (*gatewayMock)(nil)

func (m *gatewayMock) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	return categoryResult(m.Called(ctx, category), category)
}

func (m *gatewayMock) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	return categoryResult(m.Called(ctx, category), category)
}

func (m *gatewayMock) DeleteByID(ctx context.Context, id domain.CategoryID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *gatewayMock) FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	return categoryResult(m.Called(ctx, id), nil)
}

func (m *gatewayMock) FindAll(ctx context.Context, query domain.CategorySearchQuery) (*domain.Pagination[*domain.Category], error) {
	args := m.Called(ctx, query)
	p, _ := args.Get(0).(*domain.Pagination[*domain.Category])
	return p, args.Error(1)
}

// echo возвращает переданную в шлюз категорию, как это делает реальное хранилище.
func echo(c *domain.Category) *domain.Category {
	return c
}

func categoryResult(args mock.Arguments, in *domain.Category) (*domain.Category, error) {
	switch v := args.Get(0).(type) {
	case func(*domain.Category) *domain.Category:
		return v(in), args.Error(1)
	case *domain.Category:
		return v, args.Error(1)
	default:
		return nil, args.Error(1)
	}
}

func strPtr(s string) *string {
	return &s
}
