package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
)

// CategoryUC объединяет сценарии администрирования категорий для слоя доставки.
type CategoryUC interface {
	CreateCategory(ctx context.Context, cmd *CreateCategoryCommand) (Result[*CreateCategoryOutput], error)
	UpdateCategory(ctx context.Context, cmd *UpdateCategoryCommand) (Result[*UpdateCategoryOutput], error)
	GetCategory(ctx context.Context, id string) (*CategoryOutput, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context, query domain.CategorySearchQuery) (*domain.Pagination[CategoryListOutput], error)
}
