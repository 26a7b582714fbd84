package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
)

// CategoryUseCase реализует CategoryUC поверх отдельных сценариев.
type CategoryUseCase struct {
	create *CreateCategoryUseCase
	update *UpdateCategoryUseCase
	get    *GetCategoryUseCase
	del    *DeleteCategoryUseCase
	list   *ListCategoriesUseCase
}

var _ CategoryUC = (*CategoryUseCase)(nil)

func NewCategoryUC(gateway CategoryGateway) *CategoryUseCase {
	return &CategoryUseCase{
		create: NewCreateCategoryUC(gateway),
		update: NewUpdateCategoryUC(gateway),
		get:    NewGetCategoryUC(gateway),
		del:    NewDeleteCategoryUC(gateway),
		list:   NewListCategoriesUC(gateway),
	}
}

func (c *CategoryUseCase) CreateCategory(ctx context.Context, cmd *CreateCategoryCommand) (Result[*CreateCategoryOutput], error) {
	return c.create.Execute(ctx, cmd)
}

func (c *CategoryUseCase) UpdateCategory(ctx context.Context, cmd *UpdateCategoryCommand) (Result[*UpdateCategoryOutput], error) {
	return c.update.Execute(ctx, cmd)
}

func (c *CategoryUseCase) GetCategory(ctx context.Context, id string) (*CategoryOutput, error) {
	return c.get.Execute(ctx, id)
}

func (c *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	return c.del.Execute(ctx, id)
}

func (c *CategoryUseCase) ListCategories(ctx context.Context, query domain.CategorySearchQuery) (*domain.Pagination[CategoryListOutput], error) {
	return c.list.Execute(ctx, query)
}
