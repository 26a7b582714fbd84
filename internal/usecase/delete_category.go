package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
)

// DeleteCategoryUseCase физически удаляет категорию. Удаление несуществующей категории не является ошибкой.
type DeleteCategoryUseCase struct {
	gateway CategoryGateway
}

func NewDeleteCategoryUC(gateway CategoryGateway) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{gateway: gateway}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, rawID string) error {
	const op = "DeleteCategoryUseCase.Execute"

	id, err := domain.CategoryIDFrom(rawID)
	if err != nil {
		return notFound(rawID)
	}

	if err := uc.gateway.DeleteByID(ctx, id); err != nil {
		if isContextError(err) {
			return e.Wrap(op, err)
		}

		return domain.NewInfrastructureError(e.Wrap(op, err))
	}

	return nil
}
