package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
)

// findCategory разбирает идентификатор и загружает категорию; отсутствие — KindNotFound.
func findCategory(ctx context.Context, gateway CategoryGateway, rawID string) (*domain.Category, error) {
	const op = "usecase.findCategory"

	id, err := domain.CategoryIDFrom(rawID)
	if err != nil {
		return nil, notFound(rawID)
	}

	category, err := gateway.FindByID(ctx, id)
	if err != nil {
		if isContextError(err) {
			return nil, e.Wrap(op, err)
		}

		return nil, domain.NewInfrastructureError(e.Wrap(op, err))
	}

	if category == nil {
		return nil, notFound(rawID)
	}

	return category, nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
