package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
)

// UpdateCategoryUseCase изменяет существующую категорию.
type UpdateCategoryUseCase struct {
	gateway CategoryGateway
}

func NewUpdateCategoryUC(gateway CategoryGateway) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{gateway: gateway}
}

// Execute: отсутствующая категория всегда возвращается как error (KindNotFound),
// ошибки валидации и сбой gateway.Update — как Fail.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd *UpdateCategoryCommand) (Result[*UpdateCategoryOutput], error) {
	const op = "UpdateCategoryUseCase.Execute"

	category, err := findCategory(ctx, uc.gateway, cmd.ID)
	if err != nil {
		return Result[*UpdateCategoryOutput]{}, err
	}

	category.Update(cmd.Name, cmd.Description, cmd.IsActive)

	notification := domain.NewNotification()
	if err := category.Validate(notification); err != nil {
		return Result[*UpdateCategoryOutput]{}, e.Wrap(op, err)
	}

	if notification.HasErrors() {
		return Fail[*UpdateCategoryOutput](notification), nil
	}

	updated, err := uc.gateway.Update(ctx, category)
	if err != nil {
		if isContextError(err) {
			return Result[*UpdateCategoryOutput]{}, e.Wrap(op, err)
		}

		// категория удалена между чтением и записью
		if errors.Is(err, e.ErrCategoryNotFound) {
			return Result[*UpdateCategoryOutput]{}, notFound(cmd.ID)
		}

		return Fail[*UpdateCategoryOutput](domain.NotificationFromError(err)), nil
	}

	return Ok(NewUpdateCategoryOutput(updated)), nil
}

func notFound(rawID string) *domain.Error {
	return domain.NewNotFoundError(fmt.Sprintf("category not found for id %s", rawID))
}
