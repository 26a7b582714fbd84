package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
)

// CreateCategoryUseCase создаёт категорию: фабрика, валидация в Notification, сохранение через шлюз.
type CreateCategoryUseCase struct {
	gateway CategoryGateway
}

func NewCreateCategoryUC(gateway CategoryGateway) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{gateway: gateway}
}

// Execute возвращает ошибки валидации и сбои шлюза как данные (Fail), а отмену контекста — как error.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd *CreateCategoryCommand) (Result[*CreateCategoryOutput], error) {
	const op = "CreateCategoryUseCase.Execute"

	notification := domain.NewNotification()
	category := domain.NewCategory(cmd.Name, cmd.Description, cmd.IsActive)
	if err := category.Validate(notification); err != nil {
		return Result[*CreateCategoryOutput]{}, e.Wrap(op, err)
	}

	if notification.HasErrors() {
		return Fail[*CreateCategoryOutput](notification), nil
	}

	created, err := uc.gateway.Create(ctx, category)
	if err != nil {
		if isContextError(err) {
			return Result[*CreateCategoryOutput]{}, e.Wrap(op, err)
		}

		return Fail[*CreateCategoryOutput](domain.NotificationFromError(err)), nil
	}

	return Ok(NewCreateCategoryOutput(created)), nil
}
