package usecase

import "context"

type GetCategoryUseCase struct {
	gateway CategoryGateway
}

func NewGetCategoryUC(gateway CategoryGateway) *GetCategoryUseCase {
	return &GetCategoryUseCase{gateway: gateway}
}

func (uc *GetCategoryUseCase) Execute(ctx context.Context, id string) (*CategoryOutput, error) {
	category, err := findCategory(ctx, uc.gateway, id)
	if err != nil {
		return nil, err
	}

	return NewCategoryOutput(category), nil
}
