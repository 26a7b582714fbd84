package converter

import (
	"github.com/DRSN-tech/catalog-admin/internal/domain"
)

type CategoryConverter interface {
	ToRedisModel(entity *domain.Category) *CategoryRedisModel
	// ToEntity возвращает ошибку, если в кэше лежит некорректный идентификатор.
	ToEntity(model *CategoryRedisModel) (*domain.Category, error)
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func (CategoryConverterImpl) ToRedisModel(entity *domain.Category) *CategoryRedisModel {
	if entity == nil {
		return nil
	}

	return &CategoryRedisModel{
		ID:          entity.ID.String(),
		Name:        entity.NameValue(),
		Description: entity.Description,
		IsActive:    entity.IsActive,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
		DeletedAt:   entity.DeletedAt,
	}
}

func (CategoryConverterImpl) ToEntity(model *CategoryRedisModel) (*domain.Category, error) {
	if model == nil {
		return nil, nil
	}

	id, err := domain.CategoryIDFrom(model.ID)
	if err != nil {
		return nil, err
	}

	name := model.Name
	return domain.RestoreCategory(
		id,
		&name,
		model.Description,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
		model.DeletedAt,
	), nil
}
