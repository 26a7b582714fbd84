package converter

import (
	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/google/uuid"
)

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
	ToArrEntity(models []*CategoryModel) []*domain.Category
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func (CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	if entity == nil {
		return nil
	}

	return &CategoryModel{
		ID:          entity.ID.UUID(),
		Name:        entity.NameValue(),
		Description: copyString(entity.Description),
		IsActive:    entity.IsActive,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
		DeletedAt:   entity.DeletedAt,
	}
}

func (CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}

	name := model.Name
	return domain.RestoreCategory(
		domain.CategoryIDFromUUID(model.ID),
		&name,
		copyString(model.Description),
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
		model.DeletedAt,
	)
}

func (c CategoryConverterImpl) ToArrEntity(models []*CategoryModel) []*domain.Category {
	entities := make([]*domain.Category, 0, len(models))
	for _, m := range models {
		entities = append(entities, c.ToEntity(m))
	}

	return entities
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

// ToModel ожидает корректные UUID в EventID и CategoryID; некорректные значения превращаются в uuid.Nil.
func (OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	if entity == nil {
		return nil
	}

	eventID, _ := uuid.Parse(entity.EventID)
	categoryID, _ := uuid.Parse(entity.CategoryID)

	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     eventID,
		EventType:   string(entity.EventType),
		CategoryID:  categoryID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		Attempts:    entity.Attempts,
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	if model == nil {
		return nil
	}

	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID.String(),
		EventType:   usecase.OutboxEventType(model.EventType),
		CategoryID:  model.CategoryID.String(),
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		Attempts:    model.Attempts,
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	entities := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		entities = append(entities, c.ToEntity(m))
	}

	return entities
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s
	return &v
}
