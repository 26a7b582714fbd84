package usecase

import (
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
)

// CATEGORY USECASE

// CreateCategoryCommand — запрос на создание категории.
type CreateCategoryCommand struct {
	Name        *string
	Description *string
	IsActive    bool
}

// UpdateCategoryCommand — запрос на изменение существующей категории.
type UpdateCategoryCommand struct {
	ID          string
	Name        *string
	Description *string
	IsActive    bool
}

// CreateCategoryOutput — ссылка на созданную категорию.
type CreateCategoryOutput struct {
	ID domain.CategoryID
}

// UpdateCategoryOutput — ссылка на изменённую категорию.
type UpdateCategoryOutput struct {
	ID domain.CategoryID
}

// CategoryOutput — модель чтения одной категории.
type CategoryOutput struct {
	ID          domain.CategoryID
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// CategoryListOutput — элемент листинга категорий.
type CategoryListOutput struct {
	ID          domain.CategoryID
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
	Dead       OutboxStatus = "dead"
)

type OutboxEventType string

const (
	CategoryCreated OutboxEventType = "category.created"
	CategoryUpdated OutboxEventType = "category.updated"
	CategoryDeleted OutboxEventType = "category.deleted"
)

// OutboxEvent — событие изменения категории, ожидающее публикации в брокер.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	CategoryID  string
	Payload     []byte
	Status      OutboxStatus
	Attempts    int
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	CategoryID string
	EventType  OutboxEventType
	Payload    []byte
}

// MAPPERS

func NewCreateCategoryCommand(name, description *string, isActive bool) *CreateCategoryCommand {
	return &CreateCategoryCommand{
		Name:        name,
		Description: description,
		IsActive:    isActive,
	}
}

func NewUpdateCategoryCommand(id string, name, description *string, isActive bool) *UpdateCategoryCommand {
	return &UpdateCategoryCommand{
		ID:          id,
		Name:        name,
		Description: description,
		IsActive:    isActive,
	}
}

func NewCreateCategoryOutput(category *domain.Category) *CreateCategoryOutput {
	return &CreateCategoryOutput{ID: category.ID}
}

func NewUpdateCategoryOutput(category *domain.Category) *UpdateCategoryOutput {
	return &UpdateCategoryOutput{ID: category.ID}
}

func NewCategoryOutput(category *domain.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:          category.ID,
		Name:        category.NameValue(),
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
		DeletedAt:   category.DeletedAt,
	}
}

func NewCategoryListOutput(category *domain.Category) CategoryListOutput {
	return CategoryListOutput{
		ID:          category.ID,
		Name:        category.NameValue(),
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		DeletedAt:   category.DeletedAt,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, categoryID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:    eventID,
		EventType:  eventType,
		CategoryID: categoryID,
		Payload:    payload,
		Status:     Pending,
		CreatedAt:  time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(event *OutboxEvent) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		CategoryID: event.CategoryID,
		EventType:  event.EventType,
		Payload:    event.Payload,
	}
}
