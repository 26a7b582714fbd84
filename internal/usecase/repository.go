package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
)

// CategoryGateway — единственная внешняя зависимость ядра: доступ к хранилищу категорий.
type CategoryGateway interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteByID(ctx context.Context, id domain.CategoryID) error
	// FindByID возвращает (nil, nil), если категория не найдена.
	FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error)
	FindAll(ctx context.Context, query domain.CategorySearchQuery) (*domain.Pagination[*domain.Category], error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	MarkAsFailed(ctx context.Context, id int64) error
	// Release возвращает события в pending, не засчитывая попытку.
	Release(ctx context.Context, ids []int64) error
	// MarkAsDead исключает событие из дальнейших попыток публикации.
	MarkAsDead(ctx context.Context, id int64) error
}
