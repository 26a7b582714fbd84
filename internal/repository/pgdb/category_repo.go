package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/events"
	"github.com/DRSN-tech/catalog-admin/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/DRSN-tech/catalog-admin/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = "id, name, description, is_active, created_at, updated_at, deleted_at"

// CategoryRepo реализует CategoryGateway поверх PostgreSQL.
// Каждое изменение категории в той же транзакции записывает событие в outbox.
type CategoryRepo struct {
	pool   *pgxpool.Pool
	conv   converter.CategoryConverter
	outbox usecase.OutboxRepository
	logger logger.Logger
}

func NewCategoryRepo(
	pool *pgxpool.Pool,
	conv converter.CategoryConverter,
	outbox usecase.OutboxRepository,
	logger logger.Logger,
) *CategoryRepo {
	return &CategoryRepo{
		pool:   pool,
		conv:   conv,
		outbox: outbox,
		logger: logger,
	}
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	const op = "CategoryRepo.Create"

	var created *domain.Category
	err := c.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		model := c.conv.ToModel(category)
		query := `
			INSERT INTO categories (` + categoryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + categoryColumns

		stored, err := scanCategory(tx.QueryRow(ctx, query,
			model.ID,
			model.Name,
			model.Description,
			model.IsActive,
			model.CreatedAt,
			model.UpdatedAt,
			model.DeletedAt,
		))
		if err != nil {
			if postgresDuplicate(err) {
				return fmt.Errorf("category with id %s already exists", category.ID)
			}

			return err
		}

		created = c.conv.ToEntity(stored)
		return c.publish(ctx, usecase.CategoryCreated, created.ID, created)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// Update возвращает e.ErrCategoryNotFound, если строки уже нет.
func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	const op = "CategoryRepo.Update"

	var updated *domain.Category
	err := c.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		model := c.conv.ToModel(category)
		query := `
			UPDATE categories
			SET name = $2, description = $3, is_active = $4, updated_at = $5, deleted_at = $6
			WHERE id = $1
			RETURNING ` + categoryColumns

		stored, err := scanCategory(tx.QueryRow(ctx, query,
			model.ID,
			model.Name,
			model.Description,
			model.IsActive,
			model.UpdatedAt,
			model.DeletedAt,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return e.ErrCategoryNotFound
			}

			return err
		}

		updated = c.conv.ToEntity(stored)
		return c.publish(ctx, usecase.CategoryUpdated, updated.ID, updated)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// DeleteByID удаляет строку; событие пишется только если строка существовала.
func (c *CategoryRepo) DeleteByID(ctx context.Context, id domain.CategoryID) error {
	const op = "CategoryRepo.DeleteByID"

	err := c.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id.UUID())
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return nil
		}

		return c.publish(ctx, usecase.CategoryDeleted, id, nil)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CategoryRepo) FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	const op = "CategoryRepo.FindByID"

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	model, err := scanCategory(c.pool.QueryRow(ctx, query, id.UUID()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(op, err)
	}

	return c.conv.ToEntity(model), nil
}

// FindAll ищет по вхождению terms в имя или описание без учёта регистра.
func (c *CategoryRepo) FindAll(ctx context.Context, q domain.CategorySearchQuery) (*domain.Pagination[*domain.Category], error) {
	const op = "CategoryRepo.FindAll"

	where := ""
	args := []any{}
	if q.Terms != "" {
		where = `WHERE name ILIKE $1 OR description ILIKE $1`
		args = append(args, likePattern(q.Terms))
	}

	var total int64
	if err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories `+where, args...).Scan(&total); err != nil {
		return nil, e.Wrap(op, err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM categories %s %s LIMIT $%d OFFSET $%d`,
		categoryColumns, where, orderClause(q.Sort, q.Direction), len(args)+1, len(args)+2,
	)
	args = append(args, q.PerPage, offset(q.Page, q.PerPage))

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer rows.Close()

	var models []*converter.CategoryModel
	for rows.Next() {
		model, err := scanCategory(rows)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(op, err)
	}

	return domain.NewPagination(q.Page, q.PerPage, total, c.conv.ToArrEntity(models)), nil
}

// inTx выполняет fn в транзакции; pgx.Tx также доступна через tr.TxFromCtx.
func (c *CategoryRepo) inTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) (err error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.pool)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				c.logger.Warnf("Failed to rollback category transaction: %v", rbErr)
			}
		}
	}()

	pgxTx, ok := any(tx.Transaction()).(pgx.Tx)
	if !ok {
		return e.ErrTransactionNotFound
	}
	ctx = tr.WithTx(ctx, pgxTx)

	if err = fn(ctx, pgxTx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (c *CategoryRepo) publish(ctx context.Context, eventType usecase.OutboxEventType, id domain.CategoryID, category *domain.Category) error {
	eventID := uuid.NewString()

	payload, err := events.NewCategoryEvent(eventID, string(eventType), id, category).Marshal()
	if err != nil {
		return err
	}

	if _, err := c.outbox.Create(ctx, usecase.NewOutboxEvent(eventID, eventType, id.String(), payload)); err != nil {
		return err
	}

	return nil
}

func scanCategory(row pgx.Row) (*converter.CategoryModel, error) {
	var model converter.CategoryModel
	if err := row.Scan(
		&model.ID,
		&model.Name,
		&model.Description,
		&model.IsActive,
		&model.CreatedAt,
		&model.UpdatedAt,
		&model.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &model, nil
}
