package pgdb

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/DRSN-tech/catalog-admin/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OutboxChannel — канал LISTEN/NOTIFY, в который сообщается о новых событиях.
const OutboxChannel = "outbox_pending"

type OutboxEventRepo struct {
	pool        *pgxpool.Pool
	conv        converter.OutboxEventConverter
	maxAttempts int
}

// NewOutboxEventRepo: после maxAttempts неудачных публикаций событие больше не выбирается.
func NewOutboxEventRepo(pool *pgxpool.Pool, conv converter.OutboxEventConverter, maxAttempts int) *OutboxEventRepo {
	return &OutboxEventRepo{
		pool:        pool,
		conv:        conv,
		maxAttempts: maxAttempts,
	}
}

// Create работает только внутри транзакции, положенной в контекст через tr.WithTx.
func (o *OutboxEventRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(event)
	query := `
		INSERT INTO outbox_events (
			event_id,
			event_type,
			category_id,
			payload,
			status,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.EventID,
		model.EventType,
		model.CategoryID,
		model.Payload,
		model.Status,
		model.CreatedAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: event with id %s already exists", whereami.WhereAmI(), event.EventID)
		}

		return nil, fmt.Errorf("%s: failed to insert event: %w", whereami.WhereAmI(), err)
	}

	_, err = tx.Exec(ctx, "NOTIFY "+OutboxChannel+";")
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}

// GetAndMarkAsProcessing забирает пачку событий в работу. Событие, зависшее в processing
// (worker упал после выборки), возвращается в выборку через минуту.
func (o *OutboxEventRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) (_ []*usecase.OutboxEvent, err error) {
	tx, err := o.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", whereami.WhereAmI(), err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	query := `
		UPDATE outbox_events
		SET status = $1, processing_started_at = now()
		WHERE id IN (
			SELECT id FROM outbox_events
			WHERE attempts < $4
			  AND (status = $2 OR (status = $1 AND processing_started_at < now() - interval '1 minute'))
			ORDER BY created_at, id
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, event_id, event_type, category_id, payload, status, attempts, created_at, processed_at
	`

	rows, err := tx.Query(ctx, query, usecase.Processing, usecase.Pending, limit, o.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query pending events: %w", whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.OutboxEventModel
	for rows.Next() {
		var model converter.OutboxEventModel

		if err = rows.Scan(
			&model.ID,
			&model.EventID,
			&model.EventType,
			&model.CategoryID,
			&model.Payload,
			&model.Status,
			&model.Attempts,
			&model.CreatedAt,
			&model.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iterator error: %w", whereami.WhereAmI(), err)
	}
	rows.Close()

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: failed to commit transaction: %w", whereami.WhereAmI(), err)
	}

	// RETURNING не сохраняет порядок подзапроса
	slices.SortFunc(models, func(a, b *converter.OutboxEventModel) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return o.conv.ToArrEntity(models), nil
}

func (o *OutboxEventRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	query := `
		UPDATE outbox_events
		SET status = $1, processed_at = NOW()
		WHERE id = $2 AND status = $3
	`

	// 0 затронутых строк: событие уже обработал другой worker
	if _, err := o.pool.Exec(ctx, query, usecase.Processed, id, usecase.Processing); err != nil {
		return fmt.Errorf("%s: failed to mark event %d as processed: %w", whereami.WhereAmI(), id, err)
	}

	return nil
}

// MarkAsFailed возвращает событие в pending и увеличивает счётчик попыток.
func (o *OutboxEventRepo) MarkAsFailed(ctx context.Context, id int64) error {
	query := `
		UPDATE outbox_events
		SET status = $1, attempts = attempts + 1, processing_started_at = NULL
		WHERE id = $2 AND status = $3
	`

	if _, err := o.pool.Exec(ctx, query, usecase.Pending, id, usecase.Processing); err != nil {
		return fmt.Errorf("%s: failed to mark event %d as failed: %w", whereami.WhereAmI(), id, err)
	}

	return nil
}

func (o *OutboxEventRepo) Release(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE outbox_events
		SET status = $1, processing_started_at = NULL
		WHERE id = ANY($2) AND status = $3
	`

	if _, err := o.pool.Exec(ctx, query, usecase.Pending, ids, usecase.Processing); err != nil {
		return fmt.Errorf("%s: failed to release events %v: %w", whereami.WhereAmI(), ids, err)
	}

	return nil
}

func (o *OutboxEventRepo) MarkAsDead(ctx context.Context, id int64) error {
	query := `
		UPDATE outbox_events
		SET status = $1, attempts = attempts + 1, processing_started_at = NULL
		WHERE id = $2 AND status = $3
	`

	if _, err := o.pool.Exec(ctx, query, usecase.Dead, id, usecase.Processing); err != nil {
		return fmt.Errorf("%s: failed to mark event %d as dead: %w", whereami.WhereAmI(), id, err)
	}

	return nil
}
