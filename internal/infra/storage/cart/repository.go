package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const tableName = "selection_carts"

// Repository хранение корзин в PostgreSQL (таблица selection_carts)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория корзин
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает корзину сессии.
// Истечение срока не проверяется, это делает сервис корзины.
func (r *Repository) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	query, args, err := psqlbuilder.Select("service_ids", "expires_at").
		From(tableName).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		rawIDs    []byte
		expiresAt time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&rawIDs, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan cart: %v", ErrScanRow, err)
	}

	ids, err := decodeServiceIDs(rawIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - decode service_ids: %v", ErrScanRow, err)
	}

	return &domain.Cart{
		SessionID:  sessionID,
		ServiceIDs: ids,
		ExpiresAt:  expiresAt,
	}, nil
}

// Save создает или перезаписывает корзину сессии (upsert)
func (r *Repository) Save(ctx context.Context, cart *domain.Cart) error {
	payload, err := encodeServiceIDs(cart.ServiceIDs)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("session_id", "service_ids", "expires_at").
		Values(cart.SessionID, string(payload), cart.ExpiresAt).
		Suffix("ON CONFLICT (session_id) DO UPDATE SET " +
			"service_ids = EXCLUDED.service_ids, " +
			"expires_at = EXCLUDED.expires_at, " +
			"updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет корзину сессии. Отсутствие корзины ошибкой не считается.
func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteExpired удаляет корзины, срок жизни которых истек к моменту now
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
