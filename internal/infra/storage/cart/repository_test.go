package cart

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Get(t *testing.T) {
	repo, mock := newMockRepository(t)
	expiresAt := time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT service_ids, expires_at FROM selection_carts WHERE session_id = \\$1").
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"service_ids", "expires_at"}).
			AddRow([]byte(`["3","7"]`), expiresAt))

	cart, err := repo.Get(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "7"}, cart.ServiceIDs)
	assert.True(t, cart.ExpiresAt.Equal(expiresAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT service_ids, expires_at FROM selection_carts").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCartNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveUpserts(t *testing.T) {
	repo, mock := newMockRepository(t)
	expiresAt := time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO selection_carts \\(session_id,service_ids,expires_at\\) VALUES \\(\\$1,\\$2,\\$3\\) ON CONFLICT \\(session_id\\) DO UPDATE").
		WithArgs("sess-1", `["3","7"]`, expiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &domain.Cart{
		SessionID:  "sess-1",
		ServiceIDs: []string{"3", "7"},
		ExpiresAt:  expiresAt,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveEmptyCartWritesEmptyArray(t *testing.T) {
	repo, mock := newMockRepository(t)
	expiresAt := time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO selection_carts").
		WithArgs("sess-2", `[]`, expiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), &domain.Cart{SessionID: "sess-2", ExpiresAt: expiresAt}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteExpired(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM selection_carts WHERE expires_at <= \\$1").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
