package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func TestRepository_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	attempt := &domain.CheckoutAttempt{ID: "a1", Phase: domain.PhaseAwaitingInvoiceConfirmation}
	require.NoError(t, repo.Create(ctx, attempt))
	assert.ErrorIs(t, repo.Create(ctx, attempt), ErrAttemptExists)

	got, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAwaitingInvoiceConfirmation, got.Phase)

	// копия не влияет на хранилище
	got.Phase = domain.PhaseFailed
	again, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAwaitingInvoiceConfirmation, again.Phase)

	require.NoError(t, repo.Update(ctx, got))
	again, err = repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseFailed, again.Phase)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrAttemptNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &domain.CheckoutAttempt{ID: "missing"}), ErrAttemptNotFound)
}

func TestRepository_Transition(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.Create(ctx, &domain.CheckoutAttempt{ID: "a1", Phase: domain.PhaseAwaitingInvoiceConfirmation}))

	updated, err := repo.Transition(ctx, "a1", domain.PhaseAwaitingInvoiceConfirmation, func(a *domain.CheckoutAttempt) {
		a.Phase = domain.PhasePaymentPending
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PhasePaymentPending, updated.Phase)

	current, err := repo.Transition(ctx, "a1", domain.PhaseAwaitingInvoiceConfirmation, func(a *domain.CheckoutAttempt) {
		a.Phase = domain.PhaseFailed
	})
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	assert.Equal(t, domain.PhasePaymentPending, current.Phase)

	_, err = repo.Transition(ctx, "missing", domain.PhaseAwaitingInvoiceConfirmation, func(*domain.CheckoutAttempt) {})
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestRepository_PurgeFinished(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &domain.CheckoutAttempt{ID: "old-done", Phase: domain.PhaseSucceeded, UpdatedAt: now.Add(-2 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &domain.CheckoutAttempt{ID: "old-failed", Phase: domain.PhaseFailed, UpdatedAt: now.Add(-3 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &domain.CheckoutAttempt{ID: "old-pending", Phase: domain.PhasePaymentPending, UpdatedAt: now.Add(-5 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &domain.CheckoutAttempt{ID: "fresh-done", Phase: domain.PhaseSucceeded, UpdatedAt: now}))

	removed := repo.PurgeFinished(ctx, now.Add(-time.Hour))
	assert.Equal(t, 2, removed)

	_, err := repo.Get(ctx, "old-pending")
	assert.NoError(t, err)
	_, err = repo.Get(ctx, "fresh-done")
	assert.NoError(t, err)
	_, err = repo.Get(ctx, "old-done")
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}
