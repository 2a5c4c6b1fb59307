package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/eursukkul/reservation-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndFindByID(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Reservation{ID: "RES-001", Status: models.StatusPending}))

	got, err := repo.FindByID(ctx, "RES-001")
	require.NoError(t, err)
	assert.Equal(t, "RES-001", got.ID)

	_, err = repo.FindByID(ctx, "RES-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_DuplicateIDRejected(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Reservation{ID: "RES-001"}))
	assert.Error(t, repo.Create(ctx, &models.Reservation{ID: "RES-001"}))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFindAll_PreservesInsertionOrder(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()

	for _, id := range []string{"RES-003", "RES-001", "RES-002"} {
		require.NoError(t, repo.Create(ctx, &models.Reservation{ID: id}))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "RES-003", all[0].ID)
	assert.Equal(t, "RES-001", all[1].ID)
	assert.Equal(t, "RES-002", all[2].ID)
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Reservation{ID: "RES-001", Status: models.StatusPending}))

	got, err := repo.FindByID(ctx, "RES-001")
	require.NoError(t, err)
	got.Status = models.StatusCancelled

	// Mutating the returned record must not leak into the store.
	stored, err := repo.FindByID(ctx, "RES-001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestUpdate_CommitsOnSuccess(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Reservation{ID: "RES-001", Status: models.StatusPending}))

	updated, err := repo.Update(ctx, "RES-001", func(r *models.Reservation) error {
		r.Status = models.StatusConfirmed
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)

	stored, err := repo.FindByID(ctx, "RES-001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
}

func TestUpdate_RollsBackOnError(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Reservation{ID: "RES-001", Status: models.StatusPending, Guests: 2}))

	boom := errors.New("boom")
	_, err := repo.Update(ctx, "RES-001", func(r *models.Reservation) error {
		r.Status = models.StatusCancelled
		r.Guests = 99
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := repo.FindByID(ctx, "RES-001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Equal(t, 2, stored.Guests)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewReservationRepository()

	_, err := repo.Update(context.Background(), "RES-404", func(r *models.Reservation) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrNotFound)
}
