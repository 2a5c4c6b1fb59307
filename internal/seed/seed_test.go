package seed

import (
	"context"
	"testing"

	"github.com/eursukkul/reservation-service/internal/models"
	"github.com/eursukkul/reservation-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	repo := repository.NewReservationRepository()
	require.NoError(t, Load(repo))

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 8)

	// The demo set covers every lifecycle status so dashboards have
	// something to show in each tab.
	seen := make(map[models.ReservationStatus]bool)
	for _, r := range all {
		seen[r.Status] = true
		assert.True(t, r.CheckOut.After(r.CheckIn), "%s has invalid stay range", r.ID)
		assert.GreaterOrEqual(t, r.Guests, 1, "%s has invalid guest count", r.ID)
		assert.LessOrEqual(t, r.Payment.RefundedAmount, r.Payment.Amount, "%s over-refunded", r.ID)
	}
	for _, status := range []models.ReservationStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusCheckedIn,
		models.StatusCheckedOut, models.StatusCancelled, models.StatusNoShow,
	} {
		assert.True(t, seen[status], "missing demo reservation with status %s", status)
	}
}

func TestLoad_Twice(t *testing.T) {
	repo := repository.NewReservationRepository()
	require.NoError(t, Load(repo))
	assert.Error(t, Load(repo), "duplicate ids must be rejected")
}
