package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/eursukkul/reservation-service/internal/models"
)

var ErrNotFound = errors.New("record not found")

type ReservationRepository interface {
	Create(ctx context.Context, r *models.Reservation) error
	FindByID(ctx context.Context, id string) (*models.Reservation, error)
	FindAll(ctx context.Context) ([]models.Reservation, error)
	// Update applies mutate to the stored reservation under the write lock.
	// The stored record is replaced only if mutate returns nil, so a failed
	// mutation leaves no observable intermediate state.
	Update(ctx context.Context, id string, mutate func(r *models.Reservation) error) (*models.Reservation, error)
	Count(ctx context.Context) (int, error)
}

// memoryReservationRepository holds the canonical reservation collection.
// A slice preserves insertion order for listing; the index map gives O(1)
// lookup by id. Reservations are never deleted, cancelled ones stay
// queryable for history.
type memoryReservationRepository struct {
	mu           sync.RWMutex
	reservations []models.Reservation
	index        map[string]int
}

func NewReservationRepository() ReservationRepository {
	return &memoryReservationRepository{
		index: make(map[string]int),
	}
}

func (r *memoryReservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[res.ID]; exists {
		return fmt.Errorf("reservation %s already exists", res.ID)
	}

	r.reservations = append(r.reservations, *res)
	r.index[res.ID] = len(r.reservations) - 1
	return nil
}

func (r *memoryReservationRepository) FindByID(ctx context.Context, id string) (*models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, ErrNotFound
	}

	res := r.reservations[i]
	return &res, nil
}

func (r *memoryReservationRepository) FindAll(ctx context.Context) ([]models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out, nil
}

func (r *memoryReservationRepository) Update(ctx context.Context, id string, mutate func(res *models.Reservation) error) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, ErrNotFound
	}

	// Mutate a working copy; commit only on success.
	working := r.reservations[i]
	if err := mutate(&working); err != nil {
		return nil, err
	}

	r.reservations[i] = working
	out := working
	return &out, nil
}

func (r *memoryReservationRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reservations), nil
}
