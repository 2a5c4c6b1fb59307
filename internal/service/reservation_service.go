package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eursukkul/reservation-service/internal/models"
	"github.com/eursukkul/reservation-service/internal/repository"
	"github.com/eursukkul/reservation-service/pkg/rabbitmq"
	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrInvalidAmount       = errors.New("refund amount out of bounds")
	ErrInvalidState        = errors.New("reservation not refundable in its current state")
	ErrInvalidInput        = errors.New("invalid reservation input")
)

// amountEpsilon absorbs float rounding when comparing money values.
const amountEpsilon = 1e-9

type CreateReservationInput struct {
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	Guest           models.GuestInfo
	Room            models.RoomInfo
	Payment         models.Payment
	SpecialRequests string
}

type ReservationService interface {
	ListReservations(ctx context.Context, spec FilterSpec, query string) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id string) (*models.Reservation, error)
	CreateReservation(ctx context.Context, input CreateReservationInput) (*models.Reservation, error)
	TransitionStatus(ctx context.Context, id string, target models.ReservationStatus, reason string) (*models.Reservation, error)
	ProcessRefund(ctx context.Context, id string, amount float64) (*models.Reservation, error)
	GetCounts(ctx context.Context) (Counts, error)
	GetStats(ctx context.Context) (models.ReservationStats, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	publisher *rabbitmq.Publisher
	now       func() time.Time
}

func NewReservationService(repo repository.ReservationRepository, publisher *rabbitmq.Publisher) ReservationService {
	return &reservationService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *reservationService) ListReservations(ctx context.Context, spec FilterSpec, query string) ([]models.Reservation, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(records, spec, query), nil
}

func (s *reservationService) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *reservationService) CreateReservation(ctx context.Context, input CreateReservationInput) (*models.Reservation, error) {
	if !input.CheckOut.After(input.CheckIn) {
		return nil, fmt.Errorf("%w: check_out must be after check_in", ErrInvalidInput)
	}
	if input.Guests < 1 {
		return nil, fmt.Errorf("%w: guests must be at least 1", ErrInvalidInput)
	}
	if input.Payment.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	// Confirmed right away only when payment already went through,
	// otherwise the reservation waits in pending.
	status := models.StatusPending
	if input.Payment.Status == models.PaymentPaid {
		status = models.StatusConfirmed
	}

	now := s.now()
	res := &models.Reservation{
		ID:              newReservationID(),
		CheckIn:         input.CheckIn,
		CheckOut:        input.CheckOut,
		Guests:          input.Guests,
		Status:          status,
		Guest:           input.Guest,
		Room:            input.Room,
		Payment:         input.Payment,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.publish("reservation.created", res)
	return res, nil
}

func (s *reservationService) TransitionStatus(ctx context.Context, id string, target models.ReservationStatus, reason string) (*models.Reservation, error) {
	if !models.ValidStatus(target) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, target)
	}

	res, err := s.repo.Update(ctx, id, func(r *models.Reservation) error {
		if !models.CanTransition(r.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, target)
		}

		now := s.now()
		r.Status = target
		r.UpdatedAt = now
		if target == models.StatusCancelled {
			r.CancelledAt = &now
			r.CancellationReason = reason
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	s.publish("reservation."+string(target), res)
	return res, nil
}

func (s *reservationService) ProcessRefund(ctx context.Context, id string, amount float64) (*models.Reservation, error) {
	res, err := s.repo.Update(ctx, id, func(r *models.Reservation) error {
		if r.Status == models.StatusCancelled {
			return fmt.Errorf("%w: reservation is cancelled", ErrInvalidState)
		}
		if r.Payment.Status != models.PaymentPaid && r.Payment.Status != models.PaymentPartialRefund {
			return fmt.Errorf("%w: payment status is %s", ErrInvalidState, r.Payment.Status)
		}

		remaining := r.Payment.Amount - r.Payment.RefundedAmount
		if amount <= 0 || amount > remaining+amountEpsilon {
			return fmt.Errorf("%w: %.2f not in (0, %.2f]", ErrInvalidAmount, amount, remaining)
		}

		now := s.now()
		r.Payment.RefundedAmount += amount
		if r.Payment.RefundedAmount >= r.Payment.Amount-amountEpsilon {
			r.Payment.RefundedAmount = r.Payment.Amount
			r.Payment.Status = models.PaymentRefunded
		} else {
			r.Payment.Status = models.PaymentPartialRefund
		}
		r.Payment.RefundedAt = &now
		r.UpdatedAt = now
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	s.publish("reservation.refunded", res)
	return res, nil
}

func (s *reservationService) GetCounts(ctx context.Context) (Counts, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return Counts{}, err
	}
	return DeriveCounts(records), nil
}

func (s *reservationService) GetStats(ctx context.Context) (models.ReservationStats, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return models.ReservationStats{}, err
	}
	return ComputeStats(records), nil
}

// publish emits a lifecycle event; failures are logged inside the
// publisher and never fail the operation.
func (s *reservationService) publish(routingKey string, res *models.Reservation) {
	if s.publisher != nil {
		_ = s.publisher.Publish(routingKey, res)
	}
}

func newReservationID() string {
	return "RES-" + strings.ToUpper(uuid.NewString()[:8])
}
