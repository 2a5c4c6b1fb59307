package seed

import (
	"context"
	"log"
	"time"

	"github.com/eursukkul/reservation-service/internal/models"
	"github.com/eursukkul/reservation-service/internal/repository"
)

// Load installs the demo reservation dataset so the API is browsable out
// of the box. IDs are fixed so demo clients can hardcode them.
func Load(repo repository.ReservationRepository) error {
	ctx := context.Background()
	for i := range demoReservations {
		if err := repo.Create(ctx, &demoReservations[i]); err != nil {
			return err
		}
	}
	log.Printf("[Seed] loaded %d demo reservations", len(demoReservations))
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 14, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

var demoReservations = []models.Reservation{
	{
		ID:       "RES-001",
		CheckIn:  date(2026, time.September, 3),
		CheckOut: date(2026, time.September, 6),
		Guests:   2,
		Status:   models.StatusConfirmed,
		Guest: models.GuestInfo{
			FirstName: "Somchai",
			LastName:  "Prasert",
			Email:     "somchai.prasert@example.com",
			Phone:     "+66 81 234 5678",
		},
		Room:    models.RoomInfo{Code: "A-101", Type: "deluxe", Floor: 1, Capacity: 2},
		Payment: models.Payment{Amount: 360, Currency: "USD", Method: "credit_card", Status: models.PaymentPaid, PaidAt: ptr(date(2026, time.August, 20))},

		SpecialRequests: "Late check-in, around 22:00",
		CreatedAt:       date(2026, time.August, 20),
		UpdatedAt:       date(2026, time.August, 20),
	},
	{
		ID:       "RES-002",
		CheckIn:  date(2026, time.September, 5),
		CheckOut: date(2026, time.September, 7),
		Guests:   1,
		Status:   models.StatusPending,
		Guest: models.GuestInfo{
			FirstName: "Maria",
			LastName:  "Gonzalez",
			Email:     "maria.g@example.com",
		},
		Room:      models.RoomInfo{Code: "B-204", Type: "standard", Floor: 2, Capacity: 2},
		Payment:   models.Payment{Amount: 180, Currency: "USD", Method: "bank_transfer", Status: models.PaymentPending},
		CreatedAt: date(2026, time.August, 22),
		UpdatedAt: date(2026, time.August, 22),
	},
	{
		ID:       "RES-003",
		CheckIn:  date(2026, time.August, 28),
		CheckOut: date(2026, time.August, 31),
		Guests:   4,
		Status:   models.StatusCheckedIn,
		Guest: models.GuestInfo{
			FirstName: "Akira",
			LastName:  "Tanaka",
			Email:     "akira.tanaka@example.com",
			Phone:     "+81 90 1234 5678",
		},
		Room:            models.RoomInfo{Code: "C-301", Type: "family_suite", Floor: 3, Capacity: 5},
		Payment:         models.Payment{Amount: 690, Currency: "USD", Method: "credit_card", Status: models.PaymentPaid, PaidAt: ptr(date(2026, time.August, 10))},
		SpecialRequests: "Extra bed for child",
		CreatedAt:       date(2026, time.August, 10),
		UpdatedAt:       date(2026, time.August, 28),
	},
	{
		ID:       "RES-004",
		CheckIn:  date(2026, time.August, 15),
		CheckOut: date(2026, time.August, 18),
		Guests:   2,
		Status:   models.StatusCheckedOut,
		Guest: models.GuestInfo{
			FirstName: "Emma",
			LastName:  "Larsson",
			Email:     "emma.larsson@example.com",
		},
		Room:      models.RoomInfo{Code: "A-102", Type: "deluxe", Floor: 1, Capacity: 2},
		Payment:   models.Payment{Amount: 420, Currency: "USD", Method: "credit_card", Status: models.PaymentPaid, PaidAt: ptr(date(2026, time.August, 1))},
		CreatedAt: date(2026, time.August, 1),
		UpdatedAt: date(2026, time.August, 18),
	},
	{
		ID:       "RES-005",
		CheckIn:  date(2026, time.September, 10),
		CheckOut: date(2026, time.September, 12),
		Guests:   2,
		Status:   models.StatusCancelled,
		Guest: models.GuestInfo{
			FirstName: "Lucas",
			LastName:  "Moreau",
			Email:     "lucas.moreau@example.com",
		},
		Room: models.RoomInfo{Code: "B-210", Type: "standard", Floor: 2, Capacity: 2},
		Payment: models.Payment{
			Amount: 200, Currency: "USD", Method: "credit_card",
			Status:         models.PaymentRefunded,
			RefundedAmount: 200,
			PaidAt:         ptr(date(2026, time.August, 5)),
			RefundedAt:     ptr(date(2026, time.August, 25)),
		},
		CancellationReason: "Change of travel plans",
		CreatedAt:          date(2026, time.August, 5),
		UpdatedAt:          date(2026, time.August, 25),
		CancelledAt:        ptr(date(2026, time.August, 25)),
	},
	{
		ID:       "RES-006",
		CheckIn:  date(2026, time.August, 25),
		CheckOut: date(2026, time.August, 26),
		Guests:   1,
		Status:   models.StatusNoShow,
		Guest: models.GuestInfo{
			FirstName: "David",
			LastName:  "Okafor",
			Email:     "d.okafor@example.com",
		},
		Room:      models.RoomInfo{Code: "D-401", Type: "penthouse", Floor: 4, Capacity: 4},
		Payment:   models.Payment{Amount: 850, Currency: "USD", Method: "on_site", Status: models.PaymentOnSite},
		CreatedAt: date(2026, time.August, 12),
		UpdatedAt: date(2026, time.August, 26),
	},
	{
		ID:       "RES-007",
		CheckIn:  date(2026, time.September, 1),
		CheckOut: date(2026, time.September, 4),
		Guests:   3,
		Status:   models.StatusConfirmed,
		Guest: models.GuestInfo{
			FirstName: "Priya",
			LastName:  "Sharma",
			Email:     "priya.sharma@example.com",
			Phone:     "+91 98765 43210",
		},
		Room: models.RoomInfo{Code: "C-305", Type: "family_suite", Floor: 3, Capacity: 5},
		Payment: models.Payment{
			Amount: 540, Currency: "USD", Method: "credit_card",
			Status:         models.PaymentPartialRefund,
			RefundedAmount: 120,
			PaidAt:         ptr(date(2026, time.August, 15)),
			RefundedAt:     ptr(date(2026, time.August, 23)),
		},
		SpecialRequests: "High floor preferred",
		CreatedAt:       date(2026, time.August, 15),
		UpdatedAt:       date(2026, time.August, 23),
	},
	{
		ID:       "RES-008",
		CheckIn:  date(2026, time.September, 20),
		CheckOut: date(2026, time.September, 21),
		Guests:   2,
		Status:   models.StatusPending,
		Guest: models.GuestInfo{
			FirstName: "Anna",
			LastName:  "Kovacs",
			Email:     "anna.kovacs@example.com",
		},
		Room:      models.RoomInfo{Code: "A-105", Type: "deluxe", Floor: 1, Capacity: 2},
		Payment:   models.Payment{Amount: 140, Currency: "USD", Method: "bank_transfer", Status: models.PaymentFailed},
		CreatedAt: date(2026, time.August, 27),
		UpdatedAt: date(2026, time.August, 27),
	},
}
