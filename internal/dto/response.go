package dto

import (
	"time"

	"github.com/eursukkul/reservation-service/internal/models"
)

type ReservationResponse struct {
	ID                 string                   `json:"id"`
	CheckIn            time.Time                `json:"check_in"`
	CheckOut           time.Time                `json:"check_out"`
	Nights             int                      `json:"nights"`
	Guests             int                      `json:"guests"`
	Status             models.ReservationStatus `json:"status"`
	Guest              models.GuestInfo         `json:"guest"`
	Room               models.RoomInfo          `json:"room"`
	Payment            models.Payment           `json:"payment"`
	SpecialRequests    string                   `json:"special_requests,omitempty"`
	CancellationReason string                   `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
	CancelledAt        *time.Time               `json:"cancelled_at,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                 r.ID,
		CheckIn:            r.CheckIn,
		CheckOut:           r.CheckOut,
		Nights:             r.Nights(),
		Guests:             r.Guests,
		Status:             r.Status,
		Guest:              r.Guest,
		Room:               r.Room,
		Payment:            r.Payment,
		SpecialRequests:    r.SpecialRequests,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		CancelledAt:        r.CancelledAt,
	}
}
