package dto

import (
	"time"

	"github.com/eursukkul/reservation-service/internal/models"
)

type GuestRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type RoomRequest struct {
	Code     string `json:"code"`
	Type     string `json:"type"`
	Floor    int    `json:"floor"`
	Capacity int    `json:"capacity"`
}

type PaymentRequest struct {
	Amount   float64              `json:"amount"`
	Currency string               `json:"currency"`
	Method   string               `json:"method"`
	Status   models.PaymentStatus `json:"status"`
}

type CreateReservationRequest struct {
	CheckIn         time.Time      `json:"check_in"`
	CheckOut        time.Time      `json:"check_out"`
	Guests          int            `json:"guests"`
	Guest           GuestRequest   `json:"guest"`
	Room            RoomRequest    `json:"room"`
	Payment         PaymentRequest `json:"payment"`
	SpecialRequests string         `json:"special_requests,omitempty"`
}

type TransitionRequest struct {
	Status models.ReservationStatus `json:"status"`
	Reason string                   `json:"reason,omitempty"`
}

type RefundRequest struct {
	Amount float64 `json:"amount"`
}
