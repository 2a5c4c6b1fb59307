package models

import (
	"time"
)

type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

type PaymentStatus string

const (
	PaymentPaid          PaymentStatus = "paid"
	PaymentPending       PaymentStatus = "pending"
	PaymentFailed        PaymentStatus = "failed"
	PaymentRefunded      PaymentStatus = "refunded"
	PaymentPartialRefund PaymentStatus = "partial_refund"
	PaymentOnSite        PaymentStatus = "on_site_payment"
)

// ActiveStatuses are reservations still awaiting or fulfilling a stay.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// ArchivedStatuses are terminal, no-longer-actionable reservations.
var ArchivedStatuses = []ReservationStatus{
	StatusCheckedOut,
	StatusCancelled,
}

// allowedTransitions defines the reservation lifecycle. Statuses missing
// from the map (checked_out, cancelled, no_show) are terminal.
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

func CanTransition(from, to ReservationStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// GuestInfo is a snapshot of the guest identity taken at creation time, so
// historical reservations keep displaying correctly even if the guest
// record changes later.
type GuestInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// RoomInfo is a snapshot of the booked room, copied at creation time.
type RoomInfo struct {
	Code     string `json:"code"`
	Type     string `json:"type"`
	Floor    int    `json:"floor"`
	Capacity int    `json:"capacity"`
}

type Payment struct {
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	Method         string        `json:"method"`
	Status         PaymentStatus `json:"status"`
	RefundedAmount float64       `json:"refunded_amount,omitempty"`
	PaidAt         *time.Time    `json:"paid_at,omitempty"`
	RefundedAt     *time.Time    `json:"refunded_at,omitempty"`
}

type Reservation struct {
	ID                 string            `json:"id"`
	CheckIn            time.Time         `json:"check_in"`
	CheckOut           time.Time         `json:"check_out"`
	Guests             int               `json:"guests"`
	Status             ReservationStatus `json:"status"`
	Guest              GuestInfo         `json:"guest"`
	Room               RoomInfo          `json:"room"`
	Payment            Payment           `json:"payment"`
	SpecialRequests    string            `json:"special_requests,omitempty"`
	CancellationReason string            `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	CancelledAt        *time.Time        `json:"cancelled_at,omitempty"`
}

// Nights returns the length of stay in whole days, rounding partial days up.
func (r *Reservation) Nights() int {
	d := r.CheckOut.Sub(r.CheckIn)
	if d <= 0 {
		return 0
	}
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// ReservationStats is an aggregate view recomputed from scratch on demand.
type ReservationStats struct {
	Total           int                       `json:"total"`
	ByStatus        map[ReservationStatus]int `json:"by_status"`
	TotalRevenue    float64                   `json:"total_revenue"`
	PendingPayments int                       `json:"pending_payments"`
}
