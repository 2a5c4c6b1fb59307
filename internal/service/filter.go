package service

import (
	"sort"
	"strings"
	"time"

	"github.com/eursukkul/reservation-service/internal/models"
)

type SortKey string

const (
	SortNone      SortKey = ""
	SortCheckIn   SortKey = "check_in"
	SortCreatedAt SortKey = "created_at"
	SortAmount    SortKey = "amount"
)

// FilterSpec narrows the reservation set for display. Every field is
// optional; dimensions combine with AND, values within a dimension with OR.
type FilterSpec struct {
	Statuses        []models.ReservationStatus
	PaymentStatuses []models.PaymentStatus
	RoomTypes       []string
	MinGuests       *int
	MaxGuests       *int
	From            *time.Time
	To              *time.Time
	SortBy          SortKey
	SortDesc        bool
}

// ApplyFilter returns the records matching spec and the free-text query.
// It is a pure function: insertion order is preserved unless a sort key is
// requested, and the input slice is never modified.
func ApplyFilter(records []models.Reservation, spec FilterSpec, query string) []models.Reservation {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Reservation, 0, len(records))
	for _, r := range records {
		if !matchesSpec(&r, spec) {
			continue
		}
		if query != "" && !matchesQuery(&r, query) {
			continue
		}
		out = append(out, r)
	}

	if spec.SortBy != SortNone {
		sortReservations(out, spec.SortBy, spec.SortDesc)
	}
	return out
}

func matchesSpec(r *models.Reservation, spec FilterSpec) bool {
	if len(spec.Statuses) > 0 && !containsStatus(spec.Statuses, r.Status) {
		return false
	}
	if len(spec.PaymentStatuses) > 0 && !containsPaymentStatus(spec.PaymentStatuses, r.Payment.Status) {
		return false
	}
	if len(spec.RoomTypes) > 0 && !containsFold(spec.RoomTypes, r.Room.Type) {
		return false
	}
	if spec.MinGuests != nil && r.Guests < *spec.MinGuests {
		return false
	}
	if spec.MaxGuests != nil && r.Guests > *spec.MaxGuests {
		return false
	}
	// Date range matches any reservation whose stay overlaps [From, To).
	if spec.From != nil && !r.CheckOut.After(*spec.From) {
		return false
	}
	if spec.To != nil && !r.CheckIn.Before(*spec.To) {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring match against guest name,
// email, room code/type and the reservation id.
func matchesQuery(r *models.Reservation, query string) bool {
	fields := []string{
		r.Guest.FirstName,
		r.Guest.LastName,
		r.Guest.Email,
		r.Room.Code,
		r.Room.Type,
		r.ID,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// sortReservations sorts in place, breaking ties by id ascending so the
// result is deterministic regardless of input order.
func sortReservations(records []models.Reservation, key SortKey, desc bool) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]
		var less, equal bool
		switch key {
		case SortCheckIn:
			less, equal = a.CheckIn.Before(b.CheckIn), a.CheckIn.Equal(b.CheckIn)
		case SortCreatedAt:
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		case SortAmount:
			less, equal = a.Payment.Amount < b.Payment.Amount, a.Payment.Amount == b.Payment.Amount
		default:
			return false
		}
		if equal {
			return a.ID < b.ID
		}
		if desc {
			return !less
		}
		return less
	})
}

// Counts summarizes the collection for dashboard tabs.
type Counts struct {
	All      int `json:"all"`
	Active   int `json:"active"`
	Archived int `json:"archived"`
}

// DeriveCounts computes tab counts: active covers pending and confirmed,
// archived covers checked_out and cancelled. checked_in and no_show fall in
// neither bucket, so active+archived can be less than all.
func DeriveCounts(records []models.Reservation) Counts {
	c := Counts{All: len(records)}
	for _, r := range records {
		switch {
		case containsStatus(models.ActiveStatuses, r.Status):
			c.Active++
		case containsStatus(models.ArchivedStatuses, r.Status):
			c.Archived++
		}
	}
	return c
}

// ComputeStats aggregates the full collection from scratch. Revenue counts
// every non-cancelled reservation.
func ComputeStats(records []models.Reservation) models.ReservationStats {
	stats := models.ReservationStats{
		Total:    len(records),
		ByStatus: make(map[models.ReservationStatus]int),
	}
	for _, r := range records {
		stats.ByStatus[r.Status]++
		if r.Status != models.StatusCancelled {
			stats.TotalRevenue += r.Payment.Amount
		}
		if r.Payment.Status == models.PaymentPending {
			stats.PendingPayments++
		}
	}
	return stats
}

func containsStatus(set []models.ReservationStatus, s models.ReservationStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsPaymentStatus(set []models.PaymentStatus, s models.PaymentStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsFold(set []string, s string) bool {
	for _, v := range set {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
