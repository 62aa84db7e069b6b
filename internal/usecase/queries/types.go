package queries

import (
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID                uuid.UUID `json:"id"`
	Number            string    `json:"number"`
	RoomType          string    `json:"room_type"`
	Capacity          int32     `json:"capacity"`
	RateCentsPerNight int64     `json:"rate_cents_per_night"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ReservationView represents read-optimized reservation data joined with the
// room's human-facing number. Nights is derived from the dates at read time
// and never stored.
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	Number          string    `json:"number"`
	GuestID         uuid.UUID `json:"guest_id"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomNumber      string    `json:"room_number"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Nights          int32     `json:"nights"`
	Guests          int32     `json:"guests"`
	TotalCents      int64     `json:"total_cents"`
	DiscountCents   int64     `json:"discount_cents"`
	TaxCents        int64     `json:"tax_cents"`
	FinalCents      int64     `json:"final_cents"`
	Status          string    `json:"status"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
