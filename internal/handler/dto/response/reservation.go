package response

import (
	"time"

	"oceanview/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	Number          string    `json:"number"`
	GuestID         uuid.UUID `json:"guestId"`
	RoomID          uuid.UUID `json:"roomId"`
	RoomNumber      string    `json:"roomNumber"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	Nights          int32     `json:"nights"`
	Guests          int32     `json:"guests"`
	TotalCents      int64     `json:"totalCents"`
	DiscountCents   int64     `json:"discountCents"`
	TaxCents        int64     `json:"taxCents"`
	FinalCents      int64     `json:"finalCents"`
	Status          string    `json:"status"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreateReservationResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              v.ID,
		Number:          v.Number,
		GuestID:         v.GuestID,
		RoomID:          v.RoomID,
		RoomNumber:      v.RoomNumber,
		CheckIn:         v.CheckIn.Format("2006-01-02"),
		CheckOut:        v.CheckOut.Format("2006-01-02"),
		Nights:          v.Nights,
		Guests:          v.Guests,
		TotalCents:      v.TotalCents,
		DiscountCents:   v.DiscountCents,
		TaxCents:        v.TaxCents,
		FinalCents:      v.FinalCents,
		Status:          v.Status,
		SpecialRequests: v.SpecialRequests,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}
