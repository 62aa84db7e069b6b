//go:build unit || e2e

package builder

import (
	"time"

	domreservation "oceanview/internal/domain/reservation"
	reqdto "oceanview/internal/handler/dto/request"
	"oceanview/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	Number          string
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	RoomNumber      string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalCents      int64
	DiscountCents   int64
	TaxCents        int64
	FinalCents      int64
	Status          domreservation.Status
	SpecialRequests *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	checkIn := time.Date(now.Year()+1, time.January, 15, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		Number:        "RES-2027-0042",
		GuestID:       uuid.New(),
		RoomID:        uuid.New(),
		RoomNumber:    "101",
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 5),
		Guests:        2,
		TotalCents:    75000,
		DiscountCents: 0,
		TaxCents:      7500,
		FinalCents:    86250,
		Status:        domreservation.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	stay, err := domreservation.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	quote := domreservation.PriceQuote{
		Total:    domreservation.NewMoney(b.TotalCents),
		Discount: domreservation.NewMoney(b.DiscountCents),
		Tax:      domreservation.NewMoney(b.TaxCents),
		Final:    domreservation.NewMoney(b.FinalCents),
	}
	return domreservation.NewReservation(b.Number, b.GuestID, b.RoomID, stay, b.Guests, quote, b.SpecialRequests)
}

// BuildReconstructed bypasses factory validation so tests can set any status.
func (b *ReservationBuilder) BuildReconstructed() *domreservation.Reservation {
	stay, _ := domreservation.NewStayPeriod(b.CheckIn, b.CheckOut)
	return domreservation.ReconstructReservation(
		uuid.New(), b.Number, b.GuestID, b.RoomID, stay, b.Guests,
		domreservation.NewMoney(b.TotalCents),
		domreservation.NewMoney(b.DiscountCents),
		domreservation.NewMoney(b.TaxCents),
		domreservation.NewMoney(b.FinalCents),
		b.Status, b.SpecialRequests, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              uuid.New(),
		Number:          b.Number,
		GuestID:         b.GuestID,
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Nights:          int32(b.CheckOut.Sub(b.CheckIn).Hours() / 24),
		Guests:          int32(b.Guests),
		TotalCents:      b.TotalCents,
		DiscountCents:   b.DiscountCents,
		TaxCents:        b.TaxCents,
		FinalCents:      b.FinalCents,
		Status:          b.Status.String(),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:          b.RoomID,
		CheckIn:         b.CheckIn.Format("2006-01-02"),
		CheckOut:        b.CheckOut.Format("2006-01-02"),
		Guests:          b.Guests,
		DiscountCents:   b.DiscountCents,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) WithGuestID(guestID uuid.UUID) *ReservationBuilder {
	b.GuestID = guestID
	return b
}

func (b *ReservationBuilder) WithRoomID(roomID uuid.UUID) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithGuests(guests int) *ReservationBuilder {
	b.Guests = guests
	return b
}

func (b *ReservationBuilder) WithDiscount(discountCents int64) *ReservationBuilder {
	b.DiscountCents = discountCents
	return b
}

func (b *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithSpecialRequests(requests string) *ReservationBuilder {
	b.SpecialRequests = &requests
	return b
}

func (b *ReservationBuilder) AsConfirmed() *ReservationBuilder {
	b.Status = domreservation.StatusConfirmed
	return b
}

func (b *ReservationBuilder) AsCheckedIn() *ReservationBuilder {
	b.Status = domreservation.StatusCheckedIn
	return b
}
