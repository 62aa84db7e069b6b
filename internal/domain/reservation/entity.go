package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount = errors.New("number of guests must be positive")
	ErrRoomNotBookable   = errors.New("room is not open for booking")
)

type Reservation struct {
	id              uuid.UUID
	number          string
	guestID         uuid.UUID
	roomID          uuid.UUID
	stay            StayPeriod
	guests          int
	totalAmount     Money
	discountAmount  Money
	taxAmount       Money
	finalAmount     Money
	status          Status
	specialRequests *string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(
	number string,
	guestID, roomID uuid.UUID,
	stay StayPeriod,
	guests int,
	quote PriceQuote,
	specialRequests *string,
) (*Reservation, error) {
	if guests <= 0 {
		return nil, ErrInvalidGuestCount
	}

	return &Reservation{
		id:              uuid.New(),
		number:          number,
		guestID:         guestID,
		roomID:          roomID,
		stay:            stay,
		guests:          guests,
		totalAmount:     quote.Total,
		discountAmount:  quote.Discount,
		taxAmount:       quote.Tax,
		finalAmount:     quote.Final,
		status:          StatusPending,
		specialRequests: normalizeRequests(specialRequests),
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	number string,
	guestID, roomID uuid.UUID,
	stay StayPeriod,
	guests int,
	totalAmount, discountAmount, taxAmount, finalAmount Money,
	status Status,
	specialRequests *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		number:          number,
		guestID:         guestID,
		roomID:          roomID,
		stay:            stay,
		guests:          guests,
		totalAmount:     totalAmount,
		discountAmount:  discountAmount,
		taxAmount:       taxAmount,
		finalAmount:     finalAmount,
		status:          status,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// WithNumber returns a copy carrying a different human-facing number. Used
// when an insert loses the race on the number's unique index.
func (r *Reservation) WithNumber(number string) *Reservation {
	clone := *r
	clone.number = number
	return &clone
}

// WithStay returns a copy with new dates, party size, amounts and requests.
// Only valid while the reservation is still PENDING; the persistence layer
// enforces that with a status-guarded update.
func (r *Reservation) WithStay(stay StayPeriod, guests int, quote PriceQuote, specialRequests *string) *Reservation {
	clone := *r
	clone.stay = stay
	clone.guests = guests
	clone.totalAmount = quote.Total
	clone.discountAmount = quote.Discount
	clone.taxAmount = quote.Tax
	clone.finalAmount = quote.Final
	clone.specialRequests = normalizeRequests(specialRequests)
	return &clone
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

// CanCheckIn also requires the stay to have started: the front desk may not
// check a guest in before the reserved check-in date.
func (r *Reservation) CanCheckIn(today time.Time) bool {
	return r.status == StatusConfirmed && !today.Before(r.stay.CheckIn())
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) Number() string           { return r.number }
func (r *Reservation) GuestID() uuid.UUID       { return r.guestID }
func (r *Reservation) RoomID() uuid.UUID        { return r.roomID }
func (r *Reservation) Stay() StayPeriod         { return r.stay }
func (r *Reservation) Guests() int              { return r.guests }
func (r *Reservation) Nights() int              { return r.stay.Nights() }
func (r *Reservation) TotalAmount() Money       { return r.totalAmount }
func (r *Reservation) DiscountAmount() Money    { return r.discountAmount }
func (r *Reservation) TaxAmount() Money         { return r.taxAmount }
func (r *Reservation) FinalAmount() Money       { return r.finalAmount }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) SpecialRequests() *string { return r.specialRequests }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }

func normalizeRequests(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
