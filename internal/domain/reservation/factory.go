package reservation

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"oceanview/internal/domain/room"
	"oceanview/internal/pkg/clock"

	"github.com/google/uuid"
)

// NumberSuffixSource yields the 4-digit suffix of a reservation number.
// Tests swap in a fixed sequence to provoke collisions on demand.
type NumberSuffixSource func() uint16

// Factory builds new reservations in PENDING status. It owns date validation
// against the current day, pricing, and reservation number generation; it does
// not check availability, which needs the persistence layer and belongs to
// the command.
type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Suffixes        NumberSuffixSource
}

func NewFactory(c clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           c,
		PriceCalculator: priceCalculator,
		Suffixes:        randomSuffix,
	}
}

func randomSuffix() uint16 {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uint16(time.Now().UnixNano() % 10000)
	}
	return binary.BigEndian.Uint16(buf[:])
}

func (f *Factory) CreateReservation(
	roomEntity *room.Room,
	guestID uuid.UUID,
	stay StayPeriod,
	guests int,
	discountCents int64,
	rates Rates,
	specialRequests *string,
) (*Reservation, error) {
	if stay.StartsBefore(clock.Today(f.Clock)) {
		return nil, ErrPastCheckIn
	}
	if !roomEntity.IsBookable() {
		return nil, ErrRoomNotBookable
	}

	quote, err := f.PriceCalculator.Quote(roomEntity.RateCentsPerNight(), stay.Nights(), discountCents, rates)
	if err != nil {
		return nil, err
	}

	return NewReservation(
		f.GenerateNumber(),
		guestID,
		roomEntity.ID(),
		stay,
		guests,
		quote,
		specialRequests,
	)
}

// GenerateNumber issues a human-facing reservation number in the form
// RES-<year>-<4 digits>. The suffix is random; the unique constraint on the
// reservations table is the actual guarantee, and inserts retry on collision.
func (f *Factory) GenerateNumber() string {
	year := f.Clock.Now().UTC().Year()
	return fmt.Sprintf("RES-%d-%04d", year, f.Suffixes()%10000)
}
