package queries

import (
	"context"
	"time"

	"oceanview/internal/domain/reservation"
	"oceanview/internal/domain/room"
	"oceanview/internal/pkg/clock"
	"oceanview/internal/pkg/errs"
)

type SearchAvailableInput struct {
	CheckIn  time.Time
	CheckOut time.Time
	RoomType *room.Type
}

type AvailabilityQueries interface {
	SearchAvailable(ctx context.Context, in SearchAvailableInput) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	rooms RoomReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(rooms RoomReadStore, c clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, clock: c}
}

// SearchAvailable rejects malformed ranges instead of answering them with an
// empty list; an empty result always means the hotel really is full.
func (a *availabilityQueriesImpl) SearchAvailable(ctx context.Context, in SearchAvailableInput) ([]*RoomView, error) {
	stay, err := reservation.NewStayPeriod(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.ErrInvalidStayRange
	}
	if stay.StartsBefore(clock.Today(a.clock)) {
		return nil, errs.ErrPastCheckIn
	}
	if in.RoomType != nil && !in.RoomType.IsValid() {
		return nil, errs.Mark(room.ErrInvalidType, errs.ErrDomainValidation)
	}

	views, err := a.rooms.SearchAvailable(ctx, stay, in.RoomType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
