package queries

import (
	"context"

	"oceanview/internal/infra"
	"oceanview/internal/pkg/clock"
	"oceanview/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	GetByNumber(ctx context.Context, number string) (*ReservationView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*ReservationView, error)
	ListActive(ctx context.Context) ([]*ReservationView, error)
	ListArrivalsToday(ctx context.Context) ([]*ReservationView, error)
	ListDeparturesToday(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	clock        clock.Clock
}

func NewReservationQueries(reservations ReservationReadStore, c clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations, clock: c}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrReservationNotFound)
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByNumber(ctx context.Context, number string) (*ReservationView, error) {
	view, err := q.reservations.FindByNumber(ctx, number)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrReservationNotFound)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.reservations.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListActive(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.reservations.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// ListArrivalsToday returns CONFIRMED reservations whose stay starts today,
// the front desk's morning worklist.
func (q *reservationQueriesImpl) ListArrivalsToday(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.reservations.ListArrivalsOn(ctx, clock.Today(q.clock))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// ListDeparturesToday returns CHECKED_IN reservations whose stay ends today.
func (q *reservationQueriesImpl) ListDeparturesToday(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.reservations.ListDeparturesOn(ctx, clock.Today(q.clock))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func mapReadErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
