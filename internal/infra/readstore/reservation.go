package readstore

import (
	"context"
	"time"

	"oceanview/internal/infra"
	"oceanview/internal/infra/db"
	"oceanview/internal/pkg/pgconv"
	"oceanview/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewSQL = `
SELECT res.id, res.number, res.guest_id, res.room_id, r.number AS room_number,
       res.check_in, res.check_out, (res.check_out - res.check_in) AS nights,
       res.guests, res.total_cents, res.discount_cents, res.tax_cents,
       res.final_cents, res.status, res.special_requests,
       res.created_at, res.updated_at
FROM reservations res
JOIN rooms r ON r.id = res.room_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationViewSQL+` WHERE res.id = $1`, id)
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindByNumber(ctx context.Context, number string) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationViewSQL+` WHERE res.number = $1`, number)
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by number", err)
	}
	return view, nil
}

func (s *ReservationReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationViewSQL+` WHERE res.guest_id = $1 ORDER BY res.created_at DESC, res.id`, guestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by guest", err)
	}
	return collectReservationViews(rows)
}

func (s *ReservationReadStore) ListActive(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationViewSQL+` WHERE res.status IN ('CONFIRMED', 'CHECKED_IN') ORDER BY res.check_in, res.id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	return collectReservationViews(rows)
}

// ListArrivalsOn feeds the front-desk dashboard: confirmed reservations whose
// stay starts on the given day.
func (s *ReservationReadStore) ListArrivalsOn(ctx context.Context, day time.Time) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationViewSQL+` WHERE res.status = 'CONFIRMED' AND res.check_in = $1 ORDER BY r.number`, pgconv.DateToPgtype(day))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list arrivals", err)
	}
	return collectReservationViews(rows)
}

// ListDeparturesOn: in-house reservations whose stay ends on the given day.
func (s *ReservationReadStore) ListDeparturesOn(ctx context.Context, day time.Time) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationViewSQL+` WHERE res.status = 'CHECKED_IN' AND res.check_out = $1 ORDER BY r.number`, pgconv.DateToPgtype(day))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list departures", err)
	}
	return collectReservationViews(rows)
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		view                 queries.ReservationView
		checkIn, checkOut    pgtype.Date
		specialRequests      pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Number, &view.GuestID, &view.RoomID, &view.RoomNumber,
		&checkIn, &checkOut, &view.Nights, &view.Guests,
		&view.TotalCents, &view.DiscountCents, &view.TaxCents, &view.FinalCents,
		&view.Status, &specialRequests, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}
