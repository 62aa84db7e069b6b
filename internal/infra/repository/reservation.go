package repository

import (
	"context"
	"errors"

	"oceanview/internal/domain/reservation"
	"oceanview/internal/infra"
	"oceanview/internal/infra/db"
	"oceanview/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeForeignKeyViolated = "23503"
	pgErrCodeExclusionViolation = "23P01"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const insertReservationSQL = `
INSERT INTO reservations (
	id, number, guest_id, room_id, check_in, check_out, guests,
	total_cents, discount_cents, tax_cents, final_cents, status, special_requests
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

// Create inserts a reservation. The exclusion constraint on
// (room_id, daterange) for active statuses is the commit-time double-booking
// backstop; a violation surfaces as KindConflict so callers can treat it as a
// retryable booking conflict rather than a validation failure.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertReservationSQL,
		res.ID(),
		res.Number(),
		res.GuestID(),
		res.RoomID(),
		pgconv.DateToPgtype(res.Stay().CheckIn()),
		pgconv.DateToPgtype(res.Stay().CheckOut()),
		res.Guests(),
		res.TotalAmount().Cents(),
		res.DiscountAmount().Cents(),
		res.TaxAmount().Cents(),
		res.FinalAmount().Cents(),
		res.Status().String(),
		pgconv.StringPtrToPgtype(res.SpecialRequests()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgError("failed to create reservation", err)
	}
	return id, nil
}

const findReservationForUpdateSQL = `
SELECT id, number, guest_id, room_id, check_in, check_out, guests,
       total_cents, discount_cents, tax_cents, final_cents, status,
       special_requests, created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE`

// FindByIDForUpdate loads the reservation row under a row lock so a lifecycle
// transition observes a stable source status until its CAS commits.
func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row := tx.QueryRow(ctx, findReservationForUpdateSQL, id)
	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation for update", err)
	}
	return res, nil
}

const casReservationStatusSQL = `
UPDATE reservations
SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2`

// UpdateStatus is a compare-and-swap on (id, expected status). Zero affected
// rows means a concurrent transition won; the caller must fail cleanly
// instead of overwriting it.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, expected, next reservation.Status) error {
	tag, err := tx.Exec(ctx, casReservationStatusSQL, id, expected.String(), next.String())
	if err != nil {
		return wrapPgError("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindStaleStatus)
	}
	return nil
}

const updateReservationStaySQL = `
UPDATE reservations
SET check_in = $2, check_out = $3, guests = $4,
    total_cents = $5, discount_cents = $6, tax_cents = $7, final_cents = $8,
    special_requests = $9, updated_at = now()
WHERE id = $1 AND status = 'PENDING'`

// UpdateStay rewrites the dates, party size and re-priced amounts of a
// reservation that is still PENDING. Amounts always travel with the dates so
// nights and totals cannot go stale relative to each other.
func (r *ReservationRepository) UpdateStay(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	tag, err := tx.Exec(ctx, updateReservationStaySQL,
		res.ID(),
		pgconv.DateToPgtype(res.Stay().CheckIn()),
		pgconv.DateToPgtype(res.Stay().CheckOut()),
		res.Guests(),
		res.TotalAmount().Cents(),
		res.DiscountAmount().Cents(),
		res.TaxAmount().Cents(),
		res.FinalAmount().Cents(),
		pgconv.StringPtrToPgtype(res.SpecialRequests()),
	)
	if err != nil {
		return wrapPgError("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation is no longer pending", nil, infra.KindStaleStatus)
	}
	return nil
}

func wrapPgError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolated:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
