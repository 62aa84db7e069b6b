package repository

import (
	"oceanview/internal/domain/reservation"
	"oceanview/internal/domain/room"
	"oceanview/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, guestID, roomID uuid.UUID
		number              string
		checkIn, checkOut   pgtype.Date
		guests              int32
		totalCents          int64
		discountCents       int64
		taxCents            int64
		finalCents          int64
		status              string
		specialRequests     pgtype.Text
		createdAt           pgtype.Timestamptz
		updatedAt           pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &number, &guestID, &roomID, &checkIn, &checkOut, &guests,
		&totalCents, &discountCents, &taxCents, &finalCents, &status,
		&specialRequests, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	stay, err := reservation.NewStayPeriod(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id,
		number,
		guestID,
		roomID,
		stay,
		int(guests),
		reservation.NewMoney(totalCents),
		reservation.NewMoney(discountCents),
		reservation.NewMoney(taxCents),
		reservation.NewMoney(finalCents),
		reservation.Status(status),
		pgconv.StringPtrFromPgtype(specialRequests),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id                   uuid.UUID
		number               string
		roomType             string
		capacity             int32
		rateCents            int64
		status               string
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &number, &roomType, &capacity, &rateCents, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return room.ReconstructRoom(
		id,
		number,
		room.Type(roomType),
		int(capacity),
		rateCents,
		room.Status(status),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
