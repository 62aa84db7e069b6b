package readstore

import (
	"context"

	"oceanview/internal/domain/reservation"
	"oceanview/internal/domain/room"
	"oceanview/internal/infra"
	"oceanview/internal/infra/db"
	"oceanview/internal/pkg/pgconv"
	"oceanview/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomViewColumns = `id, number, room_type, capacity, rate_cents_per_night, status, created_at, updated_at`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomViewColumns+` FROM rooms WHERE id = $1`, id)
	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

func (r *RoomReadStore) FindByNumber(ctx context.Context, number string) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomViewColumns+` FROM rooms WHERE number = $1`, number)
	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by number", err)
	}
	return view, nil
}

func (r *RoomReadStore) ListAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomViewColumns+` FROM rooms ORDER BY number`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return collectRoomViews(rows)
}

func (r *RoomReadStore) ListByStatus(ctx context.Context, status room.Status) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomViewColumns+` FROM rooms WHERE status = $1 ORDER BY number`, status.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms by status", err)
	}
	return collectRoomViews(rows)
}

// searchAvailableSQL excludes rooms under maintenance and rooms with an
// active reservation overlapping the requested half-open range:
// requested.checkIn < existing.check_out AND requested.checkOut > existing.check_in.
// Ordered by room number so repeated searches return identical sequences.
const searchAvailableSQL = `
SELECT ` + roomViewColumns + `
FROM rooms r
WHERE r.status <> 'MAINTENANCE'
  AND ($3::text IS NULL OR r.room_type = $3)
  AND NOT EXISTS (
    SELECT 1 FROM reservations res
    WHERE res.room_id = r.id
      AND res.status IN ('CONFIRMED', 'CHECKED_IN')
      AND $1 < res.check_out AND $2 > res.check_in
  )
ORDER BY r.number`

func (r *RoomReadStore) SearchAvailable(ctx context.Context, stay reservation.StayPeriod, roomType *room.Type) ([]*queries.RoomView, error) {
	var typeArg pgtype.Text
	if roomType != nil {
		typeArg = pgtype.Text{String: roomType.String(), Valid: true}
	}

	rows, err := r.db.Query(ctx, searchAvailableSQL,
		pgconv.DateToPgtype(stay.CheckIn()),
		pgconv.DateToPgtype(stay.CheckOut()),
		typeArg,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}
	return collectRoomViews(rows)
}

const hasOverlapSQL = `
SELECT EXISTS (
	SELECT 1 FROM reservations res
	WHERE res.room_id = $1
	  AND res.status IN ('CONFIRMED', 'CHECKED_IN')
	  AND $2 < res.check_out AND $3 > res.check_in
)`

// HasActiveOverlap runs the single-room overlap check the booking command
// performs under the room row lock before inserting.
func (r *RoomReadStore) HasActiveOverlap(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay reservation.StayPeriod) (bool, error) {
	var overlaps bool
	err := tx.QueryRow(ctx, hasOverlapSQL,
		roomID,
		pgconv.DateToPgtype(stay.CheckIn()),
		pgconv.DateToPgtype(stay.CheckOut()),
	).Scan(&overlaps)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return overlaps, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var (
		view                 queries.RoomView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Number, &view.RoomType, &view.Capacity,
		&view.RateCentsPerNight, &view.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func collectRoomViews(rows pgx.Rows) ([]*queries.RoomView, error) {
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return result, nil
}
