package repository

import (
	"context"

	"oceanview/internal/domain/room"
	"oceanview/internal/infra"
	"oceanview/internal/infra/db"
	"oceanview/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

const insertRoomSQL = `
INSERT INTO rooms (id, number, room_type, capacity, rate_cents_per_night, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertRoomSQL,
		rm.ID(),
		rm.Number(),
		rm.RoomType().String(),
		rm.Capacity(),
		rm.RateCentsPerNight(),
		rm.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgError("failed to create room", err)
	}
	return id, nil
}

const findRoomForUpdateSQL = `
SELECT id, number, room_type, capacity, rate_cents_per_night, status, created_at, updated_at
FROM rooms
WHERE id = $1
FOR UPDATE`

// FindByIDForUpdate locks the room row for the rest of the transaction. The
// booking command takes this lock before the overlap check so two writers for
// the same room serialize on check-then-insert.
func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error) {
	row := tx.QueryRow(ctx, findRoomForUpdateSQL, id)
	rm, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room for update", err)
	}
	return rm, nil
}

const updateRoomStatusSQL = `
UPDATE rooms
SET status = $2, updated_at = now()
WHERE id = $1`

// UpdateStatus applies a lifecycle room side effect. It always rides the same
// transaction as the reservation status CAS.
func (r *RoomRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status room.Status) error {
	tag, err := tx.Exec(ctx, updateRoomStatusSQL, id, status.String())
	if err != nil {
		return wrapPgError("failed to update room status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateRoomSQL = `
UPDATE rooms
SET room_type = $2, capacity = $3, rate_cents_per_night = $4, updated_at = now()
WHERE id = $1`

func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, rm *room.Room) error {
	tag, err := tx.Exec(ctx, updateRoomSQL,
		rm.ID(),
		rm.RoomType().String(),
		rm.Capacity(),
		rm.RateCentsPerNight(),
	)
	if err != nil {
		return wrapPgError("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
