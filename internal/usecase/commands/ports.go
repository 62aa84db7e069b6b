package commands

import (
	"context"

	"oceanview/internal/domain/reservation"
	"oceanview/internal/domain/room"
	"oceanview/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports. Implementations take a DBTX so every statement of one
// command joins the same transaction.

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, expected, next reservation.Status) error
	UpdateStay(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status room.Status) error
	Update(ctx context.Context, tx db.DBTX, rm *room.Room) error
}

// OverlapChecker is the single-room availability probe the booking command
// runs under the room row lock.
type OverlapChecker interface {
	HasActiveOverlap(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay reservation.StayPeriod) (bool, error)
}
