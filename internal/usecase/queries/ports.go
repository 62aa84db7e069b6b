package queries

import (
	"context"
	"time"

	"oceanview/internal/domain/reservation"
	"oceanview/internal/domain/room"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindByNumber(ctx context.Context, number string) (*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
	ListByStatus(ctx context.Context, status room.Status) ([]*RoomView, error)
	SearchAvailable(ctx context.Context, stay reservation.StayPeriod, roomType *room.Type) ([]*RoomView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByNumber(ctx context.Context, number string) (*ReservationView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*ReservationView, error)
	ListActive(ctx context.Context) ([]*ReservationView, error)
	ListArrivalsOn(ctx context.Context, day time.Time) ([]*ReservationView, error)
	ListDeparturesOn(ctx context.Context, day time.Time) ([]*ReservationView, error)
}
