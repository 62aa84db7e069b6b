package queries

import (
	"context"

	"oceanview/internal/domain/room"
	"oceanview/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	GetByNumber(ctx context.Context, number string) (*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
	ListByStatus(ctx context.Context, status room.Status) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	rooms RoomReadStore
}

func NewRoomQueries(rooms RoomReadStore) RoomQueries {
	return &roomQueriesImpl{rooms: rooms}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrRoomNotFound)
	}
	return view, nil
}

func (q *roomQueriesImpl) GetByNumber(ctx context.Context, number string) (*RoomView, error) {
	view, err := q.rooms.FindByNumber(ctx, number)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrRoomNotFound)
	}
	return view, nil
}

func (q *roomQueriesImpl) ListAll(ctx context.Context) ([]*RoomView, error) {
	views, err := q.rooms.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *roomQueriesImpl) ListByStatus(ctx context.Context, status room.Status) ([]*RoomView, error) {
	if !status.IsValid() {
		return nil, errs.Mark(room.ErrInvalidStatus, errs.ErrDomainValidation)
	}
	views, err := q.rooms.ListByStatus(ctx, status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
