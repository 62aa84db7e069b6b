package commands

import (
	"context"

	"oceanview/internal/domain/room"
	"oceanview/internal/infra"
	"oceanview/internal/pkg/errs"
	"oceanview/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateRoomInput struct {
	Number            string
	RoomType          room.Type
	Capacity          int
	RateCentsPerNight int64
}

type UpdateRoomInput struct {
	RoomID            uuid.UUID
	RoomType          room.Type
	Capacity          int
	RateCentsPerNight int64
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, in CreateRoomInput) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, in UpdateRoomInput) error
	StartMaintenance(ctx context.Context, id uuid.UUID) error
	EndMaintenance(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	roomRepo RoomRepository
	db       *pgxpool.Pool
}

func NewRoomCommands(roomRepo RoomRepository, db *pgxpool.Pool) RoomCommands {
	return &roomCommandsImpl{roomRepo: roomRepo, db: db}
}

func (r *roomCommandsImpl) CreateRoom(ctx context.Context, in CreateRoomInput) (uuid.UUID, error) {
	rm, err := room.NewRoom(in.Number, in.RoomType, in.Capacity, in.RateCentsPerNight)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return shared.RunInTx(ctx, r.db, func(tx pgx.Tx) (uuid.UUID, error) {
		id, err := r.roomRepo.Create(ctx, tx, rm)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return uuid.Nil, errs.ErrDuplicateRoom
			}
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return id, nil
	})
}

// UpdateRoom changes the descriptive attributes of a room. Status is not
// touched here; occupancy states belong to the reservation lifecycle and
// maintenance has its own pair of commands.
func (r *roomCommandsImpl) UpdateRoom(ctx context.Context, in UpdateRoomInput) error {
	_, err := shared.RunInTx(ctx, r.db, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		current, err := r.roomRepo.FindByIDForUpdate(ctx, tx, in.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, errs.ErrRoomNotFound
			}
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		updated, err := current.WithAttributes(in.RoomType, in.Capacity, in.RateCentsPerNight)
		if err != nil {
			return zero, errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := r.roomRepo.Update(ctx, tx, updated); err != nil {
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return zero, nil
	})
	return err
}

func (r *roomCommandsImpl) StartMaintenance(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, room.StatusAvailable, room.StatusMaintenance)
}

func (r *roomCommandsImpl) EndMaintenance(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, room.StatusMaintenance, room.StatusAvailable)
}

// setStatus toggles a room between AVAILABLE and MAINTENANCE. A room that is
// RESERVED or OCCUPIED is owned by an active reservation and may not be pulled
// out from under it.
func (r *roomCommandsImpl) setStatus(ctx context.Context, id uuid.UUID, from, to room.Status) error {
	_, err := shared.RunInTx(ctx, r.db, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		current, err := r.roomRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, errs.ErrRoomNotFound
			}
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if current.Status() != from {
			return zero, errs.ErrInvalidTransition
		}

		if err := r.roomRepo.UpdateStatus(ctx, tx, id, to); err != nil {
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return zero, nil
	})
	return err
}
