package commands

import (
	"context"
	"errors"
	"time"

	"oceanview/internal/domain/reservation"
	"oceanview/internal/infra"
	"oceanview/internal/pkg/clock"
	"oceanview/internal/pkg/config"
	"oceanview/internal/pkg/errs"
	"oceanview/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Attempts at inserting with a fresh reservation number before giving up.
const maxNumberRetries = 3

type CreateReservationInput struct {
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	DiscountCents   int64
	SpecialRequests *string
}

type UpdateStayInput struct {
	ReservationID   uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	DiscountCents   int64
	SpecialRequests *string
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (uuid.UUID, error)
	ConfirmReservation(ctx context.Context, id uuid.UUID) error
	CheckInReservation(ctx context.Context, id uuid.UUID) error
	CheckOutReservation(ctx context.Context, id uuid.UUID) error
	CancelReservation(ctx context.Context, id uuid.UUID) error
	UpdatePendingStay(ctx context.Context, in UpdateStayInput) error
}

type bookingCommandsImpl struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	overlap         OverlapChecker
	factory         *reservation.Factory
	rates           reservation.Rates
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewBookingCommands(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	overlap OverlapChecker,
	factory *reservation.Factory,
	pricingCfg config.PricingConfig,
	db *pgxpool.Pool,
	c clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		overlap:         overlap,
		factory:         factory,
		rates: reservation.Rates{
			TaxPercent:           pricingCfg.TaxPercent,
			ServiceChargePercent: pricingCfg.ServiceChargePercent,
		},
		db:    db,
		clock: c,
	}
}

// CreateReservation validates the requested stay, then runs the availability
// check and the insert as one transaction: the room row lock taken before the
// overlap check serializes concurrent writers for the same room, and the
// exclusion constraint rejects anything that slips through at commit.
func (b *bookingCommandsImpl) CreateReservation(ctx context.Context, in CreateReservationInput) (uuid.UUID, error) {
	stay, err := b.validateStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return uuid.Nil, err
	}

	return shared.WithDefaultRetry(ctx, b.db, func(tx pgx.Tx) (uuid.UUID, error) {
		roomEntity, err := b.roomRepo.FindByIDForUpdate(ctx, tx, in.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, errs.ErrRoomNotFound
			}
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		overlaps, err := b.overlap.HasActiveOverlap(ctx, tx, roomEntity.ID(), stay)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if overlaps {
			return uuid.Nil, errs.ErrBookingConflict
		}

		res, err := b.factory.CreateReservation(
			roomEntity, in.GuestID, stay, in.Guests, in.DiscountCents, b.rates, in.SpecialRequests,
		)
		if err != nil {
			return uuid.Nil, mapDomainError(err)
		}

		return b.insertWithNumberRetry(ctx, tx, res)
	})
}

// insertWithNumberRetry re-issues the human-facing number on a duplicate-key
// rejection; the random 4-digit suffix collides occasionally within a year.
// Each attempt runs under a savepoint: a unique violation aborts the
// surrounding transaction otherwise, and the next attempt would be rejected
// with 25P02 before it ever reached the table.
func (b *bookingCommandsImpl) insertWithNumberRetry(ctx context.Context, tx pgx.Tx, res *reservation.Reservation) (uuid.UUID, error) {
	for attempt := 0; ; attempt++ {
		sp, err := tx.Begin(ctx)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		id, err := b.reservationRepo.Create(ctx, sp, res)
		if err == nil {
			if err := sp.Commit(ctx); err != nil {
				return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			return id, nil
		}
		_ = sp.Rollback(ctx)

		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, errs.Mark(err, errs.ErrBookingConflict)
		}
		if infra.IsKind(err, infra.KindDuplicateKey) && attempt < maxNumberRetries {
			res = res.WithNumber(b.factory.GenerateNumber())
			continue
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func (b *bookingCommandsImpl) ConfirmReservation(ctx context.Context, id uuid.UUID) error {
	return b.applyTransition(ctx, id, reservation.ActionConfirm)
}

func (b *bookingCommandsImpl) CheckInReservation(ctx context.Context, id uuid.UUID) error {
	return b.applyTransition(ctx, id, reservation.ActionCheckIn)
}

func (b *bookingCommandsImpl) CheckOutReservation(ctx context.Context, id uuid.UUID) error {
	return b.applyTransition(ctx, id, reservation.ActionCheckOut)
}

func (b *bookingCommandsImpl) CancelReservation(ctx context.Context, id uuid.UUID) error {
	return b.applyTransition(ctx, id, reservation.ActionCancel)
}

// applyTransition performs one lifecycle step. Reservation and room rows are
// locked in that order in every command, the reservation status moves via
// compare-and-swap, and the room side effect joins the same transaction so a
// failure of either leaves both untouched.
func (b *bookingCommandsImpl) applyTransition(ctx context.Context, id uuid.UUID, action reservation.Action) error {
	_, err := shared.WithDefaultRetry(ctx, b.db, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		res, err := b.reservationRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, errs.ErrReservationNotFound
			}
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		roomEntity, err := b.roomRepo.FindByIDForUpdate(ctx, tx, res.RoomID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, errs.ErrRoomNotFound
			}
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		plan, err := reservation.PlanTransition(res, action, roomEntity.Status(), clock.Today(b.clock))
		if err != nil {
			return zero, mapDomainError(err)
		}

		if err := b.reservationRepo.UpdateStatus(ctx, tx, res.ID(), plan.From, plan.To); err != nil {
			if infra.IsKind(err, infra.KindStaleStatus) {
				return zero, errs.ErrInvalidTransition
			}
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if plan.RoomStatus != nil {
			if err := b.roomRepo.UpdateStatus(ctx, tx, roomEntity.ID(), *plan.RoomStatus); err != nil {
				return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		return zero, nil
	})
	return err
}

// UpdatePendingStay moves a reservation that has not been confirmed yet to
// new dates, re-running the availability check and re-pricing against the
// room's current rate. Amounts and dates change together or not at all.
func (b *bookingCommandsImpl) UpdatePendingStay(ctx context.Context, in UpdateStayInput) error {
	stay, err := b.validateStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return err
	}

	_, err = shared.WithDefaultRetry(ctx, b.db, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		res, err := b.reservationRepo.FindByIDForUpdate(ctx, tx, in.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, errs.ErrReservationNotFound
			}
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if res.Status() != reservation.StatusPending {
			return zero, errs.ErrInvalidTransition
		}

		roomEntity, err := b.roomRepo.FindByIDForUpdate(ctx, tx, res.RoomID())
		if err != nil {
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		overlaps, err := b.overlap.HasActiveOverlap(ctx, tx, roomEntity.ID(), stay)
		if err != nil {
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if overlaps {
			return zero, errs.ErrBookingConflict
		}

		quote, err := b.factory.PriceCalculator.Quote(
			roomEntity.RateCentsPerNight(), stay.Nights(), in.DiscountCents, b.rates,
		)
		if err != nil {
			return zero, mapDomainError(err)
		}

		updated := res.WithStay(stay, in.Guests, quote, in.SpecialRequests)
		if err := b.reservationRepo.UpdateStay(ctx, tx, updated); err != nil {
			if infra.IsKind(err, infra.KindStaleStatus) {
				return zero, errs.ErrInvalidTransition
			}
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return zero, nil
	})
	return err
}

func (b *bookingCommandsImpl) validateStay(checkIn, checkOut time.Time) (reservation.StayPeriod, error) {
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return reservation.StayPeriod{}, errs.ErrInvalidStayRange
	}
	if stay.StartsBefore(clock.Today(b.clock)) {
		return reservation.StayPeriod{}, errs.ErrPastCheckIn
	}
	return stay, nil
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrPastCheckIn):
		return errs.ErrPastCheckIn
	case errors.Is(err, reservation.ErrInvalidStayRange):
		return errs.ErrInvalidStayRange
	case errors.Is(err, reservation.ErrRoomNotBookable):
		return errs.ErrRoomNotBookable
	case errors.Is(err, reservation.ErrTransitionNotAllowed):
		return errs.ErrInvalidTransition
	case errors.Is(err, reservation.ErrCheckInTooEarly):
		return errs.ErrCheckInTooEarly
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
