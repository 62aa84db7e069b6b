package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Room errors
	ErrRoomNotFound      = errors.New("room not found")
	ErrDuplicateRoom     = errors.New("room number already exists")
	ErrRoomNotBookable   = errors.New("room is not bookable")
	ErrInvalidRoomType   = errors.New("invalid room type")
	ErrInvalidRoomStatus = errors.New("invalid room status")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPastCheckIn         = errors.New("check-in date is in the past")
	ErrInvalidStayRange    = errors.New("check-out date must be after check-in date")
	ErrBookingConflict     = errors.New("room already booked for the requested dates")
	ErrInvalidTransition   = errors.New("reservation is not in a state that allows this transition")
	ErrCheckInTooEarly     = errors.New("check-in date has not been reached")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
