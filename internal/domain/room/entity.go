package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber = errors.New("room number cannot be empty")
	ErrInvalidType     = errors.New("invalid room type")
	ErrInvalidStatus   = errors.New("invalid room status")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrNegativeRate    = errors.New("price per night cannot be negative")
)

// Room is the bookable unit. Its status field is a cached projection of the
// reservations currently affecting the room: lifecycle transitions are the
// only writers of the occupancy states (RESERVED, OCCUPIED), back office may
// only toggle AVAILABLE and MAINTENANCE.
type Room struct {
	id                uuid.UUID
	number            string
	roomType          Type
	capacity          int
	rateCentsPerNight int64
	status            Status
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRoom(number string, roomType Type, capacity int, rateCentsPerNight int64) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if rateCentsPerNight < 0 {
		return nil, ErrNegativeRate
	}

	return &Room{
		id:                uuid.New(),
		number:            number,
		roomType:          roomType,
		capacity:          capacity,
		rateCentsPerNight: rateCentsPerNight,
		status:            StatusAvailable,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	roomType Type,
	capacity int,
	rateCentsPerNight int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:                id,
		number:            number,
		roomType:          roomType,
		capacity:          capacity,
		rateCentsPerNight: rateCentsPerNight,
		status:            status,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// WithAttributes returns a copy with new descriptive attributes. Number and
// status are deliberately not editable here.
func (r *Room) WithAttributes(roomType Type, capacity int, rateCentsPerNight int64) (*Room, error) {
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if rateCentsPerNight < 0 {
		return nil, ErrNegativeRate
	}

	clone := *r
	clone.roomType = roomType
	clone.capacity = capacity
	clone.rateCentsPerNight = rateCentsPerNight
	return &clone, nil
}

// IsBookable reports whether new reservations may target the room at all.
// Rooms under maintenance never appear in availability results regardless of
// overlapping reservations.
func (r *Room) IsBookable() bool {
	return r.status != StatusMaintenance
}

func (r *Room) ID() uuid.UUID            { return r.id }
func (r *Room) Number() string           { return r.number }
func (r *Room) RoomType() Type           { return r.roomType }
func (r *Room) Capacity() int            { return r.capacity }
func (r *Room) RateCentsPerNight() int64 { return r.rateCentsPerNight }
func (r *Room) Status() Status           { return r.status }
func (r *Room) CreatedAt() time.Time     { return r.createdAt }
func (r *Room) UpdatedAt() time.Time     { return r.updatedAt }
