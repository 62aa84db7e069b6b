//go:build unit || e2e

package builder

import (
	"time"

	domroom "oceanview/internal/domain/room"
	reqdto "oceanview/internal/handler/dto/request"
	"oceanview/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	Number            string
	RoomType          domroom.Type
	Capacity          int
	RateCentsPerNight int64
	Status            domroom.Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		Number:            "101",
		RoomType:          domroom.TypeDouble,
		Capacity:          2,
		RateCentsPerNight: 15000,
		Status:            domroom.StatusAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(b.Number, b.RoomType, b.Capacity, b.RateCentsPerNight)
}

// BuildReconstructed bypasses factory validation so tests can set any status.
func (b *RoomBuilder) BuildReconstructed() *domroom.Room {
	return domroom.ReconstructRoom(
		uuid.New(), b.Number, b.RoomType, b.Capacity, b.RateCentsPerNight,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:                uuid.New(),
		Number:            b.Number,
		RoomType:          b.RoomType.String(),
		Capacity:          int32(b.Capacity),
		RateCentsPerNight: b.RateCentsPerNight,
		Status:            b.Status.String(),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Number:            b.Number,
		RoomType:          b.RoomType.String(),
		Capacity:          b.Capacity,
		RateCentsPerNight: b.RateCentsPerNight,
	}
}

func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) WithRoomType(roomType domroom.Type) *RoomBuilder {
	b.RoomType = roomType
	return b
}

func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	b.Capacity = capacity
	return b
}

func (b *RoomBuilder) WithRate(rateCentsPerNight int64) *RoomBuilder {
	b.RateCentsPerNight = rateCentsPerNight
	return b
}

func (b *RoomBuilder) WithStatus(status domroom.Status) *RoomBuilder {
	b.Status = status
	return b
}

func (b *RoomBuilder) AsUnderMaintenance() *RoomBuilder {
	b.Status = domroom.StatusMaintenance
	return b
}
