package response

import (
	"time"

	"oceanview/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID                uuid.UUID `json:"id"`
	Number            string    `json:"number"`
	RoomType          string    `json:"roomType"`
	Capacity          int32     `json:"capacity"`
	RateCentsPerNight int64     `json:"rateCentsPerNight"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CreateRoomResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:                v.ID,
		Number:            v.Number,
		RoomType:          v.RoomType,
		Capacity:          v.Capacity,
		RateCentsPerNight: v.RateCentsPerNight,
		Status:            v.Status,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromRoomViews(vs []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(vs))
	for i, v := range vs {
		out[i] = FromRoomView(v)
	}
	return out
}
