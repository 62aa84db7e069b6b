package request

type CreateRoomRequest struct {
	Number            string `json:"number" binding:"required"`
	RoomType          string `json:"room_type" binding:"required"`
	Capacity          int    `json:"capacity" binding:"required,min=1"`
	RateCentsPerNight int64  `json:"rate_cents_per_night" binding:"required,min=0"`
}

type UpdateRoomRequest struct {
	RoomType          string `json:"room_type" binding:"required"`
	Capacity          int    `json:"capacity" binding:"required,min=1"`
	RateCentsPerNight int64  `json:"rate_cents_per_night" binding:"required,min=0"`
}
