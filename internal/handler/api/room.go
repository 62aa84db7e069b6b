package api

import (
	"net/http"

	"oceanview/internal/domain/room"
	reqdto "oceanview/internal/handler/dto/request"
	resdto "oceanview/internal/handler/dto/response"
	"oceanview/internal/usecase/commands"
	"oceanview/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
		availability: availability,
	}
}

// @Summary List rooms
// @Description List all rooms, optionally filtered by status
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param status query string false "Room status filter"
// @Success 200 {array} resdto.RoomResponse
// @Failure 401 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var (
		views []*queries.RoomView
		err   error
	)
	if statusStr := c.Query("status"); statusStr != "" {
		views, err = h.roomQueries.ListByStatus(c.Request.Context(), room.Status(statusStr))
	} else {
		views, err = h.roomQueries.ListAll(c.Request.Context())
	}
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Search available rooms
// @Description List rooms free for the whole requested stay, ordered by room number
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param room_type query string false "Room type filter"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rooms/available [get]
func (h *RoomHandler) SearchAvailable(c *gin.Context) {
	var req reqdto.SearchAvailableRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "check_in and check_out are required",
		})
		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must be in YYYY-MM-DD format",
		})
		return
	}

	var roomType *room.Type
	if req.RoomType != nil && *req.RoomType != "" {
		t := room.Type(*req.RoomType)
		roomType = &t
	}

	views, err := h.availability.SearchAvailable(c.Request.Context(), queries.SearchAvailableInput{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomType: roomType,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Description Get room by ID
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Create room
// @Description Register a new room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.CreateRoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.roomCommands.CreateRoom(c.Request.Context(), commands.CreateRoomInput{
		Number:            req.Number,
		RoomType:          room.Type(req.RoomType),
		Capacity:          req.Capacity,
		RateCentsPerNight: req.RateCentsPerNight,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRoomResponse{ID: id})
}

// @Summary Update room
// @Description Change a room's type, capacity or nightly rate
// @Tags rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room attributes"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.roomCommands.UpdateRoom(c.Request.Context(), commands.UpdateRoomInput{
		RoomID:            id,
		RoomType:          room.Type(req.RoomType),
		Capacity:          req.Capacity,
		RateCentsPerNight: req.RateCentsPerNight,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Start maintenance
// @Description Take an AVAILABLE room out of service
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id}/maintenance [post]
func (h *RoomHandler) StartMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.roomCommands.StartMaintenance(c.Request.Context(), id); err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary End maintenance
// @Description Return a MAINTENANCE room to service
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id}/maintenance [delete]
func (h *RoomHandler) EndMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.roomCommands.EndMaintenance(c.Request.Context(), id); err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
