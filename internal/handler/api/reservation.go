package api

import (
	"context"
	"net/http"

	reqdto "oceanview/internal/handler/dto/request"
	resdto "oceanview/internal/handler/dto/response"
	"oceanview/internal/handler/middleware"
	"oceanview/internal/pkg/errs"
	"oceanview/internal/usecase/commands"
	"oceanview/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	booking            commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(booking commands.BookingCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		booking:            booking,
		reservationQueries: reservationQueries,
	}
}

// @Summary Create reservation
// @Description Create a new reservation in PENDING status
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
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

	id, err := h.booking.CreateReservation(c.Request.Context(), commands.CreateReservationInput{
		GuestID:         guestID,
		RoomID:          req.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		DiscountCents:   req.DiscountCents,
		SpecialRequests: req.GetSpecialRequests(),
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{ID: id})
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !ownsOrStaff(c, view.GuestID) {
		respondReservationNotFound(c)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Get reservation by number
// @Description Get reservation by its human-facing number
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param number path string true "Reservation number"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/number/{number} [get]
func (h *ReservationHandler) GetReservationByNumber(c *gin.Context) {
	view, err := h.reservationQueries.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !ownsOrStaff(c, view.GuestID) {
		respondReservationNotFound(c)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Get own reservations
// @Description Get all reservations for the authenticated guest
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetGuestReservations(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationQueries.ListByGuest(c.Request.Context(), guestID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List active reservations
// @Description List all CONFIRMED and CHECKED_IN reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations/active [get]
func (h *ReservationHandler) GetActiveReservations(c *gin.Context) {
	views, err := h.reservationQueries.ListActive(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List today's arrivals
// @Description List CONFIRMED reservations checking in today
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations/arrivals [get]
func (h *ReservationHandler) GetArrivalsToday(c *gin.Context) {
	views, err := h.reservationQueries.ListArrivalsToday(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List today's departures
// @Description List CHECKED_IN reservations checking out today
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations/departures [get]
func (h *ReservationHandler) GetDeparturesToday(c *gin.Context) {
	views, err := h.reservationQueries.ListDeparturesToday(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Confirm reservation
// @Description Move a PENDING reservation to CONFIRMED and reserve its room
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) ConfirmReservation(c *gin.Context) {
	h.transition(c, h.booking.ConfirmReservation)
}

// @Summary Check in reservation
// @Description Move a CONFIRMED reservation to CHECKED_IN and occupy its room
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckInReservation(c *gin.Context) {
	h.transition(c, h.booking.CheckInReservation)
}

// @Summary Check out reservation
// @Description Move a CHECKED_IN reservation to CHECKED_OUT and free its room
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOutReservation(c *gin.Context) {
	h.transition(c, h.booking.CheckOutReservation)
}

// @Summary Cancel reservation
// @Description Cancel a PENDING or CONFIRMED reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	h.ownerTransition(c, h.booking.CancelReservation)
}

// @Summary Update pending stay
// @Description Change the dates and party size of a PENDING reservation
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateStayRequest true "New stay"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/stay [put]
func (h *ReservationHandler) UpdateStay(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateStayRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
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

	if !h.authorizeOwner(c, id) {
		return
	}

	err = h.booking.UpdatePendingStay(c.Request.Context(), commands.UpdateStayInput{
		ReservationID:   id,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		DiscountCents:   req.DiscountCents,
		SpecialRequests: req.GetSpecialRequests(),
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) transition(c *gin.Context, op func(ctx context.Context, id uuid.UUID) error) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ownerTransition is transition plus an ownership check for guest callers.
func (h *ReservationHandler) ownerTransition(c *gin.Context, op func(ctx context.Context, id uuid.UUID) error) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.authorizeOwner(c, id) {
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// authorizeOwner lets staff act on any reservation; guests only on their own.
// A foreign reservation answers the same 404 as a missing one so guests
// cannot tell which ids exist.
func (h *ReservationHandler) authorizeOwner(c *gin.Context, id uuid.UUID) bool {
	if role, ok := middleware.GetRole(c); ok && role == middleware.RoleStaff {
		return true
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return false
	}
	if !ownsOrStaff(c, view.GuestID) {
		respondReservationNotFound(c)
		return false
	}
	return true
}

func ownsOrStaff(c *gin.Context, owner uuid.UUID) bool {
	if role, ok := middleware.GetRole(c); ok && role == middleware.RoleStaff {
		return true
	}
	guestID, ok := middleware.GetGuestID(c)
	return ok && guestID == owner
}

func respondReservationNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Reservation not found",
	})
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidStayRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Check-out must be after check-in",
		})
	case errors.Is(err, errs.ErrPastCheckIn):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Check-in date cannot be in the past",
		})
	case errors.Is(err, errs.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, errs.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, errs.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room is not available for the requested dates",
		})
	case errors.Is(err, errs.ErrDuplicateRoom):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room number already exists",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Operation not allowed in the reservation's current status",
		})
	case errors.Is(err, errs.ErrCheckInTooEarly):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Check-in date has not been reached",
		})
	case errors.Is(err, errs.ErrRoomNotBookable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Room is not open for booking",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
