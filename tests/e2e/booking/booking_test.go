//go:build e2e

package booking_test

import (
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"oceanview/internal/handler/dto/response"
	"oceanview/internal/handler/middleware"
	"oceanview/tests/common/authtest"
	"oceanview/tests/common/builder"
	"oceanview/tests/common/dbtest"
	"oceanview/tests/common/httptest"
	"oceanview/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	roomsURL        = "/api/rooms"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) guestToken(t *testing.T, guestID uuid.UUID) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, guestID, middleware.RoleGuest)
}

func (s *BookingSuite) staffToken(t *testing.T) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), middleware.RoleStaff)
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *BookingSuite) roomStatus(t *testing.T, roomID uuid.UUID, token string) string {
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/"+roomID.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var room response.RoomResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &room))
	return room.Status
}

// =============================================================================
// TestCreateReservation - Reservation creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateReservation() {
	s.Run("Normal case: Guest can create a priced reservation", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "301", "DOUBLE", 15000)
		guestID := uuid.New()
		token := s.guestToken(t, guestID)

		checkIn := today().AddDate(0, 0, 30)
		reqBody := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithStay(checkIn, checkIn.AddDate(0, 0, 5)).
			WithGuests(2).
			WithSpecialRequests("Late arrival, around 23:00").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "Should create reservation successfully")

		var created map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		id := created["id"]
		require.NotEmpty(t, id, "Reservation ID should not be empty")

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+id, nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &actual))

		// Rates from test config: 10% tax, 5% service charge folded into final.
		specialRequests := "Late arrival, around 23:00"
		expected := &response.ReservationResponse{
			GuestID:         guestID,
			RoomID:          roomID,
			RoomNumber:      "301",
			CheckIn:         checkIn.Format("2006-01-02"),
			CheckOut:        checkIn.AddDate(0, 0, 5).Format("2006-01-02"),
			Nights:          5,
			Guests:          2,
			TotalCents:      75000,
			DiscountCents:   0,
			TaxCents:        7500,
			FinalCents:      86250,
			Status:          "PENDING",
			SpecialRequests: &specialRequests,
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "Number", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}

		require.Regexp(t, regexp.MustCompile(`^RES-\d{4}-\d{4}$`), actual.Number)
	})

	s.Run("Error case: Past check-in is rejected", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "302", "DOUBLE", 15000)
		token := s.guestToken(t, uuid.New())

		reqBody := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithStay(today().AddDate(0, 0, -3), today().AddDate(0, 0, 2)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, "Should reject past check-in")
	})

	s.Run("Error case: Room under maintenance is not bookable", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "303", "SINGLE", 10000)
		dbtest.SetRoomStatus(t, s.DB, roomID, "MAINTENANCE")
		token := s.guestToken(t, uuid.New())

		checkIn := today().AddDate(0, 0, 10)
		reqBody := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithStay(checkIn, checkIn.AddDate(0, 0, 2)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "Should reject room under maintenance")
	})

	s.Run("Error case: Overlap with an active reservation returns conflict", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "304", "DOUBLE", 15000)
		checkIn := today().AddDate(0, 0, 20)
		dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomID, checkIn, checkIn.AddDate(0, 0, 5), "CONFIRMED")

		token := s.guestToken(t, uuid.New())
		reqBody := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithStay(checkIn.AddDate(0, 0, 3), checkIn.AddDate(0, 0, 8)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, "Should reject overlapping stay")
	})

	s.Run("Normal case: Back-to-back stays do not conflict", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "305", "DOUBLE", 15000)
		checkIn := today().AddDate(0, 0, 20)
		dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomID, checkIn, checkIn.AddDate(0, 0, 5), "CONFIRMED")

		token := s.guestToken(t, uuid.New())
		reqBody := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithStay(checkIn.AddDate(0, 0, 5), checkIn.AddDate(0, 0, 8)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "Check-out day should be free for the next guest")
	})

	s.Run("Error case: PENDING reservations do not block the room", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "306", "DOUBLE", 15000)
		checkIn := today().AddDate(0, 0, 20)
		dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomID, checkIn, checkIn.AddDate(0, 0, 5), "PENDING")

		token := s.guestToken(t, uuid.New())
		reqBody := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithStay(checkIn, checkIn.AddDate(0, 0, 5)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "PENDING holds no inventory")
	})

	s.Run("Normal case: a colliding reservation number is reissued", func() {
		t := s.T()

		roomA := dbtest.CreateTestRoom(t, s.DB, "309", "DOUBLE", 15000)
		roomB := dbtest.CreateTestRoom(t, s.DB, "310", "DOUBLE", 15000)
		token := s.guestToken(t, uuid.New())

		// Force the generator into a collision: the second reservation draws
		// the suffix the first one already claimed, then a fresh one.
		origSuffixes := s.Factory.Suffixes
		defer func() { s.Factory.Suffixes = origSuffixes }()
		suffixes := []uint16{1111, 1111, 2222}
		draw := 0
		s.Factory.Suffixes = func() uint16 {
			n := suffixes[min(draw, len(suffixes)-1)]
			draw++
			return n
		}

		checkIn := today().AddDate(0, 0, 40)
		first := builder.NewReservationBuilder().
			WithRoomID(roomA).
			WithStay(checkIn, checkIn.AddDate(0, 0, 2)).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, first, token)
		require.Equal(t, http.StatusCreated, w.Code)

		second := builder.NewReservationBuilder().
			WithRoomID(roomB).
			WithStay(checkIn, checkIn.AddDate(0, 0, 2)).
			BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, second, token)
		require.Equal(t, http.StatusCreated, w.Code, "Insert should survive a number collision")

		var created map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created["id"], nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.True(t, strings.HasSuffix(detail.Number, "-2222"),
			"Collision should reissue the suffix, got %s", detail.Number)
	})

	s.Run("Auth test: Unauthorized without a token", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "307", "DOUBLE", 15000)
		reqBody := builder.NewReservationBuilder().WithRoomID(roomID).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Auth test: Expired token is rejected", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "308", "DOUBLE", 15000)
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, uuid.New(), middleware.RoleGuest)
		reqBody := builder.NewReservationBuilder().WithRoomID(roomID).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestLifecycle - Full reservation lifecycle with room status side effects
// =============================================================================

func (s *BookingSuite) TestLifecycle() {
	s.Run("Normal case: create, confirm, check-in, check-out", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "401", "SUITE", 40000)
		guestID := uuid.New()
		guest := s.guestToken(t, guestID)
		staff := s.staffToken(t)

		// Check-in today so the arrival-day guard passes.
		checkIn := today()
		reqBody := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithStay(checkIn, checkIn.AddDate(0, 0, 3)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, guest)
		require.Equal(t, http.StatusCreated, w.Code)

		var created map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		resURL := reservationsURL + "/" + created["id"]

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resURL+"/confirm", nil, staff)
		require.Equal(t, http.StatusNoContent, w.Code, "Staff should confirm the reservation")
		require.Equal(t, "RESERVED", s.roomStatus(t, roomID, guest))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resURL+"/check-in", nil, staff)
		require.Equal(t, http.StatusNoContent, w.Code, "Check-in on the arrival day should succeed")
		require.Equal(t, "OCCUPIED", s.roomStatus(t, roomID, guest))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resURL+"/check-out", nil, staff)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, "AVAILABLE", s.roomStatus(t, roomID, guest))

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, resURL, nil, guest)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Equal(t, "CHECKED_OUT", detail.Status)
	})

	s.Run("Error case: check-in before the arrival day fails", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "402", "DOUBLE", 15000)
		staff := s.staffToken(t)

		checkIn := today().AddDate(0, 0, 7)
		reservationID := dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomID, checkIn, checkIn.AddDate(0, 0, 2), "CONFIRMED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservationID.String()+"/check-in", nil, staff)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "Early check-in should be rejected")
	})

	s.Run("Error case: transitions that skip a state fail", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "403", "DOUBLE", 15000)
		staff := s.staffToken(t)

		checkIn := today()
		reservationID := dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomID, checkIn, checkIn.AddDate(0, 0, 2), "PENDING")
		resURL := reservationsURL + "/" + reservationID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resURL+"/check-in", nil, staff)
		require.Equal(t, http.StatusConflict, w.Code, "PENDING cannot be checked in")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resURL+"/check-out", nil, staff)
		require.Equal(t, http.StatusConflict, w.Code, "PENDING cannot be checked out")
	})

	s.Run("Normal case: cancelling a confirmed reservation releases the room", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "404", "DOUBLE", 15000)
		guestID := uuid.New()
		guest := s.guestToken(t, guestID)
		staff := s.staffToken(t)

		checkIn := today().AddDate(0, 0, 14)
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID, checkIn, checkIn.AddDate(0, 0, 3), "CONFIRMED")
		dbtest.SetRoomStatus(t, s.DB, roomID, "RESERVED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservationID.String()+"/cancel", nil, guest)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, "AVAILABLE", s.roomStatus(t, roomID, staff))
	})

	s.Run("Error case: cancelled reservations are terminal", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "405", "DOUBLE", 15000)
		staff := s.staffToken(t)

		checkIn := today().AddDate(0, 0, 14)
		reservationID := dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomID, checkIn, checkIn.AddDate(0, 0, 3), "CANCELLED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservationID.String()+"/confirm", nil, staff)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Auth test: guests cannot drive staff transitions", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "406", "DOUBLE", 15000)
		guest := s.guestToken(t, uuid.New())

		checkIn := today().AddDate(0, 0, 14)
		reservationID := dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomID, checkIn, checkIn.AddDate(0, 0, 3), "PENDING")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservationID.String()+"/confirm", nil, guest)
		require.Equal(t, http.StatusForbidden, w.Code, "Confirm is staff only")
	})
}

// =============================================================================
// TestAvailabilitySearch - Availability search API tests
// =============================================================================

func (s *BookingSuite) TestAvailabilitySearch() {
	s.Run("Normal case: occupied and maintenance rooms are excluded", func() {
		t := s.T()

		freeID := dbtest.CreateTestRoom(t, s.DB, "501", "DOUBLE", 15000)
		bookedID := dbtest.CreateTestRoom(t, s.DB, "502", "DOUBLE", 15000)
		maintID := dbtest.CreateTestRoom(t, s.DB, "503", "DOUBLE", 15000)
		dbtest.SetRoomStatus(t, s.DB, maintID, "MAINTENANCE")

		checkIn := today().AddDate(0, 0, 10)
		dbtest.CreateTestReservation(t, s.DB, uuid.New(), bookedID, checkIn, checkIn.AddDate(0, 0, 5), "CONFIRMED")

		token := s.guestToken(t, uuid.New())
		url := roomsURL + "/available?check_in=" + checkIn.Format("2006-01-02") +
			"&check_out=" + checkIn.AddDate(0, 0, 3).Format("2006-01-02")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var rooms []response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.Len(t, rooms, 1)
		require.Equal(t, freeID, rooms[0].ID)
	})

	s.Run("Normal case: the booked room reappears outside the stay", func() {
		t := s.T()

		dbtest.CreateTestRoom(t, s.DB, "504", "DOUBLE", 15000)
		bookedID := dbtest.CreateTestRoom(t, s.DB, "505", "DOUBLE", 15000)

		checkIn := today().AddDate(0, 0, 10)
		dbtest.CreateTestReservation(t, s.DB, uuid.New(), bookedID, checkIn, checkIn.AddDate(0, 0, 5), "CONFIRMED")

		token := s.guestToken(t, uuid.New())
		url := roomsURL + "/available?check_in=" + checkIn.AddDate(0, 0, 5).Format("2006-01-02") +
			"&check_out=" + checkIn.AddDate(0, 0, 8).Format("2006-01-02")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var rooms []response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.Len(t, rooms, 2)
	})

	s.Run("Error case: inverted range is a bad request, not an empty list", func() {
		t := s.T()

		dbtest.CreateTestRoom(t, s.DB, "506", "DOUBLE", 15000)
		token := s.guestToken(t, uuid.New())

		checkIn := today().AddDate(0, 0, 10)
		url := roomsURL + "/available?check_in=" + checkIn.Format("2006-01-02") +
			"&check_out=" + checkIn.AddDate(0, 0, -2).Format("2006-01-02")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestRoomManagement - Staff room administration tests
// =============================================================================

func (s *BookingSuite) TestRoomManagement() {
	s.Run("Normal case: staff creates and updates a room", func() {
		t := s.T()

		staff := s.staffToken(t)
		reqBody := builder.NewRoomBuilder().WithNumber("601").BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, staff)
		require.Equal(t, http.StatusCreated, w.Code)

		var created map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		roomURL := roomsURL + "/" + created["id"]

		update := map[string]any{"room_type": "DELUXE", "capacity": 3, "rate_cents_per_night": 25000}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, roomURL, update, staff)
		require.Equal(t, http.StatusNoContent, w.Code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomURL, nil, staff)
		require.Equal(t, http.StatusOK, dw.Code)

		var room response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &room))
		require.Equal(t, "DELUXE", room.RoomType)
		require.Equal(t, int32(3), room.Capacity)
		require.Equal(t, int64(25000), room.RateCentsPerNight)
	})

	s.Run("Error case: duplicate room number conflicts", func() {
		t := s.T()

		staff := s.staffToken(t)
		dbtest.CreateTestRoom(t, s.DB, "602", "DOUBLE", 15000)

		reqBody := builder.NewRoomBuilder().WithNumber("602").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, staff)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Normal case: maintenance toggling", func() {
		t := s.T()

		staff := s.staffToken(t)
		roomID := dbtest.CreateTestRoom(t, s.DB, "603", "DOUBLE", 15000)
		maintURL := roomsURL + "/" + roomID.String() + "/maintenance"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, maintURL, nil, staff)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, "MAINTENANCE", s.roomStatus(t, roomID, staff))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, maintURL, nil, staff)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, "AVAILABLE", s.roomStatus(t, roomID, staff))
	})

	s.Run("Error case: occupied rooms cannot enter maintenance", func() {
		t := s.T()

		staff := s.staffToken(t)
		roomID := dbtest.CreateTestRoom(t, s.DB, "604", "DOUBLE", 15000)
		dbtest.SetRoomStatus(t, s.DB, roomID, "OCCUPIED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL+"/"+roomID.String()+"/maintenance", nil, staff)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Auth test: guests cannot manage rooms", func() {
		t := s.T()

		guest := s.guestToken(t, uuid.New())
		reqBody := builder.NewRoomBuilder().WithNumber("605").BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, guest)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestUpdateStay - Pending stay modification tests
// =============================================================================

func (s *BookingSuite) TestUpdateStay() {
	s.Run("Normal case: moving a pending stay re-prices it", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "701", "DOUBLE", 15000)
		guestID := uuid.New()
		guest := s.guestToken(t, guestID)

		checkIn := today().AddDate(0, 0, 30)
		reqBody := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithStay(checkIn, checkIn.AddDate(0, 0, 5)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, guest)
		require.Equal(t, http.StatusCreated, w.Code)

		var created map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		resURL := reservationsURL + "/" + created["id"]

		newCheckIn := checkIn.AddDate(0, 0, 10)
		update := map[string]any{
			"check_in":  newCheckIn.Format("2006-01-02"),
			"check_out": newCheckIn.AddDate(0, 0, 2).Format("2006-01-02"),
			"guests":    1,
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, resURL+"/stay", update, guest)
		require.Equal(t, http.StatusNoContent, w.Code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, resURL, nil, guest)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Equal(t, int32(2), detail.Nights)
		require.Equal(t, int64(30000), detail.TotalCents)
		require.Equal(t, int64(3000), detail.TaxCents)
		require.Equal(t, int64(34500), detail.FinalCents)
	})

	s.Run("Error case: confirmed reservations cannot be moved", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "702", "DOUBLE", 15000)
		guestID := uuid.New()
		guest := s.guestToken(t, guestID)

		checkIn := today().AddDate(0, 0, 14)
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID, checkIn, checkIn.AddDate(0, 0, 3), "CONFIRMED")

		update := map[string]any{
			"check_in":  checkIn.AddDate(0, 0, 1).Format("2006-01-02"),
			"check_out": checkIn.AddDate(0, 0, 4).Format("2006-01-02"),
			"guests":    2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			reservationsURL+"/"+reservationID.String()+"/stay", update, guest)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

// =============================================================================
// TestGuestIsolation - Guests cannot see or act on other guests' reservations
// =============================================================================

func (s *BookingSuite) TestGuestIsolation() {
	s.Run("Auth test: another guest's reservation is invisible and untouchable", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "901", "DOUBLE", 15000)
		ownerID := uuid.New()
		intruder := s.guestToken(t, uuid.New())
		staff := s.staffToken(t)

		checkIn := today().AddDate(0, 0, 14)
		reservationID := dbtest.CreateTestReservation(t, s.DB, ownerID, roomID, checkIn, checkIn.AddDate(0, 0, 3), "PENDING")
		resURL := reservationsURL + "/" + reservationID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, resURL, nil, intruder)
		require.Equal(t, http.StatusNotFound, w.Code, "Foreign reservations should look like missing ones")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resURL+"/cancel", nil, intruder)
		require.Equal(t, http.StatusNotFound, w.Code, "Foreign reservations cannot be cancelled")

		update := map[string]any{
			"check_in":  checkIn.AddDate(0, 0, 1).Format("2006-01-02"),
			"check_out": checkIn.AddDate(0, 0, 4).Format("2006-01-02"),
			"guests":    2,
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, resURL+"/stay", update, intruder)
		require.Equal(t, http.StatusNotFound, w.Code, "Foreign reservations cannot be moved")

		// Still PENDING and still visible to staff.
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, resURL, nil, staff)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Equal(t, "PENDING", detail.Status)
	})
}

// =============================================================================
// TestFrontDeskLists - Staff list endpoints
// =============================================================================

func (s *BookingSuite) TestFrontDeskLists() {
	s.Run("Normal case: arrivals and departures for today", func() {
		t := s.T()

		staff := s.staffToken(t)
		roomA := dbtest.CreateTestRoom(t, s.DB, "801", "DOUBLE", 15000)
		roomB := dbtest.CreateTestRoom(t, s.DB, "802", "DOUBLE", 15000)
		roomC := dbtest.CreateTestRoom(t, s.DB, "803", "DOUBLE", 15000)

		arriving := dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomA, today(), today().AddDate(0, 0, 3), "CONFIRMED")
		departing := dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomB, today().AddDate(0, 0, -3), today(), "CHECKED_IN")
		dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomC, today().AddDate(0, 0, 5), today().AddDate(0, 0, 8), "CONFIRMED")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/arrivals", nil, staff)
		require.Equal(t, http.StatusOK, w.Code)
		var arrivals []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &arrivals))
		require.Len(t, arrivals, 1)
		require.Equal(t, arriving, arrivals[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/departures", nil, staff)
		require.Equal(t, http.StatusOK, w.Code)
		var departures []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &departures))
		require.Len(t, departures, 1)
		require.Equal(t, departing, departures[0].ID)
	})

	s.Run("Normal case: guests see only their own reservations", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "804", "DOUBLE", 15000)
		guestID := uuid.New()
		guest := s.guestToken(t, guestID)

		checkIn := today().AddDate(0, 0, 10)
		mine := dbtest.CreateTestReservation(t, s.DB, guestID, roomID, checkIn, checkIn.AddDate(0, 0, 2), "PENDING")
		dbtest.CreateTestReservation(t, s.DB, uuid.New(), roomID, checkIn.AddDate(0, 0, 5), checkIn.AddDate(0, 0, 7), "PENDING")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, guest)
		require.Equal(t, http.StatusOK, w.Code)

		var list []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list, 1)
		require.Equal(t, mine, list[0].ID)
	})

	s.Run("Auth test: active list is staff only", func() {
		t := s.T()

		guest := s.guestToken(t, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/active", nil, guest)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
