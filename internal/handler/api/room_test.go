//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"oceanview/internal/domain/room"
	"oceanview/internal/handler/api"
	resdto "oceanview/internal/handler/dto/response"
	"oceanview/internal/handler/middleware"
	"oceanview/internal/pkg/errs"
	"oceanview/internal/usecase/queries"
	"oceanview/tests/common/builder"
	"oceanview/tests/common/httptest"
	"oceanview/tests/common/testutil"
	commandsmock "oceanview/tests/mock/commands"
	queriesmock "oceanview/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockRoomCommands
	mockQueries      *queriesmock.MockRoomQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	// Mock authentication middleware for testing; staff endpoints reuse it
	// with the staff role already granted, role enforcement itself is covered
	// by the middleware tests.
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("guest_id", uuid.New())
		c.Set("role", middleware.RoleStaff)
		c.Next()
	}

	// Setup routes
	s.router.GET("/rooms", authMiddleware, s.handler.ListRooms)
	s.router.GET("/rooms/available", authMiddleware, s.handler.SearchAvailable)
	s.router.GET("/rooms/:id", authMiddleware, s.handler.GetRoom)
	s.router.POST("/rooms", authMiddleware, s.handler.CreateRoom)
	s.router.PUT("/rooms/:id", authMiddleware, s.handler.UpdateRoom)
	s.router.POST("/rooms/:id/maintenance", authMiddleware, s.handler.StartMaintenance)
	s.router.DELETE("/rooms/:id/maintenance", authMiddleware, s.handler.EndMaintenance)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

// ================================================================================
// TestListRooms
// ================================================================================

func (s *RoomHandlerTestSuite) TestListRooms() {
	views := []*queries.RoomView{
		builder.NewRoomBuilder().WithNumber("101").BuildView(),
		builder.NewRoomBuilder().WithNumber("102").AsUnderMaintenance().BuildView(),
	}

	s.Run("success: returns all rooms", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "bearer-token")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: filters by status", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), room.StatusMaintenance).
			Return(views[1:], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?status=MAINTENANCE", nil, "bearer-token")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("MAINTENANCE", response[0].Status)
	})

	s.Run("error: 422 for unknown status filter", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), room.Status("BROKEN")).
			Return(nil, errs.Mark(room.ErrInvalidStatus, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?status=BROKEN", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestSearchAvailable
// ================================================================================

func (s *RoomHandlerTestSuite) TestSearchAvailable() {
	checkIn := time.Date(time.Now().Year()+1, time.June, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)
	baseURL := "/rooms/available?check_in=" + checkIn.Format("2006-01-02") + "&check_out=" + checkOut.Format("2006-01-02")

	views := []*queries.RoomView{
		builder.NewRoomBuilder().WithNumber("201").BuildView(),
		builder.NewRoomBuilder().WithNumber("202").BuildView(),
	}

	s.Run("success: returns available rooms", func() {
		s.mockAvailability.EXPECT().
			SearchAvailable(gomock.Any(), queries.SearchAvailableInput{CheckIn: checkIn, CheckOut: checkOut}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes room type filter through", func() {
		roomType := room.TypeSuite
		s.mockAvailability.EXPECT().
			SearchAvailable(gomock.Any(), queries.SearchAvailableInput{CheckIn: checkIn, CheckOut: checkOut, RoomType: &roomType}).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"&room_type=SUITE", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when dates are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/available?check_in=2027-06-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "check_in and check_out are required")
	})

	s.Run("error: 400 on malformed dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/available?check_in=01-06-2027&check_out=04-06-2027", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "inverted range",
				queriesError:   errs.ErrInvalidStayRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-out must be after check-in",
			},
			{
				name:           "past check-in",
				queriesError:   errs.ErrPastCheckIn,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-in date cannot be in the past",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().SearchAvailable(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestGetRoom() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String()

	returnView := builder.NewRoomBuilder().BuildView()
	returnView.ID = roomID

	s.Run("success: returns 200 OK with RoomResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(roomID, response.ID)
		s.Equal(returnView.Number, response.Number)
		s.Equal(returnView.RateCentsPerNight, response.RateCentsPerNight)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 Not Found for missing room", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

// ================================================================================
// TestCreateRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestCreateRoom() {
	url := "/rooms"

	reqBody := builder.NewRoomBuilder().BuildCreateRequestDTO()
	createdID := uuid.New()

	s.Run("success: returns 201 Created with room id", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			Return(createdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreateRoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(createdID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReservation{
			{name: "missing field: number (required)", mutate: testutil.Field("number", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: room_type (required)", mutate: testutil.Field("room_type", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: capacity (required)", mutate: testutil.Field("capacity", nil), expectCode: http.StatusBadRequest},
			{name: "capacity below minimum (0)", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 409 Conflict for duplicate room number", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrDuplicateRoom).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room number already exists")
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(room.ErrInvalidType, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

// ================================================================================
// TestUpdateRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestUpdateRoom() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String()

	reqBody := map[string]any{
		"room_type":            "DELUXE",
		"capacity":             3,
		"rate_cents_per_night": 25000,
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateRoom(gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rooms/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 Not Found for missing room", func() {
		s.mockCommands.EXPECT().UpdateRoom(gomock.Any(), gomock.Any()).
			Return(errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

// ================================================================================
// TestMaintenance
// ================================================================================

func (s *RoomHandlerTestSuite) TestMaintenance() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/maintenance"

	s.Run("success: start returns 204 No Content", func() {
		s.mockCommands.EXPECT().StartMaintenance(gomock.Any(), roomID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: end returns 204 No Content", func() {
		s.mockCommands.EXPECT().EndMaintenance(gomock.Any(), roomID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when the room is reserved or occupied", func() {
		s.mockCommands.EXPECT().StartMaintenance(gomock.Any(), roomID).
			Return(errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "current status")
	})

	s.Run("error: 404 Not Found for missing room", func() {
		s.mockCommands.EXPECT().StartMaintenance(gomock.Any(), roomID).
			Return(errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
