package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateReservationRequest struct {
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	CheckIn         string    `json:"check_in" binding:"required"`
	CheckOut        string    `json:"check_out" binding:"required"`
	Guests          int       `json:"guests" binding:"required,min=1"`
	DiscountCents   int64     `json:"discount_cents"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

func (r CreateReservationRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

func (r CreateReservationRequest) GetSpecialRequests() *string {
	return trimmedOrNil(r.SpecialRequests)
}

type UpdateStayRequest struct {
	CheckIn         string  `json:"check_in" binding:"required"`
	CheckOut        string  `json:"check_out" binding:"required"`
	Guests          int     `json:"guests" binding:"required,min=1"`
	DiscountCents   int64   `json:"discount_cents"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

func (r UpdateStayRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

func (r UpdateStayRequest) GetSpecialRequests() *string {
	return trimmedOrNil(r.SpecialRequests)
}

// SearchAvailableRequest binds the query string of the availability endpoint.
type SearchAvailableRequest struct {
	CheckIn  string  `form:"check_in" binding:"required"`
	CheckOut string  `form:"check_out" binding:"required"`
	RoomType *string `form:"room_type"`
}

func (r SearchAvailableRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
