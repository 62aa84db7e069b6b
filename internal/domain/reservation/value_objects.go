package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidStayRange = errors.New("check-out date must be after check-in date")
	ErrPastCheckIn      = errors.New("check-in date cannot be in the past")
)

// StayPeriod is a half-open date range [checkIn, checkOut): the check-out day
// itself is not occupied, so one guest's check-out may equal another's
// check-in without conflict. Both dates are calendar days at UTC midnight.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrInvalidStayRange
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

// Nights is derived from the dates and never stored independently.
func (s StayPeriod) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps implements the half-open interval test:
// [a, b) and [c, d) overlap iff a < d && b > c.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

func (s StayPeriod) StartsBefore(day time.Time) bool {
	return s.checkIn.Before(truncateToDay(day))
}

// ToDaterange renders the period in postgres daterange literal form,
// matching the exclusion constraint on the reservations table.
func (s StayPeriod) ToDaterange() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format("2006-01-02"), s.checkOut.Format("2006-01-02"))
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Money is an amount in cents. Holding cents in integers keeps every
// persisted value at exactly two decimal places.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}
