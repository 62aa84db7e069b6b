package reservation

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the reservation blocks room availability.
// Only CONFIRMED and CHECKED_IN reservations hold the room.
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// IsTerminal reports whether any further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}
