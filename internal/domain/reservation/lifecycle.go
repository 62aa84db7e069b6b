package reservation

import (
	"errors"
	"time"

	"oceanview/internal/domain/room"
)

var (
	ErrTransitionNotAllowed = errors.New("transition not allowed from current status")
	ErrCheckInTooEarly      = errors.New("check-in date has not been reached")
)

// Action is a lifecycle transition requested on a reservation.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
	ActionCancel   Action = "cancel"
)

// transitionSpec captures the state machine of §lifecycle: the statuses a
// transition may start from, the status it lands in, and the room status it
// implies. Reservation and room updates for one transition are applied in the
// same transaction by the command layer.
type transitionSpec struct {
	from []Status
	to   Status
	// roomStatus returns the new room status given the room's current one,
	// or nil when the room must be left untouched.
	roomStatus func(current room.Status) *room.Status
}

var transitions = map[Action]transitionSpec{
	ActionConfirm: {
		from:       []Status{StatusPending},
		to:         StatusConfirmed,
		roomStatus: always(room.StatusReserved),
	},
	ActionCheckIn: {
		from:       []Status{StatusConfirmed},
		to:         StatusCheckedIn,
		roomStatus: always(room.StatusOccupied),
	},
	ActionCheckOut: {
		from:       []Status{StatusCheckedIn},
		to:         StatusCheckedOut,
		roomStatus: always(room.StatusAvailable),
	},
	ActionCancel: {
		from: []Status{StatusPending, StatusConfirmed},
		to:   StatusCancelled,
		// Only a confirmed reservation had claimed the room; cancelling a
		// pending one must not release a room some other reservation holds.
		roomStatus: func(current room.Status) *room.Status {
			if current == room.StatusReserved {
				s := room.StatusAvailable
				return &s
			}
			return nil
		},
	},
}

func always(s room.Status) func(room.Status) *room.Status {
	return func(room.Status) *room.Status { return &s }
}

// TransitionPlan is the outcome of a validated transition: the status to CAS
// the reservation into, and the room status to apply alongside it (nil when
// the room stays untouched).
type TransitionPlan struct {
	From       Status
	To         Status
	RoomStatus *room.Status
}

// PlanTransition validates an action against the reservation's current state
// and the room's current status. It mutates nothing: a failed guard leaves
// both entities exactly as they were, and the command layer applies the plan
// atomically.
func PlanTransition(r *Reservation, action Action, roomStatus room.Status, today time.Time) (TransitionPlan, error) {
	spec, ok := transitions[action]
	if !ok {
		return TransitionPlan{}, ErrTransitionNotAllowed
	}

	allowed := false
	for _, s := range spec.from {
		if r.status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return TransitionPlan{}, ErrTransitionNotAllowed
	}

	if action == ActionCheckIn && !r.CanCheckIn(today) {
		return TransitionPlan{}, ErrCheckInTooEarly
	}

	return TransitionPlan{
		From:       r.status,
		To:         spec.to,
		RoomStatus: spec.roomStatus(roomStatus),
	}, nil
}
