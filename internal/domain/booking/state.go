package booking

import (
	"errors"
	"strings"
	"time"
)

var ErrUnknownState = errors.New("unknown state")

// State is the query-time filter over a user's bookings. ALL/CURRENT/PAST/
// FUTURE partition by the window relative to now; WAITING/REJECTED partition
// by status and may overlap the temporal ones.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func ParseState(s string) (State, error) {
	switch State(strings.ToUpper(s)) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", ErrUnknownState
	}
}

func (s State) String() string {
	return string(s)
}

// Matches is the pure in-memory form of the filter; the read store pushes the
// same predicate down as SQL conditions.
func (s State) Matches(period Period, status Status, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return period.Contains(now)
	case StatePast:
		return period.EndedBefore(now)
	case StateFuture:
		return period.StartsAfter(now)
	case StateWaiting:
		return status == StatusWaiting
	case StateRejected:
		return status == StatusRejected
	default:
		return false
	}
}
