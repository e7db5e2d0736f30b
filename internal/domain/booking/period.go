package booking

import (
	"errors"
	"time"
)

var (
	ErrStartAfterEnd  = errors.New("start time cannot be later than end time")
	ErrStartEqualsEnd = errors.New("start time cannot be equal to end time")
)

// Period is the half-open reservation window. Start strictly before End;
// windows in the past are accepted as caller-supplied.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.After(end) {
		return Period{}, ErrStartAfterEnd
	}
	if start.Equal(end) {
		return Period{}, ErrStartEqualsEnd
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Contains reports whether t falls inside the window, bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && !t.After(p.end)
}

func (p Period) EndedBefore(t time.Time) bool {
	return p.end.Before(t)
}

func (p Period) StartsAfter(t time.Time) bool {
	return p.start.After(t)
}
