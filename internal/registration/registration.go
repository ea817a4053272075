// Package registration classifies the registration window of an event from
// its registration sessions.
package registration

import (
	"encoding/json"
	"sort"
	"time"
)

// Session is one interval during which registration is possible.
// A nil Open means the interval has no lower bound, a nil Close means it
// has no upper bound. Both nil means registration is always open.
type Session struct {
	Open  *time.Time `json:"open"`
	Close *time.Time `json:"close"`
}

// Between returns a bounded session.
func Between(open, close time.Time) Session {
	return Session{Open: &open, Close: &close}
}

// From returns a right-open session starting at open.
func From(open time.Time) Session {
	return Session{Open: &open}
}

// Until returns a left-open session ending at close.
func Until(close time.Time) Session {
	return Session{Close: &close}
}

// Kind names a Status variant.
type Kind string

const (
	KindUpcoming Kind = "upcoming"
	KindOpened   Kind = "opened"
	KindClosed   Kind = "closed"
)

// Status is the outcome of Classify. It is one of Upcoming, Opened or Closed.
type Status interface {
	Kind() Kind
	isStatus()
}

// Upcoming means registration has not started yet.
type Upcoming struct {
	LeftDays int
}

// Opened means registration is currently possible. FirstComeServed is set
// when no deadline bounds the current window.
type Opened struct {
	FirstComeServed bool
}

// Closed means no session admits registration now or later.
type Closed struct{}

func (Upcoming) Kind() Kind { return KindUpcoming }
func (Opened) Kind() Kind   { return KindOpened }
func (Closed) Kind() Kind   { return KindClosed }

func (Upcoming) isStatus() {}
func (Opened) isStatus()   {}
func (Closed) isStatus()   {}

func (s Upcoming) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		T        Kind `json:"t"`
		LeftDays int  `json:"leftDays"`
	}{KindUpcoming, s.LeftDays})
}

func (s Opened) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		T                 Kind `json:"t"`
		IsFirstComeServed bool `json:"isFirstComeServed"`
	}{KindOpened, s.FirstComeServed})
}

func (Closed) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		T Kind `json:"t"`
	}{KindClosed})
}

// Classify returns the registration status at now. It returns nil when
// sessions is empty, meaning the event has no registration process at all.
//
// Sessions must be in chronological order; Classify does not sort them.
// When the last session has no close time, the verdict depends only on
// whether the event period has started.
func Classify(sessions []Session, periodStart, now time.Time) Status {
	if len(sessions) == 0 {
		return nil
	}

	if sessions[len(sessions)-1].Close == nil {
		if now.Before(periodStart) {
			return Opened{FirstComeServed: true}
		}
		return Closed{}
	}

	for _, s := range sessions {
		switch {
		case s.Open == nil && s.Close == nil:
			return Opened{FirstComeServed: true}

		case s.Open == nil:
			if !now.After(*s.Close) {
				return Opened{FirstComeServed: false}
			}

		case s.Close == nil:
			if !now.Before(*s.Open) {
				return Opened{FirstComeServed: true}
			}

		default:
			if now.Before(*s.Open) {
				return Upcoming{LeftDays: leftDays(now, *s.Open)}
			}
			if !now.After(*s.Close) {
				return Opened{FirstComeServed: false}
			}
		}
	}

	return Closed{}
}

// leftDays rounds the distance from now to t up to whole days.
func leftDays(now, t time.Time) int {
	const day = 24 * time.Hour
	d := t.Sub(now)
	n := d / day
	if d%day != 0 {
		n++
	}
	return int(n)
}

// SortSessions orders sessions by their open time, or their close time when
// open is absent. Sessions with neither bound go last. The sort is stable.
func SortSessions(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, okA := anchor(sessions[i])
		b, okB := anchor(sessions[j])
		if !okA || !okB {
			return okA && !okB
		}
		return a.Before(b)
	})
}

func anchor(s Session) (time.Time, bool) {
	if s.Open != nil {
		return *s.Open, true
	}
	if s.Close != nil {
		return *s.Close, true
	}
	return time.Time{}, false
}
