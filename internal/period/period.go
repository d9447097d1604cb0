// Package period answers calendar questions about the token distribution window.
//
// All answers are pure functions of the injected clock and location: the
// window spans days FirstDay..LastDay of every month, and the date key is the
// local calendar day used to partition the token ledger.
package period

import (
	"time"

	"github.com/and161185/token-queue/internal/model"
)

// Distribution window bounds, inclusive.
const (
	FirstDay = 1
	LastDay  = 15
)

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads time.Now.
var SystemClock Clock = ClockFunc(time.Now)

// Oracle evaluates the distribution window in a fixed location.
type Oracle struct {
	clock Clock
	loc   *time.Location
}

// New constructs an Oracle; nil arguments default to the system clock and time.Local.
func New(clock Clock, loc *time.Location) *Oracle {
	if clock == nil {
		clock = SystemClock
	}
	if loc == nil {
		loc = time.Local
	}
	return &Oracle{clock: clock, loc: loc}
}

// Now returns the clock reading in the oracle's location. Callers that ask
// several questions about one request evaluate them at a single Now.
func (o *Oracle) Now() time.Time { return o.clock.Now().In(o.loc) }

// Today returns the current local date key.
func (o *Oracle) Today() model.DateKey { return DateKeyOf(o.Now()) }

// InWindow reports whether today falls inside the distribution window.
func (o *Oracle) InWindow() bool { return InWindowOn(o.Now()) }

// DaysRemaining returns LastDay minus today's day-of-month, or 0 after the window.
func (o *Oracle) DaysRemaining() int { return DaysRemainingOn(o.Now()) }

// DateKeyOf formats t as a date key in t's location.
func DateKeyOf(t time.Time) model.DateKey { return model.DateKey(t.Format(model.DateLayout)) }

// InWindowOn reports whether t's day-of-month is within [FirstDay, LastDay].
func InWindowOn(t time.Time) bool {
	d := t.Day()
	return d >= FirstDay && d <= LastDay
}

// DaysRemainingOn is DaysRemaining evaluated at t.
func DaysRemainingOn(t time.Time) int {
	if d := t.Day(); d <= LastDay {
		return LastDay - d
	}
	return 0
}
