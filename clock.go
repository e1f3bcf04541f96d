package tabletimer

import (
	"fmt"
	"time"
)

// Time representation limits. Hours and minutes are stored at 2x granularity
// so animation stepping never needs floating point.
const (
	hoursHalfMax   = 48  // half-hour units in a day
	minutesHalfMax = 120 // half-minute units in an hour
	secondsMax     = 60
)

// TimeOfDay is a 24-hour wall-clock value at half-minute granularity.
// HoursHalf counts half-hours [0,48), MinutesHalf counts half-minutes [0,120),
// Seconds counts seconds within the minute [0,60).
type TimeOfDay struct {
	HoursHalf   int
	MinutesHalf int
	Seconds     int
}

// Hour returns the clock hour [0,24).
func (t TimeOfDay) Hour() int {
	return t.HoursHalf / 2
}

// Minute returns the clock minute [0,60).
func (t TimeOfDay) Minute() int {
	return t.MinutesHalf / 2
}

// String formats the value as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Clock owns the authoritative time of day. It advances from a free-running
// monotonic time source via Tick and is additionally mutated by the input
// controller through the Adjust/Reset methods; nothing else writes it.
type Clock struct {
	tod          TimeOfDay
	lastBoundary time.Time

	// onHourRollover runs synchronously inside Tick, after the hour field
	// has advanced and before Tick returns.
	onHourRollover func()
}

// NewClock returns a clock starting at the given time of day. now seeds the
// first second boundary.
func NewClock(start TimeOfDay, now time.Time) *Clock {
	return &Clock{
		tod:          start,
		lastBoundary: now,
	}
}

// Time returns the current time of day.
func (c *Clock) Time() TimeOfDay {
	return c.tod
}

// OnHourRollover registers the hook invoked synchronously on each hour
// transition. Must be set before the loop starts; there is no locking.
func (c *Clock) OnHourRollover(fn func()) {
	c.onHourRollover = fn
}

// Tick advances the clock when at least one second has elapsed since the last
// accepted boundary. The boundary moves forward by exactly one second rather
// than snapping to now, so loop-iteration jitter does not accumulate into
// drift. At most one boundary is processed per call; if the loop is starved
// below 1 Hz, seconds are silently lost rather than caught up, keeping the
// observable animation timing lossy instead of bursty.
func (c *Clock) Tick(now time.Time) {
	if now.Sub(c.lastBoundary) < time.Second {
		return
	}
	c.lastBoundary = c.lastBoundary.Add(time.Second)

	c.tod.Seconds++
	if c.tod.Seconds < secondsMax {
		return
	}
	c.tod.Seconds = 0

	c.tod.MinutesHalf += 2
	if c.tod.MinutesHalf < minutesHalfMax {
		return
	}
	c.tod.MinutesHalf = 0
	c.tod.HoursHalf = (c.tod.HoursHalf + 2) % hoursHalfMax

	if c.onHourRollover != nil {
		c.onHourRollover()
	}
}

// AdjustHour moves the hour field one half-hour unit per encoder step, with
// wraparound in both directions.
func (c *Clock) AdjustHour(step int) {
	v := c.tod.HoursHalf + step
	if v < 0 {
		v += hoursHalfMax
	}
	c.tod.HoursHalf = v % hoursHalfMax
}

// AdjustMinute moves the minute field one whole minute (two half-minute
// units) per encoder step. Wraparound is clamped manually: a negative result
// lands on the top of the range, not on a modulo remainder.
func (c *Clock) AdjustMinute(step int) {
	v := c.tod.MinutesHalf + 2*step
	if v >= minutesHalfMax {
		v = 0
	}
	if v < 0 {
		v = minutesHalfMax - 2
	}
	c.tod.MinutesHalf = v
}

// ResetSeconds zeroes the seconds field. Called on every accepted mode-button
// press so a freshly set time starts on a clean minute.
func (c *Clock) ResetSeconds() {
	c.tod.Seconds = 0
}
