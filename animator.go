package tabletimer

// Animation set indices into the assets frame table.
const (
	// SetWork is the generic working-hours animation.
	SetWork = 0
	// SetLunch overrides during the lunch hour.
	SetLunch = 6
	// SetBreak overrides during the afternoon break window.
	SetBreak = 7
	// SetEvening covers the evening and night hours.
	SetEvening = 8
	// SetMorning covers the early morning hours.
	SetMorning = 9

	// workVariants is how many per-hour work sub-animations exist
	// (sets 1..workVariants).
	workVariants = 5
)

// Schedule policy. Fixed at compile time; there is no runtime configuration.
const (
	// settledHalfMinutes is the half-minute count after which the hour's
	// rotated variant yields to the generic work animation.
	settledHalfMinutes = 10
	lunchHour          = 12
	breakHour          = 16
	breakLastMinute    = 15
	eveningStartHour   = 19
	morningStartHour   = 8
	morningEndHour     = 9
)

// overrideRule is one clause of the animation selection chain. Rules are
// evaluated in fixed order and are deliberately not mutually exclusive: a
// later match supersedes an earlier one. The overlap behavior at the 8:00 and
// 19:00 boundaries depends on this ordering, so the chain must never be
// collapsed into an if/else ladder or a switch.
type overrideRule struct {
	match func(t TimeOfDay) bool
	set   int
}

var overrideRules = []overrideRule{
	{func(t TimeOfDay) bool { return t.MinutesHalf >= settledHalfMinutes }, SetWork},
	{func(t TimeOfDay) bool { return t.Hour() == lunchHour }, SetLunch},
	{func(t TimeOfDay) bool { return t.Hour() == breakHour && t.Minute() <= breakLastMinute }, SetBreak},
	{func(t TimeOfDay) bool { return t.Hour() >= eveningStartHour || t.Hour() < morningStartHour }, SetEvening},
	{func(t TimeOfDay) bool { return t.Hour() >= morningStartHour && t.Hour() <= morningEndHour }, SetMorning},
}

// Animator maps the time of day to an animation set. Selection is fully
// rederived on every call; the only carried state is the hour rotation
// counter and the base selection it feeds.
type Animator struct {
	rotation  int
	selection int
}

// NewAnimator returns an animator with the rotation counter at its first
// variant and an initial selection derived from the start time.
func NewAnimator(start TimeOfDay) *Animator {
	a := &Animator{rotation: 1, selection: 1}
	a.Select(start)
	return a
}

// Rotate advances the hour rotation counter cyclically through [1,
// workVariants] and makes the rotated variant the base selection for the new
// hour. Called exactly once per hour rollover.
func (a *Animator) Rotate() {
	a.rotation = a.rotation%workVariants + 1
	a.selection = a.rotation
}

// Select returns the animation set for t. Starting from the current base
// selection (the variant picked at the last rollover), every override rule is
// evaluated in order and the last match wins.
func (a *Animator) Select(t TimeOfDay) int {
	sel := a.selection
	for _, r := range overrideRules {
		if r.match(t) {
			sel = r.set
		}
	}
	a.selection = sel
	return sel
}

// Selection returns the most recently derived animation set without
// re-evaluating the rules.
func (a *Animator) Selection() int {
	return a.selection
}
