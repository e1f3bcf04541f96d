package tabletimer

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
)

// Buzz pattern policy. 5 groups of 3 ON/OFF cycles with a short pause after
// each group: 5 * (3*140ms + 60ms) = 2400ms total, motor HIGH for 15
// intervals of 70ms.
const (
	buzzGroups     = 5
	buzzCycles     = 3
	buzzPulse      = 70 * time.Millisecond
	buzzGroupPause = 60 * time.Millisecond

	// BuzzDuration is the total wall-clock time one Buzz call occupies
	// the loop.
	BuzzDuration = buzzGroups * (buzzCycles*2*buzzPulse + buzzGroupPause)
)

// Active hours: the inclusive clock-hour window during which the hourly
// buzz fires.
const (
	// BuzzStartHour is the first hour of the active window.
	BuzzStartHour = 9
	// BuzzEndHour is the last hour of the active window, inclusive.
	BuzzEndHour = 19
)

// InActiveHours reports whether the hourly buzz fires for the given clock
// hour.
func InActiveHours(hour int) bool {
	return hour >= BuzzStartHour && hour <= BuzzEndHour
}

// Alerter drives the vibration motor pattern. Buzz is synchronous and
// blocking; nothing else runs while it plays, and there is no cancellation
// once it has started.
type Alerter struct {
	motor   gpio.PinOut
	clk     clock.Clock
	refresh func() error
	log     *zap.SugaredLogger
}

// NewAlerter returns an alerter driving motor. refresh is invoked between
// every timed sub-step of the pattern so the rate-limited renderer still gets
// a chance to paint while the loop is blocked; it may no-op internally.
func NewAlerter(motor gpio.PinOut, clk clock.Clock, refresh func() error, log *zap.SugaredLogger) *Alerter {
	return &Alerter{
		motor:   motor,
		clk:     clk,
		refresh: refresh,
		log:     log,
	}
}

// Buzz plays the fixed pattern, occupying the caller for BuzzDuration. The
// display must never go unrefreshed for longer than the renderer's own
// refresh interval, so the refresh hook runs after every motor edge and
// before every pause.
func (a *Alerter) Buzz() error {
	for group := 0; group < buzzGroups; group++ {
		for cycle := 0; cycle < buzzCycles; cycle++ {
			if err := a.motor.Out(gpio.High); err != nil {
				return fmt.Errorf("tabletimer: motor on: %w", err)
			}
			a.tryRefresh()
			a.clk.Sleep(buzzPulse)

			if err := a.motor.Out(gpio.Low); err != nil {
				return fmt.Errorf("tabletimer: motor off: %w", err)
			}
			a.tryRefresh()
			a.clk.Sleep(buzzPulse)
		}
		a.tryRefresh()
		a.clk.Sleep(buzzGroupPause)
	}
	return nil
}

func (a *Alerter) tryRefresh() {
	if err := a.refresh(); err != nil {
		a.log.Errorw("refresh during buzz", "error", err)
	}
}
