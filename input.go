package tabletimer

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// debounceInterval is the minimum spacing between accepted mode-button
// presses. Reads are level-based, not edge-based, so a held button re-fires
// once per interval; see the design notes before "fixing" this.
const debounceInterval = 250 * time.Millisecond

// InputController polls the rotary encoder and the mode button and applies
// their effects to the clock. It is the only writer of the edit mode and the
// only caller of the clock's manual mutators.
type InputController struct {
	clock *Clock

	clkPin gpio.PinIn // encoder phase A
	dtPin  gpio.PinIn // encoder phase B
	btnPin gpio.PinIn // mode button, active-low

	lastCLK   gpio.Level
	lastPress time.Time
	editHour  bool
}

// NewInputController returns a controller reading the given encoder lines.
// The initial CLK level is sampled so the first poll does not register a
// phantom step.
func NewInputController(c *Clock, clkPin, dtPin, btnPin gpio.PinIn) *InputController {
	return &InputController{
		clock:   c,
		clkPin:  clkPin,
		dtPin:   dtPin,
		btnPin:  btnPin,
		lastCLK: clkPin.Read(),
	}
}

// EditingHour reports which time field manual adjustment currently affects.
func (i *InputController) EditingHour() bool {
	return i.editHour
}

// Poll samples the encoder and button once. A CLK transition is one detent:
// DT differing from the new CLK level means clockwise (+1), matching means
// counter-clockwise (-1). The step lands on whichever field the edit mode
// designates.
func (i *InputController) Poll(now time.Time) {
	level := i.clkPin.Read()
	if level != i.lastCLK {
		i.lastCLK = level

		step := -1
		if i.dtPin.Read() != level {
			step = 1
		}
		if i.editHour {
			i.clock.AdjustHour(step)
		} else {
			i.clock.AdjustMinute(step)
		}
	}

	if i.btnPin.Read() == gpio.Low && now.Sub(i.lastPress) >= debounceInterval {
		i.clock.ResetSeconds()
		i.editHour = !i.editHour
		i.lastPress = now
	}
}
