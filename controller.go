package tabletimer

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
)

// loopInterval is the cooperative loop period. It only bounds CPU use; all
// observable timing derives from the clock boundaries and the renderer's own
// rate limit, both far coarser than this.
const loopInterval = 2 * time.Millisecond

// Options configures a Controller. Display, Motor and the three encoder pins
// are required; Clock defaults to the real time source and Logger to a no-op.
type Options struct {
	Display display.Drawer
	Motor   gpio.PinOut

	EncoderCLK gpio.PinIn
	EncoderDT  gpio.PinIn
	Button     gpio.PinIn

	// Start is the time of day shown at power-on.
	Start TimeOfDay

	Clock  clock.Clock
	Logger *zap.SugaredLogger
}

// Controller owns the whole core state and runs the cooperative loop. All
// components are constructed once and live until power-off; there is no
// shared-mutable-state hazard because nothing executes concurrently.
type Controller struct {
	clk      clock.Clock
	clock    *Clock
	anim     *Animator
	renderer *Renderer
	alerter  *Alerter
	input    *InputController
	log      *zap.SugaredLogger
}

// New wires the components together and registers the hour rollover hook.
func New(opts Options) (*Controller, error) {
	if opts.Display == nil {
		return nil, errors.New("tabletimer: display is required")
	}
	if opts.Motor == nil {
		return nil, errors.New("tabletimer: motor pin is required")
	}
	if opts.EncoderCLK == nil || opts.EncoderDT == nil || opts.Button == nil {
		return nil, errors.New("tabletimer: encoder pins are required")
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	c := &Controller{
		clk: clk,
		log: log,
	}
	c.clock = NewClock(opts.Start, clk.Now())
	c.anim = NewAnimator(opts.Start)
	c.renderer = NewRenderer(opts.Display, clk, c.clock, c.anim)
	c.alerter = NewAlerter(opts.Motor, clk, c.renderer.Refresh, log)
	c.input = NewInputController(c.clock, opts.EncoderCLK, opts.EncoderDT, opts.Button)

	c.clock.OnHourRollover(c.hourRollover)
	return c, nil
}

// hourRollover runs synchronously inside Clock.Tick. It rotates the work
// variant, forces one draw so the new frame band shows immediately, and buzzes
// when the new hour lies in the active window. The buzz blocks the loop for
// its whole pattern; elapsed time during it is not credited to the clock.
func (c *Controller) hourRollover() {
	c.anim.Rotate()
	if err := c.renderer.Redraw(); err != nil {
		c.log.Errorw("redraw on hour rollover", "error", err)
	}

	hour := c.clock.Time().Hour()
	if !InActiveHours(hour) {
		return
	}
	c.log.Infow("hourly buzz", "hour", hour)
	if err := c.alerter.Buzz(); err != nil {
		c.log.Errorw("buzz", "error", err)
	}
}

// Step runs one loop iteration: tick, then input, then render, so a manual
// adjustment is reflected in the very next frame.
func (c *Controller) Step() {
	c.clock.Tick(c.clk.Now())
	c.input.Poll(c.clk.Now())
	if err := c.renderer.Refresh(); err != nil {
		c.log.Errorw("refresh", "error", err)
	}
}

// Run executes the cooperative loop until ctx is done and returns ctx's
// error. Draw and pin failures are logged, not fatal; the display is assumed
// available once the controller is running.
func (c *Controller) Run(ctx context.Context) error {
	c.log.Infow("clock started", "time", c.clock.Time().String())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.Step()
		c.clk.Sleep(loopInterval)
	}
}

// Time returns the current time of day.
func (c *Controller) Time() TimeOfDay {
	return c.clock.Time()
}
