// Package cmd implements the table-timer-sim CLI entry point.
package cmd

import (
	"context"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	tabletimer "github.com/yuvalm11/table-timer"
	"github.com/yuvalm11/table-timer/internal/config"
	"github.com/yuvalm11/table-timer/internal/termdisplay"
)

var (
	startTime string

	rootCmd = &cobra.Command{
		Use:   "table-timer-sim",
		Short: "Run the desk clock in a terminal without any hardware.",
		Long: `Runs the desk clock core against a terminal renderer and simulated pins.

Keys: left/right arrows turn the encoder, space presses the mode button,
q or Escape quits.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			hour, minute, err := config.ParseStartTime(startTime)
			if err != nil {
				return err
			}
			return run(tabletimer.TimeOfDay{HoursHalf: 2 * hour, MinutesHalf: 2 * minute})
		},
	}
)

// Execute runs the table-timer-sim CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&startTime, "start", "s", config.DefaultStartTime, "time of day at power-on (HH:MM)")
}

// simPins are the fake encoder lines the keyboard drives. The pin mutex makes
// each simulated detent atomic with respect to the polling loop.
type simPins struct {
	clk *gpiotest.Pin
	dt  *gpiotest.Pin
	btn *gpiotest.Pin
}

// turn simulates one encoder detent. The data line is set to its quadrature
// value before the clock line toggles, mirroring the order the poller reads
// them in.
func (p *simPins) turn(clockwise bool) {
	p.clk.Lock()
	next := !p.clk.L
	p.clk.Unlock()

	dt := next
	if clockwise {
		dt = !next
	}

	p.dt.Lock()
	p.dt.L = dt
	p.dt.Unlock()
	p.clk.Lock()
	p.clk.L = next
	p.clk.Unlock()
}

// press holds the mode button down briefly.
func (p *simPins) press() {
	p.btn.Lock()
	p.btn.L = gpio.Low
	p.btn.Unlock()
	time.AfterFunc(50*time.Millisecond, func() {
		p.btn.Lock()
		p.btn.L = gpio.High
		p.btn.Unlock()
	})
}

func run(start tabletimer.TimeOfDay) error {
	dev, err := termdisplay.New(config.DefaultDisplayWidth, config.DefaultDisplayHeight)
	if err != nil {
		return err
	}
	defer dev.Halt() //nolint:errcheck

	pins := &simPins{
		clk: &gpiotest.Pin{N: "CLK", L: gpio.High},
		dt:  &gpiotest.Pin{N: "DT", L: gpio.High},
		btn: &gpiotest.Pin{N: "SW", L: gpio.High},
	}

	ctrl, err := tabletimer.New(tabletimer.Options{
		Display:    dev,
		Motor:      &gpiotest.Pin{N: "MOTOR"},
		EncoderCLK: pins.clk,
		EncoderDT:  pins.dt,
		Button:     pins.btn,
		Start:      start,
		Logger:     zap.NewNop().Sugar(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Keyboard events arrive on the terminal's own goroutine; the control
	// loop stays single-threaded on this one.
	go func() {
		defer cancel()
		for {
			switch ev := dev.Screen().PollEvent().(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyLeft:
					pins.turn(false)
				case ev.Key() == tcell.KeyRight:
					pins.turn(true)
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					pins.press()
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return
				}
			case nil:
				// Screen finalized.
				return
			}
		}
	}()

	if err := ctrl.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
