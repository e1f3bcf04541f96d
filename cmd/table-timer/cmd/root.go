// Package cmd implements the table-timer CLI entry point.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	tabletimer "github.com/yuvalm11/table-timer"
	"github.com/yuvalm11/table-timer/internal/config"
	"github.com/yuvalm11/table-timer/internal/logger"
)

var (
	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "table-timer",
		Short: "Run the desk clock against the real display and GPIO lines.",
		Long: `Drives the desk clock: an animated character on a small OLED panel, an
hourly vibration buzz during working hours, and a rotary encoder for setting
the time. Wiring is read from a YAML file; everything else is fixed policy.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			level, ok := logger.ParseLevel(logLevel)
			if !ok {
				return errors.Errorf("unknown log level %q", logLevel)
			}
			log := logger.New(zap.NewAtomicLevelAt(level))
			defer log.Sync() //nolint:errcheck

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return run(ctx, cfg, log)
		},
	}
)

// Execute runs the table-timer CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the wiring configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
}

// run brings up the hardware described by cfg and hands it to the control
// core until ctx is done.
func run(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	if _, err := host.Init(); err != nil {
		return errors.Wrap(err, "initialize host drivers")
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return errors.Wrapf(err, "open I2C bus %q", cfg.I2CBus)
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{
		W: cfg.DisplayWidth,
		H: cfg.DisplayHeight,
	})
	if err != nil {
		return errors.Wrap(err, "open display")
	}
	defer dev.Halt() //nolint:errcheck

	motor, err := outputPin(cfg.MotorPin)
	if err != nil {
		return err
	}
	clkPin, err := inputPin(cfg.EncoderCLKPin)
	if err != nil {
		return err
	}
	dtPin, err := inputPin(cfg.EncoderDTPin)
	if err != nil {
		return err
	}
	btnPin, err := inputPin(cfg.ButtonPin)
	if err != nil {
		return err
	}

	hour, minute, err := config.ParseStartTime(cfg.StartTime)
	if err != nil {
		return err
	}

	ctrl, err := tabletimer.New(tabletimer.Options{
		Display:    dev,
		Motor:      motor,
		EncoderCLK: clkPin,
		EncoderDT:  dtPin,
		Button:     btnPin,
		Start:      tabletimer.TimeOfDay{HoursHalf: 2 * hour, MinutesHalf: 2 * minute},
		Logger:     log,
	})
	if err != nil {
		return err
	}

	err = ctrl.Run(ctx)
	if releaseErr := motor.Out(gpio.Low); releaseErr != nil {
		log.Errorw("release motor", "error", releaseErr)
	}
	if errors.Is(err, context.Canceled) {
		log.Infow("shutting down")
		return nil
	}
	return err
}

func outputPin(name string) (gpio.PinIO, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, errors.Errorf("no GPIO pin named %q", name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, errors.Wrapf(err, "configure %q as output", name)
	}
	return pin, nil
}

func inputPin(name string) (gpio.PinIO, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, errors.Errorf("no GPIO pin named %q", name)
	}
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, errors.Wrapf(err, "configure %q as input", name)
	}
	return pin, nil
}
