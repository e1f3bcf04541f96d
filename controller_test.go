package tabletimer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

type testHarness struct {
	ctrl   *Controller
	dev    *fakeDisplay
	motor  *motorRecorder
	clkPin *gpiotest.Pin
	dtPin  *gpiotest.Pin
	btnPin *gpiotest.Pin
	mock   *stepClock
}

func newTestHarness(t *testing.T, start TimeOfDay) *testHarness {
	t.Helper()

	h := &testHarness{
		dev:    newFakeDisplay(),
		clkPin: &gpiotest.Pin{N: "CLK", L: gpio.High},
		dtPin:  &gpiotest.Pin{N: "DT", L: gpio.High},
		btnPin: &gpiotest.Pin{N: "SW", L: gpio.High},
		mock:   newStepClock(),
	}
	h.motor = &motorRecorder{Pin: gpiotest.Pin{N: "MOTOR"}, clk: h.mock}

	ctrl, err := New(Options{
		Display:    h.dev,
		Motor:      h.motor,
		EncoderCLK: h.clkPin,
		EncoderDT:  h.dtPin,
		Button:     h.btnPin,
		Start:      start,
		Clock:      h.mock,
	})
	require.NoError(t, err)
	h.ctrl = ctrl
	return h
}

func TestNewValidation(t *testing.T) {
	dev := newFakeDisplay()
	motor := &gpiotest.Pin{N: "MOTOR"}
	pin := &gpiotest.Pin{N: "P"}

	tests := []struct {
		name string
		opts Options
	}{
		{"missing display", Options{Motor: motor, EncoderCLK: pin, EncoderDT: pin, Button: pin}},
		{"missing motor", Options{Display: dev, EncoderCLK: pin, EncoderDT: pin, Button: pin}},
		{"missing encoder pin", Options{Display: dev, Motor: motor, EncoderCLK: pin, EncoderDT: pin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			require.Error(t, err)
		})
	}
}

func TestStepTicksAndDraws(t *testing.T) {
	h := newTestHarness(t, at(10, 30))

	h.ctrl.Step()
	require.Equal(t, 1, h.dev.draws, "first iteration paints")
	require.Equal(t, at(10, 30), h.ctrl.Time())

	h.mock.Add(time.Second)
	h.ctrl.Step()
	require.Equal(t, 1, h.ctrl.Time().Seconds)
}

func TestStepAppliesInputBeforeDrawing(t *testing.T) {
	h := newTestHarness(t, at(10, 30))
	h.ctrl.Step()

	// A detent arriving in the same iteration as a due draw lands on the
	// clock before the frame is composited.
	setLevel(h.dtPin, gpio.High)
	setLevel(h.clkPin, gpio.Low)
	h.mock.Add(refreshInterval)
	h.ctrl.Step()

	require.Equal(t, 31, h.ctrl.Time().Minute())
	require.Equal(t, 2, h.dev.draws)
}

func TestHourRolloverBuzzesInActiveWindow(t *testing.T) {
	h := newTestHarness(t, TimeOfDay{HoursHalf: 16, MinutesHalf: 118, Seconds: 59})

	h.mock.Add(time.Second)
	h.ctrl.Step()

	require.Equal(t, at(9, 0), h.ctrl.Time())
	require.Len(t, h.motor.events, 2*buzzGroups*buzzCycles)
	require.Positive(t, h.dev.draws, "rollover forces a draw")
}

func TestHourRolloverSilentOutsideActiveWindow(t *testing.T) {
	h := newTestHarness(t, TimeOfDay{HoursHalf: 38, MinutesHalf: 118, Seconds: 59})

	h.mock.Add(time.Second)
	h.ctrl.Step()

	require.Equal(t, at(20, 0), h.ctrl.Time())
	require.Empty(t, h.motor.events)
}

func TestRunStopsWhenContextDone(t *testing.T) {
	dev := newFakeDisplay()
	ctrl, err := New(Options{
		Display:    dev,
		Motor:      &gpiotest.Pin{N: "MOTOR"},
		EncoderCLK: &gpiotest.Pin{N: "CLK", L: gpio.High},
		EncoderDT:  &gpiotest.Pin{N: "DT", L: gpio.High},
		Button:     &gpiotest.Pin{N: "SW", L: gpio.High},
		Start:      at(10, 30),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, ctrl.Run(ctx), context.DeadlineExceeded)
	require.Positive(t, dev.draws)
}
