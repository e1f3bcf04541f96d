// Package tabletimer is the control core of a small desk clock.
//
// It tracks the time of day at half-minute granularity, derives an animation
// selection from it through ordered override rules, buzzes a vibration motor
// once per hour during working hours, and composites the selected animation
// frame, the time readout and a seconds indicator onto a small monochrome
// display.
//
// Everything runs on a single cooperative loop with no preemption: each
// iteration ticks the clock, polls the rotary encoder and mode button, and
// refreshes the rate-limited renderer. The hourly buzz deliberately blocks
// the loop for its whole 2.4 s pattern; the clock visibly pauses during it.
//
// Hardware is reached only through narrow collaborator contracts: a
// display.Drawer for the framebuffer, a gpio.PinOut for the motor and three
// gpio.PinIn lines for the encoder, so the core runs unchanged against real
// periph.io devices, the terminal simulator or test fakes.
//
// See the cmd/table-timer and cmd/table-timer-sim binaries for wiring.
package tabletimer
