package tabletimer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func at(hour, minute int) TimeOfDay {
	return TimeOfDay{HoursHalf: 2 * hour, MinutesHalf: 2 * minute}
}

func TestSelectSchedule(t *testing.T) {
	tests := []struct {
		name string
		t    TimeOfDay
		want int
	}{
		{"fresh hour keeps rotated variant", at(13, 2), 1},
		{"settled hour falls back to work", at(13, 5), SetWork},
		{"late hour stays work", at(13, 59), SetWork},
		{"lunch start", at(12, 0), SetLunch},
		{"lunch beats the settle rule", at(12, 30), SetLunch},
		{"last lunch minute", at(12, 59), SetLunch},
		{"break start", at(16, 0), SetBreak},
		{"last break minute", at(16, 15), SetBreak},
		{"after break window", at(16, 16), SetWork},
		{"evening start", at(19, 0), SetEvening},
		{"late night", at(23, 30), SetEvening},
		{"small hours", at(3, 0), SetEvening},
		{"last night hour", at(7, 59), SetEvening},
		{"morning start beats evening", at(8, 0), SetMorning},
		{"late morning", at(9, 59), SetMorning},
		{"workday start", at(10, 0), 1},
		{"workday settled", at(10, 7), SetWork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimator(at(10, 0))
			require.Equal(t, tt.want, a.Select(tt.t))
			require.Equal(t, tt.want, a.Selection())
		})
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	a := NewAnimator(at(10, 0))
	for _, tod := range []TimeOfDay{at(12, 30), at(16, 10), at(22, 0), at(13, 40)} {
		first := a.Select(tod)
		require.Equal(t, first, a.Select(tod), "at %s", tod)
	}
}

func TestRotateCyclesThroughWorkVariants(t *testing.T) {
	a := NewAnimator(at(10, 0))
	require.Equal(t, 1, a.Selection())

	want := []int{2, 3, 4, 5, 1, 2}
	for _, v := range want {
		a.Rotate()
		require.Equal(t, v, a.Selection())
	}
}

func TestRotatedVariantShowsEarlyInHour(t *testing.T) {
	// During the first minutes of an ordinary hour the rotated variant is
	// the selection; once settled the generic work set takes over.
	a := NewAnimator(at(10, 0))
	a.Rotate()
	a.Rotate()

	require.Equal(t, 3, a.Select(at(14, 4)))
	require.Equal(t, SetWork, a.Select(at(14, 5)))
}

func TestOverrideReleasesToBase(t *testing.T) {
	// Leaving an override window via a rollover restores the rotated
	// variant, not the override value.
	a := NewAnimator(at(12, 30))
	require.Equal(t, SetLunch, a.Selection())

	a.Rotate()
	require.Equal(t, 2, a.Select(at(13, 0)))
}
