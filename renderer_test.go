package tabletimer

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/yuvalm11/table-timer/assets"
)

// fakeDisplay records commits and keeps a snapshot of the last framebuffer.
type fakeDisplay struct {
	rect  image.Rectangle
	draws int
	last  *image1bit.VerticalLSB
	fail  error
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{rect: image.Rect(0, 0, 128, 64)}
}

func (d *fakeDisplay) String() string          { return "fakeDisplay" }
func (d *fakeDisplay) Halt() error             { return nil }
func (d *fakeDisplay) ColorModel() color.Model { return image1bit.BitModel }
func (d *fakeDisplay) Bounds() image.Rectangle { return d.rect }

func (d *fakeDisplay) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.fail != nil {
		return d.fail
	}
	d.draws++
	d.last = image1bit.NewVerticalLSB(d.rect)
	draw.Draw(d.last, r, src, sp, draw.Src)
	return nil
}

func newTestRenderer(start TimeOfDay) (*Renderer, *fakeDisplay, *Clock, *clock.Mock) {
	mock := clock.NewMock()
	dev := newFakeDisplay()
	c := NewClock(start, mock.Now())
	anim := NewAnimator(start)
	return NewRenderer(dev, mock, c, anim), dev, c, mock
}

func TestRefreshRateLimit(t *testing.T) {
	r, dev, _, mock := newTestRenderer(at(13, 30))

	require.NoError(t, r.Refresh())
	require.Equal(t, 1, dev.draws)

	// Repeated calls inside the interval are no-ops.
	require.NoError(t, r.Refresh())
	require.NoError(t, r.Refresh())
	require.Equal(t, 1, dev.draws)

	mock.Add(refreshInterval - time.Millisecond)
	require.NoError(t, r.Refresh())
	require.Equal(t, 1, dev.draws)

	mock.Add(time.Millisecond)
	require.NoError(t, r.Refresh())
	require.Equal(t, 2, dev.draws)
}

func TestRedrawIgnoresRateLimit(t *testing.T) {
	r, dev, _, _ := newTestRenderer(at(13, 30))

	require.NoError(t, r.Redraw())
	require.NoError(t, r.Redraw())
	require.Equal(t, 2, dev.draws)
}

func TestCursorStepsWithinBand(t *testing.T) {
	r, _, _, _ := newTestRenderer(at(13, 30))
	require.Equal(t, 0, r.Cursor())

	want := []int{1, 2, 3, 0, 1}
	for _, v := range want {
		require.NoError(t, r.Redraw())
		require.Equal(t, v, r.Cursor())
		require.Equal(t, SetWork, r.Cursor()/assets.FramesPerSet)
	}
}

func TestCursorRebasesOnSelectionChange(t *testing.T) {
	r, _, c, _ := newTestRenderer(at(11, 30))
	require.NoError(t, r.Redraw())
	require.NoError(t, r.Redraw())
	require.Equal(t, SetWork, r.Cursor()/assets.FramesPerSet)

	// Jumping the hour into lunch must move the cursor into the lunch band
	// on the very next draw; a stale cursor never indexes a foreign band.
	c.AdjustHour(2)
	require.NoError(t, r.Redraw())
	require.Equal(t, SetLunch, r.Cursor()/assets.FramesPerSet)
}

func TestRedrawPaintsSecondTicks(t *testing.T) {
	r, dev, _, _ := newTestRenderer(TimeOfDay{HoursHalf: 26, MinutesHalf: 60, Seconds: 5})
	require.NoError(t, r.Redraw())

	for i := 0; i < 5; i++ {
		x := tickOriginX + i*tickSpacing
		require.Equal(t, image1bit.On, dev.last.BitAt(x, tickOriginY), "tick %d top", i)
		require.Equal(t, image1bit.On, dev.last.BitAt(x, tickOriginY+1), "tick %d bottom", i)
	}
	require.Equal(t, image1bit.Off, dev.last.BitAt(tickOriginX+5*tickSpacing, tickOriginY), "tick row ends at elapsed seconds")
}

func TestRedrawPaintsFrameAndTime(t *testing.T) {
	r, dev, _, _ := newTestRenderer(at(13, 30))
	require.NoError(t, r.Redraw())

	frameLit := 0
	for y := frameOriginY; y < frameOriginY+assets.FrameH; y++ {
		for x := frameOriginX; x < frameOriginX+assets.FrameW; x++ {
			if dev.last.BitAt(x, y) == image1bit.On {
				frameLit++
			}
		}
	}
	require.Positive(t, frameLit, "animation frame region")

	textLit := 0
	for y := timeTextY; y < timeTextY+timeScale*timeFace.Height; y++ {
		for x := 0; x < dev.rect.Dx(); x++ {
			if dev.last.BitAt(x, y) == image1bit.On {
				textLit++
			}
		}
	}
	require.Positive(t, textLit, "time readout region")
}

func TestRedrawDisplayFailure(t *testing.T) {
	r, dev, _, _ := newTestRenderer(at(13, 30))
	dev.fail = errors.New("bus gone")

	before := r.Cursor()
	err := r.Redraw()
	require.Error(t, err)
	require.Contains(t, err.Error(), "display draw")

	// A failed commit does not advance the animation.
	require.Equal(t, before, r.Cursor())

	// Nor does it arm the rate limit.
	dev.fail = nil
	require.NoError(t, r.Refresh())
	require.Equal(t, 1, dev.draws)
}
