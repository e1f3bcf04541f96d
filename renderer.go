package tabletimer

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/yuvalm11/table-timer/assets"
)

// Compositor layout for the 128x64 panel. All origins are fixed.
const (
	// refreshInterval is the renderer's own rate limit, independent of the
	// clock's second boundary.
	refreshInterval = 100 * time.Millisecond

	frameOriginX = 48
	frameOriginY = 2

	timeTextY   = 30
	timeScale   = 2
	timeXOffset = -1

	tickOriginX = 5
	tickOriginY = 60
	tickSpacing = 2
)

// timeFace metrics; the large readout is this face pixel-doubled.
var timeFace = basicfont.Face7x13

// Renderer composites the current animation frame, the HH:MM readout and the
// elapsed-seconds tick row into a monochrome framebuffer and commits it to
// the display in one Draw call.
type Renderer struct {
	dev   display.Drawer
	clk   clock.Clock
	clock *Clock
	anim  *Animator

	buf      *image1bit.VerticalLSB
	textSrc  *image.Uniform
	cursor   int
	lastDraw time.Time
}

// NewRenderer returns a renderer compositing into dev's bounds. The frame
// cursor starts at the beginning of the animator's current band.
func NewRenderer(dev display.Drawer, clk clock.Clock, c *Clock, anim *Animator) *Renderer {
	return &Renderer{
		dev:     dev,
		clk:     clk,
		clock:   c,
		anim:    anim,
		buf:     image1bit.NewVerticalLSB(dev.Bounds()),
		textSrc: &image.Uniform{C: image1bit.On},
		cursor:  anim.Selection() * assets.FramesPerSet,
	}
}

// Refresh draws at most once per refreshInterval and is otherwise a no-op,
// so callers may invoke it as often as they like.
func (r *Renderer) Refresh() error {
	if r.clk.Now().Sub(r.lastDraw) < refreshInterval {
		return nil
	}
	return r.Redraw()
}

// Redraw draws unconditionally. The hour rollover uses it so the new frame
// band is visible immediately rather than on the next rate-limit expiry.
func (r *Renderer) Redraw() error {
	t := r.clock.Time()
	sel := r.anim.Select(t)

	// Rebase the cursor into the selected band before the lookup; a stale
	// cursor from before a selection change must not index a neighboring
	// band.
	r.cursor = r.cursor%assets.FramesPerSet + sel*assets.FramesPerSet
	frame, err := assets.Frame(sel, r.cursor%assets.FramesPerSet)
	if err != nil {
		return err
	}

	clear(r.buf.Pix)
	draw.Draw(r.buf,
		image.Rect(frameOriginX, frameOriginY, frameOriginX+assets.FrameW, frameOriginY+assets.FrameH),
		frame, image.Point{}, draw.Src)
	r.drawTime(t)
	r.drawSecondTicks(t.Seconds)

	if err := r.dev.Draw(r.dev.Bounds(), r.buf, image.Point{}); err != nil {
		return fmt.Errorf("tabletimer: display draw: %w", err)
	}

	// Advance after the commit so the frame drawn this call matched the
	// selection current at call time.
	r.cursor = (r.cursor+1)%assets.FramesPerSet + sel*assets.FramesPerSet
	r.lastDraw = r.clk.Now()
	return nil
}

// Cursor returns the flat frame cursor into the asset table.
func (r *Renderer) Cursor() int {
	return r.cursor
}

// drawTime draws the zero-padded HH:MM readout at the large font scale,
// horizontally centered with a fixed manual offset.
func (r *Renderer) drawTime(t TimeOfDay) {
	s := t.String()
	w := font.MeasureString(timeFace, s).Ceil()
	x := (r.buf.Rect.Dx()-w*timeScale)/2 + timeXOffset
	r.drawText(x, timeTextY, s, timeScale)
}

// drawSecondTicks draws one small tick per elapsed second, tickSpacing px
// apart; the row length is itself the live seconds indicator.
func (r *Renderer) drawSecondTicks(seconds int) {
	for i := 0; i < seconds; i++ {
		x := tickOriginX + i*tickSpacing
		r.buf.SetBit(x, tickOriginY, image1bit.On)
		r.buf.SetBit(x, tickOriginY+1, image1bit.On)
	}
}

// drawText renders s at (x, y) in one of the two supported font scales:
// native 7x13 or pixel-doubled.
func (r *Renderer) drawText(x, y int, s string, scale int) {
	if scale <= 1 {
		d := font.Drawer{
			Dst:  r.buf,
			Src:  r.textSrc,
			Face: timeFace,
			Dot:  fixed.P(x, y+timeFace.Ascent),
		}
		d.DrawString(s)
		return
	}

	w := font.MeasureString(timeFace, s).Ceil()
	tmp := image1bit.NewVerticalLSB(image.Rect(0, 0, w, timeFace.Height))
	d := font.Drawer{
		Dst:  tmp,
		Src:  r.textSrc,
		Face: timeFace,
		Dot:  fixed.P(0, timeFace.Ascent),
	}
	d.DrawString(s)

	for py := 0; py < timeFace.Height; py++ {
		for px := 0; px < w; px++ {
			if tmp.BitAt(px, py) != image1bit.On {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					r.buf.SetBit(x+px*scale+dx, y+py*scale+dy, image1bit.On)
				}
			}
		}
	}
}
