// Package termdisplay renders a monochrome framebuffer into a terminal using
// half-block characters, one cell per two vertical pixels. It satisfies the
// same display contract as the OLED driver, so the control core runs
// unmodified against a terminal for development without the hardware.
package termdisplay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gdamore/tcell/v2"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Half-block glyphs indexed by (top lit, bottom lit).
var blocks = [2][2]rune{
	{' ', '▄'},
	{'▀', '█'},
}

var pixelStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// Display is a terminal-backed monochrome panel.
type Display struct {
	screen tcell.Screen
	buf    *image1bit.VerticalLSB
}

// New opens the hosting terminal and returns a display of the given pixel
// size. Halt releases the terminal.
func New(width, height int) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termdisplay: open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termdisplay: init screen: %w", err)
	}
	return NewWithScreen(screen, width, height), nil
}

// NewWithScreen wraps an already initialized screen. Used by tests with a
// simulation screen; the caller keeps ownership of event polling.
func NewWithScreen(screen tcell.Screen, width, height int) *Display {
	return &Display{
		screen: screen,
		buf:    image1bit.NewVerticalLSB(image.Rect(0, 0, width, height)),
	}
}

// Screen exposes the underlying terminal for event polling.
func (d *Display) Screen() tcell.Screen {
	return d.screen
}

func (d *Display) String() string {
	return fmt.Sprintf("termdisplay.Display{%s}", d.buf.Rect.Max)
}

// Halt restores the terminal.
func (d *Display) Halt() error {
	d.screen.Fini()
	return nil
}

func (d *Display) ColorModel() color.Model {
	return image1bit.BitModel
}

func (d *Display) Bounds() image.Rectangle {
	return d.buf.Rect
}

// Draw updates the framebuffer region and repaints the whole terminal grid.
// Each character cell covers one pixel column and two pixel rows.
func (d *Display) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.buf, r, src, sp, draw.Src)

	for y := 0; y < d.buf.Rect.Dy(); y += 2 {
		for x := 0; x < d.buf.Rect.Dx(); x++ {
			top := bit(d.buf.BitAt(x, y))
			bottom := 0
			if y+1 < d.buf.Rect.Dy() {
				bottom = bit(d.buf.BitAt(x, y+1))
			}
			d.screen.SetContent(x, y/2, blocks[top][bottom], nil, pixelStyle)
		}
	}
	d.screen.Show()
	return nil
}

func bit(b image1bit.Bit) int {
	if b == image1bit.On {
		return 1
	}
	return 0
}
