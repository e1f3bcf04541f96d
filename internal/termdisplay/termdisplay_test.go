package termdisplay

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func newTestDisplay(t *testing.T, w, h int) *Display {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h/2)
	t.Cleanup(screen.Fini)

	return NewWithScreen(screen, w, h)
}

func cellAt(t *testing.T, d *Display, x, y int) rune {
	t.Helper()

	mainc, _, _, _ := d.Screen().GetContent(x, y)
	return mainc
}

func TestBounds(t *testing.T) {
	d := newTestDisplay(t, 128, 64)
	require.Equal(t, image.Rect(0, 0, 128, 64), d.Bounds())
	require.Equal(t, image1bit.BitModel, d.ColorModel())
}

func TestDrawHalfBlocks(t *testing.T) {
	d := newTestDisplay(t, 8, 4)

	src := image1bit.NewVerticalLSB(image.Rect(0, 0, 8, 4))
	src.SetBit(0, 0, image1bit.On) // top only
	src.SetBit(1, 1, image1bit.On) // bottom only
	src.SetBit(2, 0, image1bit.On) // both
	src.SetBit(2, 1, image1bit.On)

	require.NoError(t, d.Draw(d.Bounds(), src, image.Point{}))

	require.Equal(t, '▀', cellAt(t, d, 0, 0))
	require.Equal(t, '▄', cellAt(t, d, 1, 0))
	require.Equal(t, '█', cellAt(t, d, 2, 0))
	require.Equal(t, ' ', cellAt(t, d, 3, 0))
}

func TestDrawOverwritesPreviousFrame(t *testing.T) {
	d := newTestDisplay(t, 8, 4)

	src := image1bit.NewVerticalLSB(image.Rect(0, 0, 8, 4))
	src.SetBit(0, 0, image1bit.On)
	require.NoError(t, d.Draw(d.Bounds(), src, image.Point{}))
	require.Equal(t, '▀', cellAt(t, d, 0, 0))

	blank := image1bit.NewVerticalLSB(image.Rect(0, 0, 8, 4))
	require.NoError(t, d.Draw(d.Bounds(), blank, image.Point{}))
	require.Equal(t, ' ', cellAt(t, d, 0, 0))
}
