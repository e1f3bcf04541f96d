// Package monobit provides a 1-bit monochrome image format with horizontal
// MSB-first bit packing, the layout pre-rendered sprite frames are stored in.
package monobit

import (
	"image"
	"image/color"
)

// Bit is a 1-bit monochrome color. True is a lit pixel.
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the bit to standard RGBA: white when lit, black otherwise.
func (b Bit) RGBA() (r, g, b2, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// String returns "On" or "Off".
func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit by luminance threshold.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// HorizontalMSB is a 1-bit image where pixels are stored row-major, 8 pixels
// per byte, most significant bit leftmost.
type HorizontalMSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewHorizontalMSB creates a new HorizontalMSB image with the specified bounds.
// The width must be a multiple of 8.
func NewHorizontalMSB(r image.Rectangle) *HorizontalMSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &HorizontalMSB{Rect: r}
	}
	if w%8 != 0 {
		panic("monobit: width must be a multiple of 8")
	}

	stride := w / 8
	return &HorizontalMSB{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *HorizontalMSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *HorizontalMSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *HorizontalMSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit value of the pixel at (x, y).
func (p *HorizontalMSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *HorizontalMSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit value of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *HorizontalMSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: each byte contains 8 pixels, MSB leftmost.
func (p *HorizontalMSB) pixOffset(x, y int) (offset int, mask byte) {
	offset = (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/8
	mask = 0x80 >> uint((x-p.Rect.Min.X)&7)
	return
}
