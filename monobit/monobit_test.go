package monobit

import (
	"image"
	"image/color"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	r, g, b, a := On.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("On.RGBA() = (%x, %x, %x, %x), want all 0xFFFF", r, g, b, a)
	}
	r, g, b, a = Off.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Off.RGBA() = (%x, %x, %x, %x), want (0, 0, 0, 0xFFFF)", r, g, b, a)
	}
}

func TestBitModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Bit
	}{
		{"bit passthrough on", On, On},
		{"bit passthrough off", Off, Off},
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"dark gray", color.RGBA{0x40, 0x40, 0x40, 0xFF}, Off},
		{"light gray", color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}, On},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BitModel.Convert(tt.input).(Bit)
			if result != tt.want {
				t.Errorf("BitModel.Convert(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestNewHorizontalMSB(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantPixLen int
	}{
		{"32x24", image.Rect(0, 0, 32, 24), false, 4, 96},
		{"128x64", image.Rect(0, 0, 128, 64), false, 16, 1024},
		{"8x1", image.Rect(0, 0, 8, 1), false, 1, 1},
		{"offset rect", image.Rect(8, 16, 16, 18), false, 1, 2},
		{"ragged width panics", image.Rect(0, 0, 12, 2), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()

			img := NewHorizontalMSB(tt.rect)
			if !tt.wantPanic {
				if img.Rect != tt.rect {
					t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
				}
				if img.Stride != tt.wantStride {
					t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
				}
				if len(img.Pix) != tt.wantPixLen {
					t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
				}
			}
		})
	}
}

func TestHorizontalMSBBitPacking(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 1))

	img.SetBit(0, 0, On)
	img.SetBit(2, 0, On)
	img.SetBit(3, 0, On)
	img.SetBit(7, 0, On)

	// MSB is leftmost: pixels 0,2,3,7 lit = 0b10110001.
	if img.Pix[0] != 0xB1 {
		t.Errorf("Pix[0] = 0x%02X, want 0xB1", img.Pix[0])
	}

	img.SetBit(0, 0, Off)
	if img.Pix[0] != 0x31 {
		t.Errorf("Pix[0] after clearing pixel 0 = 0x%02X, want 0x31", img.Pix[0])
	}
}

func TestHorizontalMSBRoundTrip(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 16, 4))

	for y := 0; y < 4; y++ {
		for x := 0; x < 16; x++ {
			want := Bit((x+y)%3 == 0)
			img.SetBit(x, y, want)
			if got := img.BitAt(x, y); got != want {
				t.Errorf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestHorizontalMSBOutOfBounds(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 2))

	// Out-of-bounds reads return Off, out-of-bounds writes are dropped.
	if img.BitAt(-1, 0) != Off {
		t.Error("BitAt(-1, 0) should return Off")
	}
	if img.BitAt(8, 0) != Off {
		t.Error("BitAt(8, 0) should return Off")
	}
	img.SetBit(8, 0, On)
	img.SetBit(0, 2, On)
	for _, b := range img.Pix {
		if b != 0 {
			t.Error("out-of-bounds SetBit must not modify pixel data")
		}
	}
}

func TestHorizontalMSBOffsetRect(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(8, 16, 16, 18))

	img.SetBit(8, 16, On)
	if img.Pix[0] != 0x80 {
		t.Errorf("Pix[0] = 0x%02X, want 0x80", img.Pix[0])
	}
	img.SetBit(15, 17, On)
	if img.Pix[1] != 0x01 {
		t.Errorf("Pix[1] = 0x%02X, want 0x01", img.Pix[1])
	}
}

func TestHorizontalMSBSetColor(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 1))

	img.Set(1, 0, color.White)
	img.Set(2, 0, color.Black)
	if img.BitAt(1, 0) != On {
		t.Error("Set(white) should light the pixel")
	}
	if img.BitAt(2, 0) != Off {
		t.Error("Set(black) should clear the pixel")
	}
}
