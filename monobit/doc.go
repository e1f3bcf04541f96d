// Package monobit provides a 1-bit monochrome image format with horizontal
// MSB-first bit packing.
//
// Pre-rendered sprite frames are stored row-major with 8 pixels per byte, the
// most significant bit being the leftmost pixel.
//
// Memory layout example for an 8-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7
//	Values: 1 0 1 1 0 0 0 1
//	Byte:   0xB1
//
// This package provides:
//
// - Bit: a color type representing a single monochrome pixel
// - BitModel: a color model converting standard Go colors by luminance
// - HorizontalMSB: an image.Image implementation over packed frame bytes
//
// Example usage:
//
//	// Create a 32x24 image
//	img := monobit.NewHorizontalMSB(image.Rect(0, 0, 32, 24))
//
//	// Set a pixel
//	img.SetBit(10, 20, monobit.On)
//
//	// Get a pixel
//	lit := img.BitAt(10, 20)
//
//	// Use with standard Go image operations
//	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Src)
//
// A HorizontalMSB can also wrap existing packed bytes without copying by
// filling the struct fields directly, which is how the animation asset table
// exposes its frames.
package monobit
