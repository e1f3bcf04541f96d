package assets

import (
	"fmt"
	"image"

	"github.com/yuvalm11/table-timer/monobit"
)

// Frame table geometry. The flat table holds SetCount contiguous bands of
// FramesPerSet frames each.
const (
	// FrameW is the width of every frame in pixels.
	FrameW = 32
	// FrameH is the height of every frame in pixels.
	FrameH = 24
	// FramesPerSet is the band size: frames belonging to one animation set.
	FramesPerSet = 4
	// SetCount is the number of animation sets.
	SetCount = 10

	frameBytes = FrameW * FrameH / 8
)

// Frame returns frame n of the given animation set as an image backed by the
// packed table data, without copying. Both indices are bounds-checked so a
// malformed (set, cursor) pair fails loudly instead of reading a neighboring
// band.
func Frame(set, n int) (*monobit.HorizontalMSB, error) {
	if set < 0 || set >= SetCount {
		return nil, fmt.Errorf("assets: animation set %d out of range [0,%d)", set, SetCount)
	}
	if n < 0 || n >= FramesPerSet {
		return nil, fmt.Errorf("assets: frame %d out of range [0,%d)", n, FramesPerSet)
	}
	return &monobit.HorizontalMSB{
		Pix:    frames[set*FramesPerSet+n][:],
		Stride: FrameW / 8,
		Rect:   image.Rect(0, 0, FrameW, FrameH),
	}, nil
}
