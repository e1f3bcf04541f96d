// Package assets holds the pre-rendered animation frame table.
//
// The table is flat and read-only, logically partitioned into equal-size
// contiguous bands, one band per animation set. Frame data is packed in the
// monobit.HorizontalMSB layout (row-major, MSB leftmost) and exposed through
// the bounds-checked Frame lookup; the pixel content itself is opaque to the
// control core.
package assets
