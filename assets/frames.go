package assets

// Frame bitmaps for the ten animation sets. Each frame is 32x24 pixels packed
// row-major, 8 pixels per byte, MSB leftmost. Frames are stored as one flat
// table partitioned into contiguous per-set bands of FramesPerSet entries.
var frames = [SetCount * FramesPerSet][frameBytes]byte{
	// set 0, frame 0
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x01, 0x08, 0x08, 0x40, 0x01, 0x07, 0xF0, 0x40, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 0, frame 1
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x18, 0x03, 0x00, 0x00, 0x30, 0x01, 0x80,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x40, 0x00, 0x40, 0x00, 0x84, 0x04, 0x20,
		0x00, 0x8E, 0x0E, 0x20, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x01, 0x80, 0x00, 0x30, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x00, 0x84, 0x04, 0x20, 0x00, 0x83, 0xF8, 0x20, 0x00, 0x40, 0x00, 0x40,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x30, 0x01, 0x80, 0x00, 0x18, 0x03, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 0, frame 2
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x01, 0x08, 0x08, 0x40, 0x01, 0x07, 0xF0, 0x40, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 0, frame 3
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x60, 0x0C, 0x00, 0x00, 0xC0, 0x06, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x01, 0x00, 0x01, 0x00, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x38, 0x38, 0x80, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x06, 0x00, 0x00, 0xC0, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x10, 0x10, 0x80, 0x02, 0x0F, 0xE0, 0x80, 0x01, 0x00, 0x01, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x00, 0xC0, 0x06, 0x00, 0x00, 0x60, 0x0C, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 1, frame 0
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x01, 0x00, 0x00, 0x40, 0x01, 0x07, 0xF0, 0x40, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 1, frame 1
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x18, 0x03, 0x00, 0x00, 0x30, 0x01, 0x80,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x40, 0x00, 0x40, 0x00, 0x84, 0x04, 0x20,
		0x00, 0x8E, 0x0E, 0x20, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x01, 0x80, 0x00, 0x30, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x00, 0x80, 0x00, 0x20, 0x00, 0x83, 0xF8, 0x20, 0x00, 0x40, 0x00, 0x40,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x30, 0x01, 0x80, 0x00, 0x18, 0x03, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 1, frame 2
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x01, 0x00, 0x00, 0x40, 0x01, 0x07, 0xF0, 0x40, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 1, frame 3
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x60, 0x0C, 0x00, 0x00, 0xC0, 0x06, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x01, 0x00, 0x01, 0x00, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x38, 0x38, 0x80, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x06, 0x00, 0x00, 0xC0, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x00, 0x00, 0x80, 0x02, 0x0F, 0xE0, 0x80, 0x01, 0x00, 0x01, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x00, 0xC0, 0x06, 0x00, 0x00, 0x60, 0x0C, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 2, frame 0
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x80, 0x40,
		0x01, 0x01, 0xC0, 0x40, 0x01, 0x03, 0x60, 0x40, 0x00, 0x81, 0xC0, 0x80,
		0x00, 0xC0, 0x81, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 2, frame 1
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x18, 0x03, 0x00, 0x00, 0x30, 0x01, 0x80,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x40, 0x00, 0x40, 0x00, 0x84, 0x04, 0x20,
		0x00, 0x8E, 0x0E, 0x20, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x01, 0x80, 0x00, 0x30, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x40, 0x20,
		0x00, 0x80, 0xE0, 0x20, 0x00, 0x81, 0xB0, 0x20, 0x00, 0x40, 0xE0, 0x40,
		0x00, 0x60, 0x40, 0xC0, 0x00, 0x30, 0x01, 0x80, 0x00, 0x18, 0x03, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 2, frame 2
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x80, 0x40,
		0x01, 0x01, 0xC0, 0x40, 0x01, 0x03, 0x60, 0x40, 0x00, 0x81, 0xC0, 0x80,
		0x00, 0xC0, 0x81, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 2, frame 3
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x60, 0x0C, 0x00, 0x00, 0xC0, 0x06, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x01, 0x00, 0x01, 0x00, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x38, 0x38, 0x80, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x06, 0x00, 0x00, 0xC0, 0x02, 0x00, 0x00, 0x80, 0x02, 0x01, 0x00, 0x80,
		0x02, 0x03, 0x80, 0x80, 0x02, 0x06, 0xC0, 0x80, 0x01, 0x03, 0x81, 0x00,
		0x01, 0x81, 0x03, 0x00, 0x00, 0xC0, 0x06, 0x00, 0x00, 0x60, 0x0C, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 3, frame 0
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x01, 0x0F, 0xF8, 0x40, 0x01, 0x07, 0xF0, 0x40, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 3, frame 1
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x18, 0x03, 0x00, 0x00, 0x30, 0x01, 0x80,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x40, 0x00, 0x40, 0x00, 0x84, 0x04, 0x20,
		0x00, 0x8E, 0x0E, 0x20, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x01, 0x80, 0x00, 0x30, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x00, 0x87, 0xFC, 0x20, 0x00, 0x83, 0xF8, 0x20, 0x00, 0x40, 0x00, 0x40,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x30, 0x01, 0x80, 0x00, 0x18, 0x03, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 3, frame 2
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x01, 0x0F, 0xF8, 0x40, 0x01, 0x07, 0xF0, 0x40, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 3, frame 3
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x60, 0x0C, 0x00, 0x00, 0xC0, 0x06, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x01, 0x00, 0x01, 0x00, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x38, 0x38, 0x80, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x06, 0x00, 0x00, 0xC0, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x1F, 0xF0, 0x80, 0x02, 0x0F, 0xE0, 0x80, 0x01, 0x00, 0x01, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x00, 0xC0, 0x06, 0x00, 0x00, 0x60, 0x0C, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 4, frame 0
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x01, 0x07, 0xF0, 0x40, 0x01, 0x08, 0x08, 0x40, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 4, frame 1
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x18, 0x03, 0x00, 0x00, 0x30, 0x01, 0x80,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x40, 0x00, 0x40, 0x00, 0x84, 0x04, 0x20,
		0x00, 0x8E, 0x0E, 0x20, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x01, 0x80, 0x00, 0x30, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x00, 0x83, 0xF8, 0x20, 0x00, 0x84, 0x04, 0x20, 0x00, 0x40, 0x00, 0x40,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x30, 0x01, 0x80, 0x00, 0x18, 0x03, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 4, frame 2
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x01, 0x07, 0xF0, 0x40, 0x01, 0x08, 0x08, 0x40, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 4, frame 3
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x60, 0x0C, 0x00, 0x00, 0xC0, 0x06, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x01, 0x00, 0x01, 0x00, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x38, 0x38, 0x80, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x06, 0x00, 0x00, 0xC0, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x0F, 0xE0, 0x80, 0x02, 0x10, 0x10, 0x80, 0x01, 0x00, 0x01, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x00, 0xC0, 0x06, 0x00, 0x00, 0x60, 0x0C, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 5, frame 0
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x01, 0x0A, 0xA8, 0x40, 0x01, 0x05, 0x50, 0x40, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 5, frame 1
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x18, 0x03, 0x00, 0x00, 0x30, 0x01, 0x80,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x40, 0x00, 0x40, 0x00, 0x84, 0x04, 0x20,
		0x00, 0x8E, 0x0E, 0x20, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x01, 0x80, 0x00, 0x30, 0x00, 0x80, 0x00, 0x20, 0x00, 0x80, 0x00, 0x20,
		0x00, 0x85, 0x54, 0x20, 0x00, 0x82, 0xA8, 0x20, 0x00, 0x40, 0x00, 0x40,
		0x00, 0x60, 0x00, 0xC0, 0x00, 0x30, 0x01, 0x80, 0x00, 0x18, 0x03, 0x00,
		0x00, 0x07, 0xFC, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 5, frame 2
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x30, 0x06, 0x00, 0x00, 0x60, 0x03, 0x00,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x08, 0x08, 0x40,
		0x01, 0x1C, 0x1C, 0x40, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x60, 0x01, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x40,
		0x01, 0x0A, 0xA8, 0x40, 0x01, 0x05, 0x50, 0x40, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xC0, 0x01, 0x80, 0x00, 0x60, 0x03, 0x00, 0x00, 0x30, 0x06, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 5, frame 3
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x60, 0x0C, 0x00, 0x00, 0xC0, 0x06, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x01, 0x00, 0x01, 0x00, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x38, 0x38, 0x80, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x06, 0x00, 0x00, 0xC0, 0x02, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x80,
		0x02, 0x15, 0x50, 0x80, 0x02, 0x0A, 0xA0, 0x80, 0x01, 0x00, 0x01, 0x00,
		0x01, 0x80, 0x03, 0x00, 0x00, 0xC0, 0x06, 0x00, 0x00, 0x60, 0x0C, 0x00,
		0x00, 0x1F, 0xF0, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 6, frame 0
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0xA0, 0x00,
		0x00, 0x04, 0x50, 0x00, 0x00, 0x08, 0x80, 0x00, 0x00, 0x04, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x3F, 0xFC, 0x00, 0x00, 0x20, 0x04, 0x00,
		0x00, 0x20, 0x07, 0x80, 0x00, 0x20, 0x04, 0x80, 0x00, 0x20, 0x04, 0x80,
		0x00, 0x20, 0x04, 0x80, 0x00, 0x20, 0x07, 0x80, 0x00, 0x20, 0x04, 0x00,
		0x00, 0x20, 0x04, 0x00, 0x00, 0x20, 0x04, 0x00, 0x00, 0x3F, 0xFC, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 6, frame 1
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x05, 0x00, 0x00,
		0x00, 0x02, 0x90, 0x00, 0x00, 0x04, 0x08, 0x00, 0x00, 0x00, 0x10, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x3F, 0xFC, 0x00, 0x00, 0x20, 0x04, 0x00,
		0x00, 0x20, 0x07, 0x80, 0x00, 0x20, 0x04, 0x80, 0x00, 0x20, 0x04, 0x80,
		0x00, 0x20, 0x04, 0x80, 0x00, 0x20, 0x07, 0x80, 0x00, 0x20, 0x04, 0x00,
		0x00, 0x20, 0x04, 0x00, 0x00, 0x20, 0x04, 0x00, 0x00, 0x3F, 0xFC, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 6, frame 2
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x08, 0x10, 0x00,
		0x00, 0x04, 0xA0, 0x00, 0x00, 0x00, 0x50, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x3F, 0xFC, 0x00, 0x00, 0x20, 0x04, 0x00,
		0x00, 0x20, 0x07, 0x80, 0x00, 0x20, 0x04, 0x80, 0x00, 0x20, 0x04, 0x80,
		0x00, 0x20, 0x04, 0x80, 0x00, 0x20, 0x07, 0x80, 0x00, 0x20, 0x04, 0x00,
		0x00, 0x20, 0x04, 0x00, 0x00, 0x20, 0x04, 0x00, 0x00, 0x3F, 0xFC, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 6, frame 3
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x88, 0x00,
		0x00, 0x05, 0x10, 0x00, 0x00, 0x02, 0x80, 0x00, 0x00, 0x04, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x3F, 0xFC, 0x00, 0x00, 0x20, 0x04, 0x00,
		0x00, 0x20, 0x07, 0x80, 0x00, 0x20, 0x04, 0x80, 0x00, 0x20, 0x04, 0x80,
		0x00, 0x20, 0x04, 0x80, 0x00, 0x20, 0x07, 0x80, 0x00, 0x20, 0x04, 0x00,
		0x00, 0x20, 0x04, 0x00, 0x00, 0x20, 0x04, 0x00, 0x00, 0x3F, 0xFC, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 7, frame 0
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x01, 0xC0, 0x00, 0x00, 0x03, 0xE0, 0x00,
		0x00, 0x01, 0xC0, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x20, 0x82, 0x00, 0x00, 0x3F, 0xFE, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00,
		0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00,
		0x00, 0x02, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 7, frame 1
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x01, 0xC0, 0x00, 0x00, 0x03, 0xE0, 0x00,
		0x00, 0x01, 0xC0, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x20, 0x82, 0x00, 0x00, 0x3F, 0xFE, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00,
		0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00,
		0x00, 0x02, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 7, frame 2
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x01, 0xC0, 0x00, 0x00, 0x03, 0xE0, 0x00,
		0x00, 0x01, 0xC0, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x20, 0x82, 0x00,
		0x00, 0x3F, 0xFE, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00,
		0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00,
		0x00, 0x02, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 7, frame 3
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x01, 0xC0, 0x00, 0x00, 0x03, 0xE0, 0x00,
		0x00, 0x01, 0xC0, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x20, 0x82, 0x00, 0x00, 0x3F, 0xFE, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00,
		0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00, 0x00, 0x02, 0x20, 0x00,
		0x00, 0x02, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 8, frame 0
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x01, 0xC0, 0x00, 0x20, 0x00, 0x80,
		0x01, 0xC0, 0x00, 0x40, 0x03, 0x80, 0x00, 0xE0, 0x07, 0x00, 0x00, 0x40,
		0x0E, 0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x10, 0x0E, 0x00, 0x00, 0x00,
		0x1C, 0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x00,
		0x0E, 0x00, 0x02, 0x00, 0x07, 0x00, 0x07, 0x00, 0x03, 0x80, 0x02, 0x00,
		0x01, 0xC0, 0x00, 0x00, 0x00, 0x20, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 8, frame 1
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x20, 0x00, 0x00,
		0x01, 0xC0, 0x00, 0x00, 0x03, 0x80, 0x00, 0x40, 0x07, 0x00, 0x00, 0x00,
		0x0E, 0x00, 0x00, 0x10, 0x0E, 0x00, 0x00, 0x38, 0x0E, 0x00, 0x00, 0x10,
		0x1C, 0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x00,
		0x0E, 0x00, 0x00, 0x00, 0x07, 0x00, 0x02, 0x00, 0x03, 0x80, 0x00, 0x00,
		0x01, 0xC0, 0x00, 0x08, 0x00, 0x20, 0x00, 0x1C, 0x00, 0x00, 0x00, 0x08,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 8, frame 2
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x01, 0xC0, 0x00, 0x20, 0x00, 0x80,
		0x01, 0xC0, 0x00, 0x40, 0x03, 0x80, 0x00, 0xE0, 0x07, 0x00, 0x00, 0x40,
		0x0E, 0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x10, 0x0E, 0x00, 0x00, 0x00,
		0x1C, 0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x00,
		0x0E, 0x00, 0x02, 0x00, 0x07, 0x00, 0x07, 0x00, 0x03, 0x80, 0x02, 0x00,
		0x01, 0xC0, 0x00, 0x00, 0x00, 0x20, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 8, frame 3
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x20, 0x00, 0x00,
		0x01, 0xC0, 0x00, 0x00, 0x03, 0x80, 0x00, 0x40, 0x07, 0x00, 0x00, 0x00,
		0x0E, 0x00, 0x00, 0x10, 0x0E, 0x00, 0x00, 0x38, 0x0E, 0x00, 0x00, 0x10,
		0x1C, 0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x00,
		0x0E, 0x00, 0x00, 0x00, 0x07, 0x00, 0x02, 0x00, 0x03, 0x80, 0x00, 0x00,
		0x01, 0xC0, 0x00, 0x08, 0x00, 0x20, 0x00, 0x1C, 0x00, 0x00, 0x00, 0x08,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 9, frame 0
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x07, 0xF0, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x0F, 0xF8, 0x00, 0x01, 0x8F, 0xF8, 0x00,
		0x3F, 0xFF, 0xFF, 0xFC, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 9, frame 1
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x00,
		0x00, 0x00, 0x80, 0x00, 0x00, 0x07, 0xF0, 0x00, 0x00, 0x0F, 0xF8, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x0F, 0xF8, 0xC0, 0x00, 0x1F, 0xFC, 0x00,
		0x3F, 0xFF, 0xFF, 0xFC, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 9, frame 2
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00,
		0x00, 0x07, 0xF0, 0x00, 0x00, 0x0F, 0xF8, 0x00, 0x00, 0x0F, 0xF8, 0x00,
		0x01, 0x8F, 0xF8, 0x00, 0x00, 0x1F, 0xFC, 0x00, 0x00, 0x0F, 0xF8, 0x00,
		0x3F, 0xFF, 0xFF, 0xFC, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	// set 9, frame 3
	{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x07, 0xF0, 0x00,
		0x00, 0x0F, 0xF8, 0x00, 0x00, 0x0F, 0xF8, 0x00, 0x00, 0x0F, 0xF8, 0xC0,
		0x00, 0x1F, 0xFC, 0x00, 0x00, 0x0F, 0xF8, 0x00, 0x00, 0x0F, 0xF8, 0x00,
		0x3F, 0xFF, 0xFF, 0xFC, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
}
