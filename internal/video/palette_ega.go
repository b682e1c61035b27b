package video

// paletteEGA is the fixed 16-color EGA palette used when the DOS data is
// rendered in EGA mode. Three bytes per color, RGB.
var paletteEGA = [16 * 3]uint8{
	0x00, 0x00, 0x00,
	0x00, 0x00, 0xAA,
	0x00, 0xAA, 0x00,
	0x00, 0xAA, 0xAA,
	0xAA, 0x00, 0x00,
	0xAA, 0x00, 0xAA,
	0xAA, 0x55, 0x00,
	0xAA, 0xAA, 0xAA,
	0x55, 0x55, 0x55,
	0x55, 0x55, 0xFF,
	0x55, 0xFF, 0x55,
	0x55, 0xFF, 0xFF,
	0xFF, 0x55, 0x55,
	0xFF, 0x55, 0xFF,
	0xFF, 0xFF, 0x55,
	0xFF, 0xFF, 0xFF,
}
