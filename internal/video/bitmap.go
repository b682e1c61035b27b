package video

import (
	"encoding/binary"

	"raw-engine/internal/debug"
)

// Pixel formats accepted by drawBitmap.
const (
	fmtCLUT = 0
	fmtRGB  = 2
)

// decodeAmiga expands a 4-bitplane 320x200 image (8000 bytes per plane,
// MSB-first) into one byte per pixel.
func decodeAmiga(src []byte, dst []byte) {
	const planeSize = Height * Width / 8
	s := 0
	d := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x += 8 {
			for b := 0; b < 8; b++ {
				mask := uint8(1 << (7 - b))
				color := uint8(0)
				for p := 0; p < 4; p++ {
					if src[s+p*planeSize]&mask != 0 {
						color |= 1 << p
					}
				}
				dst[d] = color
				d++
			}
			s++
		}
	}
}

// decodeAtari expands the same planar format with big-endian words and the
// four planes interleaved every 8 bytes.
func decodeAtari(src []byte, dst []byte) {
	s := 0
	d := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x += 16 {
			for b := 0; b < 16; b++ {
				mask := uint16(1 << (15 - b))
				color := uint8(0)
				for p := 0; p < 4; p++ {
					if binary.BigEndian.Uint16(src[s+p*2:])&mask != 0 {
						color |= 1 << p
					}
				}
				dst[d] = color
				d++
			}
			s += 8
		}
	}
}

// clut expands a paletted image to packed RGB using the BMP-embedded BGR0
// palette, optionally flipping vertically.
func clut(src []byte, pal []byte, w, h, bpp int, flipY bool, dst []byte) {
	dstPitch := bpp * w
	d := 0
	if flipY {
		d = (h - 1) * bpp * w
		dstPitch = -bpp * w
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			color := int(src[x])
			b := pal[color*4]
			g := pal[color*4+1]
			r := pal[color*4+2]
			dst[d+x*bpp] = r
			dst[d+x*bpp+1] = g
			dst[d+x*bpp+2] = b
		}
		src = src[w:]
		d += dstPitch
	}
}

// decodeBMP parses a BM file: 8 bpp paletted or 32 bpp BGRA, uncompressed.
// Returns packed RGB pixels or nil when the format is not handled.
func (v *Video) decodeBMP(src []byte) (pix []byte, w, h int) {
	if len(src) < 0x22 || src[0] != 'B' || src[1] != 'M' {
		return nil, 0, 0
	}
	imageOffset := binary.LittleEndian.Uint32(src[0xA:])
	width := int(binary.LittleEndian.Uint32(src[0x12:]))
	height := int(binary.LittleEndian.Uint32(src[0x16:]))
	depth := int(binary.LittleEndian.Uint16(src[0x1C:]))
	compression := binary.LittleEndian.Uint32(src[0x1E:])
	if (depth != 8 && depth != 32) || compression != 0 {
		v.Log.LogVideof(debug.LogLevelWarning, "Unhandled bitmap depth %d compression %d", depth, compression)
		return nil, 0, 0
	}
	const bpp = 3
	dst := make([]byte, width*height*bpp)
	if depth == 8 {
		palette := src[14+40:] // file header + info header
		clut(src[imageOffset:], palette, width, height, bpp, true, dst)
	} else {
		p := src[imageOffset:]
		for y := height - 1; y >= 0; y-- {
			q := dst[y*width*bpp:]
			for x := 0; x < width; x++ {
				color := binary.LittleEndian.Uint32(p)
				p = p[4:]
				q[x*bpp] = uint8(color >> 16)
				q[x*bpp+1] = uint8(color >> 8)
				q[x*bpp+2] = uint8(color)
			}
		}
	}
	return dst, width, height
}

func (v *Video) drawBitmap(buffer uint8, data []byte, w, h, fmt int) {
	if fmt == fmtCLUT && w == Width && h == Height {
		copy(v.pagePtr(buffer), data[:w*h])
		return
	}
	v.Log.LogVideof(debug.LogLevelWarning, "drawBitmap: unhandled fmt %d w %d h %d", fmt, w, h)
}

// CopyBitmap decodes a freshly loaded bitmap resource into the work page.
// The codec is selected by the data set the resource came from.
func (v *Video) CopyBitmap(src []byte) {
	var temp [Width * Height]byte
	switch v.Res.DataType {
	case DataTypeDOS, DataTypeAmiga:
		decodeAmiga(src, temp[:])
		v.drawBitmap(v.Buffers[0], temp[:], Width, Height, fmtCLUT)
	case DataTypeAtari:
		decodeAtari(src, temp[:])
		v.drawBitmap(v.Buffers[0], temp[:], Width, Height, fmtCLUT)
	default:
		if buf, w, h := v.decodeBMP(src); buf != nil {
			v.drawBitmap(v.Buffers[0], buf, w, h, fmtRGB)
		}
	}
}
