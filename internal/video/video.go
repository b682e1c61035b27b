// Package video implements the polygon renderer of the interpreter: four
// paletted 320x200 pages behind a work/front/back indirection, the shape
// stream decoder, the planar and BMP bitmap codecs and the staged palette.
package video

import (
	"encoding/binary"

	"raw-engine/internal/debug"
	"raw-engine/internal/resource"
	"raw-engine/internal/text"
)

// Framebuffer dimensions.
const (
	Width  = 320
	Height = 200
)

// Aliases kept short because the codecs switch on them constantly.
const (
	DataTypeDOS   = resource.DataTypeDOS
	DataTypeAmiga = resource.DataTypeAmiga
	DataTypeAtari = resource.DataTypeAtari
)

// Video owns the four physical pages, the presented framebuffer and the
// 16-color palette. Buffers holds the logical work/front/back page indices.
type Video struct {
	Fb    [Width * Height]uint8
	Pages [4][Width * Height]uint8

	Palette [16]uint32 // 0xAABBGGRR: alpha in the top byte, red in the low byte

	NextPal    uint8
	CurrentPal uint8
	Buffers    [3]uint8 // work, front, back
	DrawPage   uint8    // physical page targeted by the draw kernels

	UseEGA       bool
	FixUpPalette bool

	Res          *resource.Manager
	StringsTable []text.Entry
	Log          *debug.Logger

	// Shape stream cursor, valid only while a draw opcode runs.
	dataBuf []byte
	dataPC  int
}

// New creates a video subsystem bound to a resource manager.
func New(res *resource.Manager, log *debug.Logger) *Video {
	v := &Video{Res: res, Log: log}
	v.Init()
	return v
}

// Init resets the page indirection and palette staging.
func (v *Video) Init() {
	v.NextPal = 0xFF
	v.CurrentPal = 0xFF
	v.Buffers[2] = v.getPage(1)
	v.Buffers[1] = v.getPage(2)
	v.SetWorkPage(0xFE)
}

// getPage resolves a page selector: 0..3 are physical pages, 0xFE is the
// front page (Buffers[1]), 0xFF the back page (Buffers[2]).
func (v *Video) getPage(page uint8) uint8 {
	if page <= 3 {
		return page
	}
	switch page {
	case 0xFF:
		return v.Buffers[2]
	case 0xFE:
		return v.Buffers[1]
	}
	v.Log.LogVideof(debug.LogLevelWarning, "getPage: bad selector 0x%X", page)
	return 0
}

// SetWorkPage selects the page subsequent draws target.
func (v *Video) SetWorkPage(page uint8) {
	v.Log.LogVideof(debug.LogLevelDebug, "SetWorkPage(%d)", page)
	v.Buffers[0] = v.getPage(page)
}

// FillPage clears a page to a solid color.
func (v *Video) FillPage(page, color uint8) {
	v.Log.LogVideof(debug.LogLevelDebug, "FillPage(%d, %d)", page, color)
	v.clearBuffer(v.getPage(page), color)
}

// CopyPage copies one page onto another. A source selector with bit 7 set
// requests a vertical scroll; selectors 0xFE/0xFF never scroll.
func (v *Video) CopyPage(src, dst uint8, vscroll int16) {
	v.Log.LogVideof(debug.LogLevelDebug, "CopyPage(%d, %d)", src, dst)
	if src >= 0xFE {
		v.copyBuffer(v.getPage(dst), v.getPage(src), 0)
		return
	}
	src &^= 0x40
	if src&0x80 == 0 {
		v.copyBuffer(v.getPage(dst), v.getPage(src), 0)
		return
	}
	sl := v.getPage(src & 3)
	dl := v.getPage(dst)
	if sl != dl && vscroll >= -199 && vscroll <= 199 {
		v.copyBuffer(dl, sl, int(vscroll))
	}
}

// UpdateDisplay presents a page: 0xFF swaps front and back, 0xFE re-presents
// the current front, 0..3 present a physical page. A staged palette change is
// applied just before the copy to the framebuffer.
func (v *Video) UpdateDisplay(page uint8) {
	v.Log.LogVideof(debug.LogLevelDebug, "UpdateDisplay(%d)", page)
	if page != 0xFE {
		if page == 0xFF {
			v.Buffers[1], v.Buffers[2] = v.Buffers[2], v.Buffers[1]
		} else {
			v.Buffers[1] = v.getPage(page)
		}
	}
	if v.NextPal != 0xFF {
		v.ChangePal(v.NextPal)
		v.NextPal = 0xFF
	}
	v.presentBuffer(v.Buffers[1])
}

func readPaletteAmiga(buf []byte, num int, pal *[16]uint32) {
	p := buf[num*16*2:]
	for i := 0; i < 16; i++ {
		color := binary.BigEndian.Uint16(p)
		p = p[2:]
		r := uint32((color >> 8) & 0xF)
		g := uint32((color >> 4) & 0xF)
		b := uint32(color & 0xF)
		r = (r << 4) | r
		g = (g << 4) | g
		b = (b << 4) | b
		pal[i] = 0xFF000000 | r | g<<8 | b<<16
	}
}

func readPaletteEGA(buf []byte, num int, pal *[16]uint32) {
	p := buf[num*16*2:]
	p = p[1024:] // EGA colors are stored after the VGA block
	for i := 0; i < 16; i++ {
		color := binary.BigEndian.Uint16(p)
		p = p[2:]
		ega := paletteEGA[3*((color>>12)&15):]
		pal[i] = 0xFF000000 | uint32(ega[0]) | uint32(ega[1])<<8 | uint32(ega[2])<<16
	}
}

// ChangePal loads palette palNum from the current palette segment.
func (v *Video) ChangePal(palNum uint8) {
	if palNum >= 32 || palNum == v.CurrentPal {
		return
	}
	if v.Res.DataType == DataTypeDOS && v.UseEGA {
		readPaletteEGA(v.Res.PaletteSegment(), int(palNum), &v.Palette)
	} else {
		readPaletteAmiga(v.Res.PaletteSegment(), int(palNum), &v.Palette)
	}
	v.CurrentPal = palNum
}

// InvalidatePal drops the palette cache so the next ChangePal reloads.
func (v *Video) InvalidatePal() {
	v.CurrentPal = 0xFF
}

// DrawString renders string strId at character cell x, row y. Both \n and \r
// advance to the next line.
func (v *Video) DrawString(color uint8, x, y uint16, strId uint16) {
	str, ok := text.Find(v.StringsTable, strId)
	if !ok && v.Res.DataType == DataTypeDOS {
		str, ok = text.Find(text.TableDemo, strId)
	}
	if !ok {
		v.Log.LogVideof(debug.LogLevelWarning, "Unknown string id %d", strId)
		return
	}
	v.Log.LogVideof(debug.LogLevelDebug, "DrawString(%d, %d, %d, %q)", color, x, y, str)
	xx := x
	v.setDrawPage(v.Buffers[0])
	for i := 0; i < len(str); i++ {
		if str[i] == '\n' || str[i] == '\r' {
			y += 8
			x = xx
			continue
		}
		v.drawChar(str[i], x*8, y, color)
		x++
	}
}

// DrawShapeAt draws the shape at offset in the selected shape segment.
func (v *Video) DrawShapeAt(second bool, offset uint16, color uint8, zoom uint16, x, y int16) {
	v.SetDataBuffer(v.Res.ShapeSegment(second), offset)
	v.DrawShape(color, zoom, point{x: x, y: y})
}
