package video

import (
	"encoding/binary"
	"testing"

	"raw-engine/internal/debug"
	"raw-engine/internal/resource"
	"raw-engine/internal/text"
)

func newTestVideo(t *testing.T) *Video {
	t.Helper()
	log := debug.NewLogger(100)
	res := resource.NewManager(log)
	return New(res, log)
}

func TestPageSelectors(t *testing.T) {
	v := newTestVideo(t)
	// after init: front=2, back=1, work=front
	if v.Buffers[1] != 2 || v.Buffers[2] != 1 {
		t.Fatalf("init buffers = %v", v.Buffers)
	}
	if got := v.getPage(3); got != 3 {
		t.Fatalf("getPage(3) = %d", got)
	}
	if got := v.getPage(0xFF); got != v.Buffers[2] {
		t.Fatalf("getPage(0xFF) = %d", got)
	}
	if got := v.getPage(0xFE); got != v.Buffers[1] {
		t.Fatalf("getPage(0xFE) = %d", got)
	}
}

func TestUpdateDisplaySwapsFrontBack(t *testing.T) {
	v := newTestVideo(t)
	front, back := v.Buffers[1], v.Buffers[2]

	v.UpdateDisplay(0xFF)
	if v.Buffers[1] != back || v.Buffers[2] != front {
		t.Fatal("0xFF must swap front and back")
	}

	// 0xFE re-presents the current front
	front = v.Buffers[1]
	v.UpdateDisplay(0xFE)
	if v.Buffers[1] != front {
		t.Fatal("0xFE must keep the front page")
	}

	// a physical selector presents that page
	v.UpdateDisplay(3)
	if v.Buffers[1] != 3 {
		t.Fatalf("front = %d, want 3", v.Buffers[1])
	}
}

func TestUpdateDisplayPresentsFramebuffer(t *testing.T) {
	v := newTestVideo(t)
	v.Pages[3][123] = 9
	v.UpdateDisplay(3)
	if v.Fb[123] != 9 {
		t.Fatal("framebuffer must hold the presented page")
	}
}

func TestFillPage(t *testing.T) {
	v := newTestVideo(t)
	v.FillPage(1, 7)
	if v.Pages[1][0] != 7 || v.Pages[1][Width*Height-1] != 7 {
		t.Fatal("page not filled")
	}
}

func TestCopyPageVScroll(t *testing.T) {
	v := newTestVideo(t)
	// mark row 0 of page 1
	for x := 0; x < Width; x++ {
		v.Pages[1][x] = 5
	}

	// a plain selector ignores the scroll variable
	v.CopyPage(1, 2, 50)
	if v.Pages[2][0] != 5 || v.Pages[2][50*Width] != 0 {
		t.Fatal("plain copy must not scroll")
	}

	// bit 7 on the source requests the scroll
	v.CopyPage(1|0x80, 3, 50)
	if v.Pages[3][50*Width] != 5 {
		t.Fatal("scrolled copy must shift rows down")
	}
	if v.Pages[3][0] != 0 {
		t.Fatal("scrolled copy wrote above the offset")
	}

	// out-of-range scroll is dropped
	v.FillPage(3, 0)
	v.CopyPage(1|0x80, 3, 200)
	if v.Pages[3][0] != 0 || v.Pages[3][50*Width] != 0 {
		t.Fatal("out-of-range scroll must be ignored")
	}
}

func TestDrawPixelSyntheticColors(t *testing.T) {
	v := newTestVideo(t)
	v.Pages[0][10] = 3 // background page pixel
	v.setDrawPage(1)

	v.drawPixel(10, 0, 6)
	if v.Pages[1][10] != 6 {
		t.Fatal("normal color")
	}
	v.drawPixel(10, 0, colAlpha)
	if v.Pages[1][10] != 6|8 {
		t.Fatal("alpha color must OR with 8")
	}
	v.drawPixel(10, 0, colPage)
	if v.Pages[1][10] != 3 {
		t.Fatal("page color must copy from page 0")
	}
}

func TestDrawLinePSkipsPageZero(t *testing.T) {
	v := newTestVideo(t)
	v.Pages[0][0] = 4
	v.setDrawPage(0)
	v.drawLineP(0, 10, 0, 0)
	// still the original content: the kernel is a no-op on page 0
	if v.Pages[0][1] != 0 {
		t.Fatal("drawLineP must not write to page 0")
	}
}

// drawShapeStream runs the given shape bytes through DrawShape.
func drawShapeStream(v *Video, stream []byte, color uint8, zoom uint16, x, y int16) {
	v.SetDataBuffer(stream, 0)
	v.DrawShape(color, zoom, point{x: x, y: y})
}

func TestShapeOffscreenDrawsNothing(t *testing.T) {
	v := newTestVideo(t)
	v.SetWorkPage(1)
	// 16x16 polygon centered far off screen on each side
	stream := []byte{0xC5, 16, 16, 4, 0, 0, 16, 0, 16, 16, 0, 16}
	for _, pt := range []point{{-200, 50}, {500, 50}, {50, -200}, {50, 400}} {
		drawShapeStream(v, stream, 0xFF, 64, pt.x, pt.y)
	}
	for i, b := range v.Pages[1] {
		if b != 0 {
			t.Fatalf("pixel %d written by an offscreen polygon", i)
		}
	}
}

func TestShapeFilledQuad(t *testing.T) {
	v := newTestVideo(t)
	v.SetWorkPage(1)
	// 8x8 solid quad: vertices run clockwise from the top-right,
	// so the first and last vertex form the top edge
	stream := []byte{0xC5, 8, 8, 4, 8, 0, 8, 8, 0, 8, 0, 0}
	drawShapeStream(v, stream, 0xFF, 64, 100, 100)

	// the bounding box top-left is (96,96)
	center := v.Pages[1][100*Width+100]
	if center != 5 {
		t.Fatalf("center pixel = %d, want color 5 from the tag byte", center)
	}
	outside := v.Pages[1][100*Width+200]
	if outside != 0 {
		t.Fatal("pixel outside the quad written")
	}
}

func TestShapePartsRecursion(t *testing.T) {
	v := newTestVideo(t)
	v.SetWorkPage(1)
	// parent at 0: part list with one child at word offset 8 (byte 16)
	stream := make([]byte, 32)
	stream[0] = 0x02 // part list tag
	stream[1] = 0    // center dx
	stream[2] = 0    // center dy
	stream[3] = 0    // one sub-shape (n counts down to -1)
	binary.BigEndian.PutUint16(stream[4:], 8)
	stream[6] = 0 // child dx
	stream[7] = 0 // child dy
	// child: a single point
	copy(stream[16:], []byte{0xC2, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0})

	drawShapeStream(v, stream, 0xFF, 64, 50, 60)
	if v.Pages[1][60*Width+50] != 2 {
		t.Fatalf("child point not drawn, pixel = %d", v.Pages[1][60*Width+50])
	}
}

func TestPaletteAmigaExpansion(t *testing.T) {
	v := newTestVideo(t)
	seg := v.Res.Mem[:]
	// palette 0, color 0 = 0x0FFF (white), color 1 = 0x0A50
	binary.BigEndian.PutUint16(seg[0:], 0x0FFF)
	binary.BigEndian.PutUint16(seg[2:], 0x0A50)
	v.Res.SegVideoPal = 0

	v.ChangePal(0)

	if v.Palette[0] != 0xFFFFFFFF {
		t.Fatalf("palette[0] = 0x%08X", v.Palette[0])
	}
	// nibbles duplicate: A->AA, 5->55, 0->00, layout ABGR
	if v.Palette[1] != 0xFF0055AA {
		t.Fatalf("palette[1] = 0x%08X", v.Palette[1])
	}
	if v.CurrentPal != 0 {
		t.Fatal("current palette not cached")
	}

	// out-of-range palette numbers are ignored
	v.Palette[0] = 0
	v.ChangePal(32)
	if v.Palette[0] != 0 {
		t.Fatal("palette 32 must be rejected")
	}
}

func TestDrawStringRendersGlyphs(t *testing.T) {
	v := newTestVideo(t)
	v.StringsTable = []text.Entry{{ID: 0x01, Str: "A"}}
	v.SetWorkPage(1)
	v.DrawString(3, 2, 40, 0x01)

	// glyph 'A' row 3 has its leftmost pixel set at bit 7
	found := false
	for y := 40; y < 48; y++ {
		for x := 16; x < 24; x++ {
			if v.Pages[1][y*Width+x] == 3 {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("no glyph pixels drawn")
	}
}

func TestDrawStringNewlineAdvances(t *testing.T) {
	v := newTestVideo(t)
	v.StringsTable = []text.Entry{{ID: 0x01, Str: "A\nB"}}
	v.SetWorkPage(1)
	v.DrawString(3, 2, 40, 0x01)

	// the second glyph starts back at column 2, row 48
	found := false
	for y := 48; y < 56; y++ {
		for x := 16; x < 24; x++ {
			if v.Pages[1][y*Width+x] == 3 {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("newline must reset x and advance y")
	}
}

func TestDrawStringUnknownIDIsWarning(t *testing.T) {
	v := newTestVideo(t)
	v.StringsTable = []text.Entry{}
	v.SetWorkPage(1)
	// must not panic, must not draw
	v.DrawString(3, 2, 40, 0x123)
	for i, b := range v.Pages[1] {
		if b != 0 {
			t.Fatalf("pixel %d written for an unknown string", i)
		}
	}
}

func TestDecodeAmigaBitplanes(t *testing.T) {
	src := make([]byte, 4*8000)
	// set pixel (0,0) in planes 0 and 2: color 0b0101 = 5
	src[0] |= 0x80
	src[2*8000] |= 0x80

	var dst [Width * Height]byte
	decodeAmiga(src, dst[:])
	if dst[0] != 5 {
		t.Fatalf("pixel 0 = %d, want 5", dst[0])
	}
	if dst[9] != 0 {
		t.Fatalf("pixel 9 = %d, want 0", dst[9])
	}
	// plane 3 of pixel 9 lives at plane offset 3*8000+1
	src2 := make([]byte, 4*8000)
	src2[3*8000+1] |= 0x40
	decodeAmiga(src2, dst[:])
	if dst[9] != 8 {
		t.Fatalf("pixel 9 = %d, want 8", dst[9])
	}
}

func TestDecodeAtariInterleaved(t *testing.T) {
	src := make([]byte, 32000)
	// first 16-pixel group of row 0: planes are interleaved words;
	// set bit 15 of plane 1 -> pixel 0 color 2
	binary.BigEndian.PutUint16(src[2:], 0x8000)
	var dst [Width * Height]byte
	decodeAtari(src, dst[:])
	if dst[0] != 2 {
		t.Fatalf("pixel 0 = %d, want 2", dst[0])
	}
}

func TestDecodeBMPRejectsUnknown(t *testing.T) {
	v := newTestVideo(t)
	if pix, _, _ := v.decodeBMP([]byte("not a bitmap, clearly, not at all........")); pix != nil {
		t.Fatal("junk must not decode")
	}
}
