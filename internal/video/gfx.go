package video

// Synthetic colors recognized by the pixel and line kernels.
const (
	colAlpha = 0x10 // translucency: OR the destination with 8
	colPage  = 0x11 // copy the pixel from page 0 at the same coordinate
)

type point struct {
	x, y int16
}

const quadStripMaxVertices = 70

type quadStrip struct {
	numVertices int
	vertices    [quadStripMaxVertices]point
}

func (v *Video) pagePtr(page uint8) []uint8 {
	return v.Pages[page][:]
}

func (v *Video) setDrawPage(page uint8) {
	v.DrawPage = page
}

func (v *Video) clearBuffer(num uint8, color uint8) {
	p := v.pagePtr(num)
	for i := range p {
		p[i] = color
	}
}

func (v *Video) copyBuffer(dst, src uint8, vscroll int) {
	if vscroll == 0 {
		copy(v.pagePtr(dst), v.pagePtr(src))
	} else if vscroll >= -199 && vscroll <= 199 {
		dy := vscroll
		if dy < 0 {
			copy(v.pagePtr(dst), v.pagePtr(src)[-dy*Width:(Height)*Width])
		} else {
			copy(v.pagePtr(dst)[dy*Width:], v.pagePtr(src)[:(Height-dy)*Width])
		}
	}
}

// presentBuffer copies a finished page into the framebuffer handed to the host.
func (v *Video) presentBuffer(num uint8) {
	copy(v.Fb[:], v.pagePtr(num))
}

func (v *Video) drawChar(c byte, x, y uint16, color uint8) {
	if x > Width-8 || y > Height-8 {
		return
	}
	ft := font[(c-0x20)*8:]
	page := v.pagePtr(v.DrawPage)
	offset := int(x) + int(y)*Width
	for j := 0; j < 8; j++ {
		ch := ft[j]
		for i := 0; i < 8; i++ {
			if ch&(1<<(7-i)) != 0 {
				page[offset+j*Width+i] = color
			}
		}
	}
}

func (v *Video) drawPixel(x, y int16, color uint8) {
	page := v.pagePtr(v.DrawPage)
	offset := int(y)*Width + int(x)
	switch color {
	case colAlpha:
		page[offset] |= 8
	case colPage:
		page[offset] = v.Pages[0][offset]
	default:
		page[offset] = color
	}
}

func calcStep(p1, p2 point, dy *uint16) uint32 {
	*dy = uint16(p2.y - p1.y)
	delta := int32(*dy)
	if delta <= 1 {
		delta = 1
	}
	return uint32((int32(p2.x-p1.x) * (0x4000 / delta)) << 2)
}

// Horizontal line kernels, one per color class.

func (v *Video) drawLineP(x1, x2, y int16, _ uint8) {
	if v.DrawPage == 0 {
		return
	}
	xmin, xmax := x1, x2
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	offset := int(y)*Width + int(xmin)
	w := int(xmax) - int(xmin) + 1
	copy(v.pagePtr(v.DrawPage)[offset:offset+w], v.Pages[0][offset:offset+w])
}

func (v *Video) drawLineN(x1, x2, y int16, color uint8) {
	xmin, xmax := x1, x2
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	page := v.pagePtr(v.DrawPage)
	offset := int(y)*Width + int(xmin)
	for i := 0; i <= int(xmax)-int(xmin); i++ {
		page[offset+i] = color
	}
}

func (v *Video) drawLineTrans(x1, x2, y int16, _ uint8) {
	xmin, xmax := x1, x2
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	page := v.pagePtr(v.DrawPage)
	offset := int(y)*Width + int(xmin)
	for i := 0; i <= int(xmax)-int(xmin); i++ {
		page[offset+i] |= 8
	}
}

// drawPolygon rasterizes a quad strip scanline by scanline. The two edge
// walkers carry Q16.16 x positions; the +0x7FFF / +0x8000 bias breaks ties
// between the left and right edges the way the original renderer does.
func (v *Video) drawPolygon(color uint8, qs *quadStrip) {
	i := 0
	j := qs.numVertices - 1

	x2 := qs.vertices[i].x
	x1 := qs.vertices[j].x
	hliney := qs.vertices[i].y
	if qs.vertices[j].y < hliney {
		hliney = qs.vertices[j].y
	}

	i++
	j--

	var pdl func(x1, x2, y int16, color uint8)
	switch color {
	case colPage:
		pdl = v.drawLineP
	case colAlpha:
		pdl = v.drawLineTrans
	default:
		pdl = v.drawLineN
	}

	cpt1 := uint32(uint16(x1)) << 16
	cpt2 := uint32(uint16(x2)) << 16

	numVertices := qs.numVertices
	for {
		numVertices -= 2
		if numVertices == 0 {
			return
		}
		var h uint16
		step1 := calcStep(qs.vertices[j+1], qs.vertices[j], &h)
		step2 := calcStep(qs.vertices[i-1], qs.vertices[i], &h)

		i++
		j--

		cpt1 = (cpt1 & 0xFFFF0000) | 0x7FFF
		cpt2 = (cpt2 & 0xFFFF0000) | 0x8000

		if h == 0 {
			cpt1 += step1
			cpt2 += step2
		} else {
			for ; h != 0; h-- {
				if hliney >= 0 {
					x1 = int16(cpt1 >> 16)
					x2 = int16(cpt2 >> 16)
					if x1 < Width && x2 >= 0 {
						if x1 < 0 {
							x1 = 0
						}
						if x2 >= Width {
							x2 = Width - 1
						}
						pdl(x1, x2, hliney, color)
					}
				}
				cpt1 += step1
				cpt2 += step2
				hliney++
				if hliney >= Height {
					return
				}
			}
		}
	}
}
