package video

import (
	"encoding/binary"

	"raw-engine/internal/debug"
)

// Shape stream reader. Shapes are a recursive bytecode: a tag byte selects
// either a filled polygon or a list of sub-shapes drawn at offsets relative
// to a common center.

func (v *Video) fetchShapeByte() uint8 {
	b := v.dataBuf[v.dataPC]
	v.dataPC++
	return b
}

func (v *Video) fetchShapeWord() uint16 {
	w := binary.BigEndian.Uint16(v.dataBuf[v.dataPC:])
	v.dataPC += 2
	return w
}

// SetDataBuffer points the shape reader at a shape segment and offset.
func (v *Video) SetDataBuffer(buf []byte, offset uint16) {
	v.dataBuf = buf
	v.dataPC = int(offset)
}

// DrawShape decodes one shape at the current stream position and draws it
// centered on pt with the given zoom (64 = 1:1).
func (v *Video) DrawShape(color uint8, zoom uint16, pt point) {
	i := v.fetchShapeByte()
	if i >= 0xC0 {
		if color&0x80 != 0 {
			color = i & 0x3F
		}
		v.fillPolygon(color, zoom, pt)
	} else {
		i &= 0x3F
		if i == 2 {
			v.drawShapeParts(zoom, pt)
		} else {
			v.Log.LogVideof(debug.LogLevelWarning, "DrawShape: unknown tag 0x%02X", i)
		}
	}
}

func (v *Video) fillPolygon(color uint8, zoom uint16, pt point) {
	p := v.dataBuf[v.dataPC:]

	bbw := uint16(int(p[0]) * int(zoom) / 64)
	bbh := uint16(int(p[1]) * int(zoom) / 64)

	x1 := pt.x - int16(bbw/2)
	x2 := pt.x + int16(bbw/2)
	y1 := pt.y - int16(bbh/2)
	y2 := pt.y + int16(bbh/2)

	if x1 > 319 || x2 < 0 || y1 > 199 || y2 < 0 {
		return
	}

	var qs quadStrip
	qs.numVertices = int(p[2])
	if qs.numVertices&1 != 0 || qs.numVertices >= quadStripMaxVertices {
		v.Log.LogVideof(debug.LogLevelWarning, "fillPolygon: unexpected number of vertices %d", qs.numVertices)
		return
	}
	p = p[3:]

	for i := 0; i < qs.numVertices; i++ {
		qs.vertices[i].x = x1 + int16(int(p[0])*int(zoom)/64)
		qs.vertices[i].y = y1 + int16(int(p[1])*int(zoom)/64)
		p = p[2:]
	}

	v.setDrawPage(v.Buffers[0])
	if qs.numVertices == 4 && bbw == 0 && bbh <= 1 {
		v.drawPixel(pt.x, pt.y, color)
	} else {
		v.drawPolygon(color, &qs)
	}
}

func (v *Video) drawShapeParts(zoom uint16, pgc point) {
	var pt point
	pt.x = pgc.x - int16(int(v.fetchShapeByte())*int(zoom)/64)
	pt.y = pgc.y - int16(int(v.fetchShapeByte())*int(zoom)/64)
	n := int16(v.fetchShapeByte())
	v.Log.LogVideof(debug.LogLevelDebug, "drawShapeParts n=%d", n)
	for ; n >= 0; n-- {
		offset := v.fetchShapeWord()
		po := point{x: pt.x, y: pt.y}
		po.x += int16(int(v.fetchShapeByte()) * int(zoom) / 64)
		po.y += int16(int(v.fetchShapeByte()) * int(zoom) / 64)
		color := uint8(0xFF)
		if offset&0x8000 != 0 {
			color = v.fetchShapeByte() & 0x7F
			v.fetchShapeByte()
		}
		offset <<= 1
		bak := v.dataPC
		v.dataPC = int(offset)
		v.DrawShape(color, zoom, po)
		v.dataPC = bak
	}
}
