package resource

import "encoding/binary"

// unpackCtx holds the ByteKiller decompression state. The format is decoded
// backwards: the bit stream is consumed from the tail of the packed data and
// output bytes are written from the tail of the destination buffer.
type unpackCtx struct {
	size int
	crc  uint32
	bits uint32
	dst  []byte
	dpos int
	src  []byte
	spos int
}

func (uc *unpackCtx) nextBit() bool {
	carry := (uc.bits & 1) != 0
	uc.bits >>= 1
	if uc.bits == 0 {
		uc.bits = binary.BigEndian.Uint32(uc.src[uc.spos:])
		uc.spos -= 4
		uc.crc ^= uc.bits
		carry = (uc.bits & 1) != 0
		uc.bits = (1 << 31) | (uc.bits >> 1)
	}
	return carry
}

func (uc *unpackCtx) getBits(count int) int {
	bits := 0
	for i := 0; i < count; i++ {
		bits <<= 1
		if uc.nextBit() {
			bits |= 1
		}
	}
	return bits
}

func (uc *unpackCtx) copyLiteral(bitsCount, length int) {
	count := uc.getBits(bitsCount) + length + 1
	uc.size -= count
	if uc.size < 0 {
		count += uc.size
		uc.size = 0
	}
	for i := 0; i < count; i++ {
		uc.dst[uc.dpos-i] = byte(uc.getBits(8))
	}
	uc.dpos -= count
}

func (uc *unpackCtx) copyReference(bitsCount, count int) {
	uc.size -= count
	if uc.size < 0 {
		count += uc.size
		uc.size = 0
	}
	offset := uc.getBits(bitsCount)
	for i := 0; i < count; i++ {
		uc.dst[uc.dpos-i] = uc.dst[uc.dpos-i+offset]
	}
	uc.dpos -= count
}

// UnpackByteKiller decompresses a ByteKiller stream of srcSize bytes at the
// start of src into dst. dst and src may alias the same arena region; the
// backward decode order makes in-place expansion safe. Returns false when the
// advertised unpacked size does not fit dst or the final CRC is not zero.
func UnpackByteKiller(dst []byte, dstSize int, src []byte, srcSize int) bool {
	uc := unpackCtx{dst: dst, src: src, spos: srcSize - 8}
	uc.size = int(binary.BigEndian.Uint32(src[srcSize-4:]))
	if uc.size > dstSize {
		return false
	}
	uc.dpos = uc.size - 1
	uc.crc = binary.BigEndian.Uint32(uc.src[uc.spos:])
	uc.spos -= 4
	uc.bits = binary.BigEndian.Uint32(uc.src[uc.spos:])
	uc.spos -= 4
	uc.crc ^= uc.bits
	for uc.size > 0 {
		if !uc.nextBit() {
			if !uc.nextBit() {
				uc.copyLiteral(3, 0)
			} else {
				uc.copyReference(8, 2)
			}
		} else {
			switch uc.getBits(2) {
			case 3:
				uc.copyLiteral(8, 8)
			case 2:
				uc.copyReference(12, uc.getBits(8)+1)
			case 1:
				uc.copyReference(10, 4)
			case 0:
				uc.copyReference(9, 3)
			}
		}
	}
	return uc.crc == 0
}
