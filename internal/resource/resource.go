// Package resource owns the 1 MiB memory arena, the resource directory and
// the bank payloads of an Another World data set. Loaded entries live in the
// arena and are referenced by offset so that the whole manager state can be
// serialized by value.
package resource

import (
	"encoding/binary"
	"fmt"

	"raw-engine/internal/debug"
)

const (
	// MemBlockSize is the size of the contiguous memory arena.
	MemBlockSize = 1 * 1024 * 1024

	// EntriesCountMax is the capacity of the resource directory; the 1991
	// releases use 146 of the slots.
	EntriesCountMax = 178
	entriesCount    = 146

	// VidBitmapSize is the staging area reserved at the top of the arena
	// for a full-screen 4bpp bitmap (320*200/2).
	VidBitmapSize = 320 * 200 / 2
)

// Resource entry status values.
const (
	StatusNull   = 0
	StatusLoaded = 1
	StatusToLoad = 2
)

// Resource entry types.
const (
	TypeSound    = 0
	TypeMusic    = 1
	TypeBitmap   = 2 // full screen 4bpp video buffer
	TypePalette  = 3 // 1024 bytes VGA + 1024 bytes EGA
	TypeBytecode = 4
	TypeShape    = 5
	TypeBank     = 6 // common part shapes (bank2.mat)
)

// DataType identifies which 1991 release the data files come from.
type DataType int

const (
	DataTypeDOS DataType = iota
	DataTypeAmiga
	DataTypeAtari
)

// Language selects the string table and title screen.
type Language int

const (
	LangFR Language = iota
	LangUS
)

// Well-known part numbers.
const (
	PartCopyProtection = 16000
	PartIntro          = 16001
	PartWater          = 16002
	PartPrison         = 16003
	PartCite           = 16004
	PartArene          = 16005
	PartLuxe           = 16006
	PartFinal          = 16007
	PartPassword       = 16008
)

// GameData is the raw data bundle handed over by the host at start. The bank
// buffers are borrowed read-only for the lifetime of the core.
type GameData struct {
	MemList  []byte // memlist.bin content, DOS only
	Banks    [13][]byte
	Demo3Joy []byte // content of demo3.joy if present
}

// MemEntry is one slot of the resource directory. BufOff is an offset into
// the arena; -1 means the entry owns no buffer.
type MemEntry struct {
	Status       uint8
	Type         uint8
	BufOff       int32
	RankNum      uint8
	BankNum      uint8
	BankPos      uint32
	PackedSize   uint32
	UnpackedSize uint32
}

// Manager implements the resource lifecycle: directory setup, bank reads,
// ByteKiller expansion, selective invalidation and part switching.
type Manager struct {
	MemList    [EntriesCountMax]MemEntry
	NumMemList uint16

	Mem []byte // the arena

	CurrentPart uint16
	NextPart    uint16

	// Arena cursors. ScriptCur grows from the low end, VidCur marks the
	// bitmap staging area at the high end, ScriptBak records the cursor at
	// the start of the current part for selective invalidation.
	ScriptBak int32
	ScriptCur int32
	VidCur    int32

	UseSegVideo2 bool

	// Cached segment offsets of the current part.
	SegVideoPal int32
	SegCode     int32
	SegCodeSize uint16
	SegVideo1   int32
	SegVideo2   int32

	HasPasswordScreen bool
	DataType          DataType
	Lang              Language

	Data GameData

	Log *debug.Logger

	// OnBitmap is invoked when a bitmap resource has been read into the
	// staging area, with the 4bpp (or BMP) payload as argument.
	OnBitmap func(src []byte)

	// OnInvalidate is invoked when the palette cache must be dropped.
	OnInvalidate func()
}

// NewManager creates a manager with an empty arena.
func NewManager(log *debug.Logger) *Manager {
	return &Manager{
		Mem:               make([]byte, MemBlockSize),
		VidCur:            MemBlockSize - VidBitmapSize,
		HasPasswordScreen: true,
		Log:               log,
	}
}

// EntryBuf returns the arena slice owned by a loaded entry.
func (m *Manager) EntryBuf(num int) []byte {
	me := &m.MemList[num]
	return m.Mem[me.BufOff : me.BufOff+int32(me.UnpackedSize)]
}

// CodeSegment returns the bytecode segment of the current part, extended to
// the end of the arena so that task program counters may point one past the
// segment (the inactive sentinel).
func (m *Manager) CodeSegment() []byte {
	return m.Mem[m.SegCode:]
}

// ShapeSegment returns the requested shape stream of the current part.
func (m *Manager) ShapeSegment(second bool) []byte {
	if second {
		return m.Mem[m.SegVideo2:]
	}
	return m.Mem[m.SegVideo1:]
}

// PaletteSegment returns the palette resource of the current part.
func (m *Manager) PaletteSegment() []byte {
	return m.Mem[m.SegVideoPal:]
}

// DetectVersion inspects the data bundle: a memlist.bin means DOS data,
// otherwise the size of bank 1 selects one of the built-in Amiga/Atari
// directories.
func (m *Manager) DetectVersion() error {
	if len(m.Data.MemList) != 0 {
		m.DataType = DataTypeDOS
		m.Log.LogSystemf(debug.LogLevelInfo, "Using DOS data files")
		return nil
	}
	var entries *[146]amigaMemEntry
	switch len(m.Data.Banks[0]) {
	case 244674:
		entries = &memListAmigaFR
		m.DataType = DataTypeAmiga
		m.Log.LogSystemf(debug.LogLevelInfo, "Using Amiga data files")
	case 244868:
		entries = &memListAmigaEN
		m.DataType = DataTypeAmiga
		m.Log.LogSystemf(debug.LogLevelInfo, "Using Amiga data files")
	case 227142:
		entries = &memListAtariEN
		m.DataType = DataTypeAtari
		m.Log.LogSystemf(debug.LogLevelInfo, "Using Atari data files")
	default:
		return fmt.Errorf("no data files found")
	}
	m.NumMemList = entriesCount
	for i := 0; i < entriesCount; i++ {
		me := &m.MemList[i]
		me.Type = entries[i].Type
		me.BankNum = entries[i].Bank
		me.BankPos = entries[i].Offset
		me.PackedSize = entries[i].PackedSize
		me.UnpackedSize = entries[i].UnpackedSize
	}
	m.MemList[entriesCount].Status = 0xFF
	return nil
}

// ReadEntries populates the directory. The Amiga and Atari variants come
// pre-filled from DetectVersion; DOS data carries the directory in
// memlist.bin (20 bytes per entry, big-endian, 0xFF status terminator).
func (m *Manager) ReadEntries() error {
	switch m.DataType {
	case DataTypeAmiga, DataTypeAtari:
		if m.NumMemList == 0 {
			return fmt.Errorf("empty resource directory")
		}
		return nil
	case DataTypeDOS:
		// DOS demo versions do not have the password screen resources.
		m.HasPasswordScreen = false
		p := m.Data.MemList
		for {
			if int(m.NumMemList) >= len(m.MemList) {
				return fmt.Errorf("resource directory overflow")
			}
			if len(p) < 20 {
				return fmt.Errorf("truncated memlist.bin")
			}
			me := &m.MemList[m.NumMemList]
			me.Status = p[0]
			me.Type = p[1]
			me.BufOff = -1
			me.RankNum = p[6]
			me.BankNum = p[7]
			me.BankPos = binary.BigEndian.Uint32(p[8:])
			me.PackedSize = binary.BigEndian.Uint32(p[12:])
			me.UnpackedSize = binary.BigEndian.Uint32(p[16:])
			p = p[20:]
			if me.Status == 0xFF {
				m.HasPasswordScreen = len(m.Data.Banks[8]) != 0
				return nil
			}
			m.NumMemList++
		}
	}
	return fmt.Errorf("no data files found")
}

// ReadBank copies an entry's packed payload out of its bank file into dst and
// expands it in place when the entry is compressed.
func (m *Manager) ReadBank(me *MemEntry, dst []byte) bool {
	if me.BankNum == 0 || me.BankNum > 0xd || len(m.Data.Banks[me.BankNum-1]) == 0 {
		return false
	}
	bank := m.Data.Banks[me.BankNum-1]
	if int(me.BankPos)+int(me.PackedSize) > len(bank) {
		return false
	}
	copy(dst, bank[me.BankPos:me.BankPos+me.PackedSize])
	if me.PackedSize != me.UnpackedSize {
		return UnpackByteKiller(dst, int(me.UnpackedSize), dst, int(me.PackedSize))
	}
	return true
}

// Invalidate drops every non-permanent entry (sounds, music, bitmaps) and
// rewinds the arena to the start of the current part.
func (m *Manager) Invalidate() {
	for i := 0; i < int(m.NumMemList); i++ {
		me := &m.MemList[i]
		if me.Type <= TypeBitmap || me.Type > TypeBank {
			me.Status = StatusNull
		}
	}
	m.ScriptCur = m.ScriptBak
	if m.OnInvalidate != nil {
		m.OnInvalidate()
	}
}

// InvalidateAll drops every entry and rewinds the arena to its base.
func (m *Manager) InvalidateAll() {
	for i := 0; i < int(m.NumMemList); i++ {
		m.MemList[i].Status = StatusNull
	}
	m.ScriptCur = 0
	if m.OnInvalidate != nil {
		m.OnInvalidate()
	}
}

// LoadMarked loads every entry marked ToLoad, highest rank first. Bitmaps
// decode through OnBitmap and do not persist in the arena.
func (m *Manager) LoadMarked() error {
	for {
		var me *MemEntry
		num := 0

		maxRank := uint8(0)
		for i := 0; i < int(m.NumMemList); i++ {
			it := &m.MemList[i]
			if it.Status == StatusToLoad && maxRank <= it.RankNum {
				maxRank = it.RankNum
				me = it
				num = i
			}
		}
		if me == nil {
			break
		}

		var memOff int32
		if me.Type == TypeBitmap {
			memOff = m.VidCur
		} else {
			memOff = m.ScriptCur
			avail := uint32(m.VidCur - m.ScriptCur)
			if me.UnpackedSize > avail {
				m.Log.LogResourcef(debug.LogLevelWarning, "Resource load: not enough memory, available=%d", avail)
				me.Status = StatusNull
				continue
			}
		}
		if me.BankNum == 0 {
			m.Log.LogResourcef(debug.LogLevelWarning, "Resource load: entry %d has no bank", num)
			me.Status = StatusNull
			continue
		}
		m.Log.LogBankf(debug.LogLevelDebug, "Load entry %d bufPos=0x%X size=%d type=%d pos=0x%X bankNum=%d",
			num, memOff, me.PackedSize, me.Type, me.BankPos, me.BankNum)
		if !m.ReadBank(me, m.Mem[memOff:]) {
			if m.DataType == DataTypeDOS && me.BankNum == 12 && me.Type == TypeBank {
				// DOS demo data does not ship this bank; the affected
				// resource is never referenced by the demo bytecode.
				me.Status = StatusNull
				continue
			}
			return fmt.Errorf("unable to read resource %d from bank %d", num, me.BankNum)
		}
		if me.Type == TypeBitmap {
			if m.OnBitmap != nil {
				m.OnBitmap(m.Mem[m.VidCur:])
			}
			me.Status = StatusNull
		} else {
			me.BufOff = memOff
			me.Status = StatusLoaded
			m.ScriptCur += int32(me.UnpackedSize)
		}
	}
	return nil
}

// Update schedules a single entry for loading, or stages a part switch when
// num names a part rather than an entry.
func (m *Manager) Update(num uint16) error {
	if num > 16000 {
		m.NextPart = num
		return nil
	}
	me := &m.MemList[num]
	if me.Status == StatusNull {
		me.Status = StatusToLoad
		return m.LoadMarked()
	}
	return nil
}

// SetupPart switches the current part: everything is invalidated, the four
// (or three) entries named by the part directory are loaded, and the segment
// offsets are re-cached.
func (m *Manager) SetupPart(partID int) error {
	if partID != int(m.CurrentPart) {
		if partID < 16000 || partID > 16009 {
			return fmt.Errorf("invalid part id %d", partID)
		}
		part := partID - 16000
		ipal := memListParts[part][0]
		icod := memListParts[part][1]
		ivd1 := memListParts[part][2]
		ivd2 := memListParts[part][3]

		m.InvalidateAll()
		m.MemList[ipal].Status = StatusToLoad
		m.MemList[icod].Status = StatusToLoad
		m.MemList[ivd1].Status = StatusToLoad
		if ivd2 != 0 {
			m.MemList[ivd2].Status = StatusToLoad
		}
		if err := m.LoadMarked(); err != nil {
			return err
		}
		m.SegVideoPal = m.MemList[ipal].BufOff
		m.SegCode = m.MemList[icod].BufOff
		m.SegCodeSize = uint16(m.MemList[icod].UnpackedSize)
		m.SegVideo1 = m.MemList[ivd1].BufOff
		if ivd2 != 0 {
			m.SegVideo2 = m.MemList[ivd2].BufOff
		}
		m.CurrentPart = uint16(partID)
	}
	m.ScriptBak = m.ScriptCur
	return nil
}

// Titles shown by the host window, per data set.
const (
	TitleEU = "Another World"
	TitleUS = "Out Of This World"
)

// GameTitle returns the title matching the data set and language.
func (m *Manager) GameTitle() string {
	if m.DataType == DataTypeDOS && m.Lang == LangUS {
		return TitleUS
	}
	return TitleEU
}
