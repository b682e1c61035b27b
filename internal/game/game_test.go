package game

import (
	"encoding/binary"
	"testing"

	"raw-engine/internal/resource"
	"raw-engine/internal/vm"
)

// buildTestData assembles a minimal DOS data set able to boot part 16001:
// entry 0x17 palette, 0x18 bytecode, 0x19 shape stream, all stored raw in
// bank 1. The bytecode is an idle loop that yields every frame.
func buildTestData() GameData {
	const (
		palPos   = 0x0000
		codePos  = 0x0800
		shapePos = 0x0900
	)
	bank := make([]byte, 0x1000)
	code := []byte{
		0x06,             // yield
		0x07, 0x00, 0x00, // jmp 0
	}
	copy(bank[codePos:], code)

	entry := func(out []byte, resType uint8, bankPos, size uint32) []byte {
		row := make([]byte, 20)
		row[1] = resType
		row[6] = 1 // rank
		row[7] = 1 // bank
		binary.BigEndian.PutUint32(row[8:], bankPos)
		binary.BigEndian.PutUint32(row[12:], size)
		binary.BigEndian.PutUint32(row[16:], size)
		return append(out, row...)
	}

	var memList []byte
	for i := 0; i < 0x17; i++ {
		memList = entry(memList, resource.TypeSound, 0, 16)
	}
	memList = entry(memList, resource.TypePalette, palPos, 2048)
	memList = entry(memList, resource.TypeBytecode, codePos, uint32(len(code)))
	memList = entry(memList, resource.TypeShape, shapePos, 64)
	term := make([]byte, 20)
	term[0] = 0xFF
	memList = append(memList, term...)

	var data GameData
	data.MemList = memList
	data.Banks[0] = bank
	return data
}

func newStartedGame(t *testing.T, desc Desc) *Game {
	t.Helper()
	g := New(desc)
	if err := g.Start(buildTestData()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return g
}

func TestStartBootsPart(t *testing.T) {
	g := newStartedGame(t, Desc{PartNum: 16001, Lang: resource.LangUS})

	if g.Res.CurrentPart != 16001 {
		t.Fatalf("current part = %d", g.Res.CurrentPart)
	}
	if g.Title() != resource.TitleUS {
		t.Fatalf("title = %q", g.Title())
	}
	if g.VM.Tasks[0].PC != 0 {
		t.Fatal("task 0 must start at offset 0")
	}
	// protection disabled primes the bypass variables
	if g.VM.Vars[0xBC] != 0x10 || g.VM.Vars[0xC6] != 0x80 || g.VM.Vars[0xDC] != 33 {
		t.Fatal("protection-off variables not primed")
	}
	if g.VM.Vars[0xF2] != 4000 || g.VM.Vars[0xE4] != 20 {
		t.Fatal("DOS variables not primed")
	}
}

func TestStartPositionTable(t *testing.T) {
	g := newStartedGame(t, Desc{PartNum: 1, Lang: resource.LangUS}) // position 1 -> intro
	if g.Res.CurrentPart != 16001 {
		t.Fatalf("current part = %d", g.Res.CurrentPart)
	}
}

func TestExecRunsOneLogicalFrame(t *testing.T) {
	g := newStartedGame(t, Desc{PartNum: 16001, Lang: resource.LangUS})

	var audioFrames int
	g.Audio.SetCallback(func(s []float32) {
		audioFrames++
	})

	if err := g.Exec(20); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if audioFrames != 1 {
		t.Fatalf("audio callback ran %d times, want 1", audioFrames)
	}
	if g.VM.Sleep != 20 {
		t.Fatalf("sleep = %d, want the booked 50 Hz debt", g.VM.Sleep)
	}
}

func TestExecPaysDownSleepDebt(t *testing.T) {
	g := newStartedGame(t, Desc{PartNum: 16001, Lang: resource.LangUS})

	if err := g.Exec(20); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	var audioFrames int
	g.Audio.SetCallback(func(s []float32) {
		audioFrames++
	})

	// 5 ms only pays down debt; no bytecode runs
	if err := g.Exec(5); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if g.VM.Sleep != 15 {
		t.Fatalf("sleep = %d, want 15", g.VM.Sleep)
	}
	if audioFrames != 0 {
		t.Fatal("no audio while sleeping")
	}

	// the remaining debt clears, then the next call runs a frame
	if err := g.Exec(30); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if err := g.Exec(20); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if audioFrames != 1 {
		t.Fatalf("audio frames = %d", audioFrames)
	}
}

func TestDebugHookObservesAndStops(t *testing.T) {
	stopped := false
	var pcs []uint16
	g := New(Desc{
		PartNum: 16001,
		Lang:    resource.LangUS,
		Debug: DebugHook{
			Func:    func(pc uint16) { pcs = append(pcs, pc) },
			Stopped: &stopped,
		},
	})
	if err := g.Start(buildTestData()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := g.Exec(20); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if len(pcs) == 0 {
		t.Fatal("debug hook never ran")
	}

	stopped = true
	before := len(pcs)
	g.VM.Sleep = 0
	if err := g.Exec(20); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if len(pcs) != before {
		t.Fatal("stopped hook must halt execution")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := newStartedGame(t, Desc{PartNum: 16001, Lang: resource.LangUS})
	if err := g.Exec(20); err != nil {
		t.Fatalf("Exec: %v", err)
	}

	g.VM.Vars[10] = 1234
	g.Video.Pages[1][77] = 9
	data, err := g.SaveSnapshot()
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	// wreck the live state
	g.VM.Vars[10] = 0
	g.Video.Pages[1][77] = 0
	g.Res.ScriptCur = 0
	g.VM.Tasks[0].PC = 0xFFFF

	if err := g.LoadSnapshot(data); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if g.VM.Vars[10] != 1234 {
		t.Fatal("vars not restored")
	}
	if g.Video.Pages[1][77] != 9 {
		t.Fatal("pages not restored")
	}
	if g.Res.ScriptCur == 0 {
		t.Fatal("arena cursor not restored")
	}

	// the restored machine keeps running
	g.VM.Sleep = 0
	if err := g.Exec(20); err != nil {
		t.Fatalf("Exec after load: %v", err)
	}
}

func TestSnapshotRejectsTruncated(t *testing.T) {
	g := newStartedGame(t, Desc{PartNum: 16001, Lang: resource.LangUS})
	data, err := g.SaveSnapshot()
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if err := g.LoadSnapshot(data[:len(data)/2]); err == nil {
		t.Fatal("truncated snapshot must not load")
	}
}

func TestSnapshotPreservesCallback(t *testing.T) {
	g := newStartedGame(t, Desc{PartNum: 16001, Lang: resource.LangUS})
	var frames int
	g.Audio.SetCallback(func(s []float32) { frames++ })

	data, err := g.SaveSnapshot()
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if err := g.LoadSnapshot(data); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	g.VM.Sleep = 0
	if err := g.Exec(20); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if frames != 1 {
		t.Fatal("audio callback lost across snapshot load")
	}
}

func TestDisplayInfo(t *testing.T) {
	g := newStartedGame(t, Desc{PartNum: 16001, Lang: resource.LangUS})
	fb, pal, w, h := g.DisplayInfo()
	if w != 320 || h != 200 {
		t.Fatalf("dimensions %dx%d", w, h)
	}
	if len(fb) != 320*200 {
		t.Fatalf("framebuffer size %d", len(fb))
	}
	if len(pal) != 16 {
		t.Fatalf("palette size %d", len(pal))
	}
}

func TestKeyRouting(t *testing.T) {
	g := newStartedGame(t, Desc{PartNum: 16001, Lang: resource.LangUS})
	g.KeyDown(1) // right
	if err := g.Exec(20); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if g.VM.Vars[vm.VarHeroPosLeftRight] != 1 {
		t.Fatal("key press not projected into the register file")
	}
}
