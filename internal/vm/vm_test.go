package vm

import (
	"testing"

	"raw-engine/internal/audio"
	"raw-engine/internal/debug"
	"raw-engine/internal/input"
	"raw-engine/internal/resource"
	"raw-engine/internal/video"
)

// newTestVM wires a VM over a synthetic bytecode segment placed at the base
// of the arena. Only task 0 is live, at offset 0.
func newTestVM(t *testing.T, code []byte) *VM {
	t.Helper()
	log := debug.NewLogger(100)
	res := resource.NewManager(log)
	copy(res.Mem, code)
	res.SegCode = 0
	res.SegCodeSize = uint16(len(code))
	vid := video.New(res, log)
	mix := audio.NewMixer(res.Mem, nil, log)
	mix.Init(nil)
	inp := &input.State{}
	v := New(res, vid, mix, inp, log)
	for i := range v.Tasks {
		v.Tasks[i] = Task{PC: inactiveTask, NextPC: inactiveTask}
	}
	v.Tasks[0].PC = 0
	return v
}

// runFrame executes until every live task has yielded once.
func runFrame(t *testing.T, v *VM) {
	t.Helper()
	for {
		done, err := v.Run()
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if done {
			return
		}
	}
}

// runUntilError keeps stepping until the VM faults.
func runUntilError(t *testing.T, v *VM) error {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if _, err := v.Run(); err != nil {
			return err
		}
	}
	t.Fatal("expected the VM to fault")
	return nil
}

func TestArithmeticOpcodes(t *testing.T) {
	code := []byte{
		0x00, 0x00, 0x00, 0x05, // movConst V0, 5
		0x00, 0x01, 0x00, 0x07, // movConst V1, 7
		0x02, 0x00, 0x01, // add V0, V1
		0x01, 0x02, 0x00, // mov V2, V0
		0x13, 0x02, 0x01, // sub V2, V1
		0x03, 0x03, 0xFF, 0xFE, // addConst V3, -2
		0x14, 0x00, 0x00, 0x0D, // and V0, 13
		0x15, 0x04, 0x00, 0x22, // or V4, 0x22
		0x16, 0x05, 0x00, 0x03, // shl V5, 3
		0x17, 0x06, 0x00, 0x01, // shr V6, 1
		0x06,             // yield
		0x07, 0x00, 0x25, // jmp back to the yield
	}
	v := newTestVM(t, code)
	v.Vars[5] = 1
	v.Vars[6] = -2
	runFrame(t, v)

	if v.Vars[0] != 12&13 {
		t.Errorf("V0 = %d", v.Vars[0])
	}
	if v.Vars[1] != 7 {
		t.Errorf("V1 = %d", v.Vars[1])
	}
	if v.Vars[2] != 5 {
		t.Errorf("V2 = %d", v.Vars[2])
	}
	if v.Vars[3] != -2 {
		t.Errorf("V3 = %d", v.Vars[3])
	}
	if v.Vars[4] != 0x22 {
		t.Errorf("V4 = %d", v.Vars[4])
	}
	if v.Vars[5] != 8 {
		t.Errorf("V5 = %d", v.Vars[5])
	}
	// shr is a logical shift over the 16-bit pattern
	if v.Vars[6] != int16(uint16(0xFFFE)>>1) {
		t.Errorf("V6 = %d", v.Vars[6])
	}
}

func TestAddWrapsSilently(t *testing.T) {
	code := []byte{
		0x00, 0x00, 0x7F, 0xFF, // movConst V0, 32767
		0x03, 0x00, 0x00, 0x01, // addConst V0, 1
		0x06,             // yield
		0x07, 0x00, 0x08, // jmp 8
	}
	v := newTestVM(t, code)
	runFrame(t, v)
	if v.Vars[0] != -32768 {
		t.Fatalf("V0 = %d, want -32768 (silent two's-complement wrap)", v.Vars[0])
	}
}

func TestSchedulerFairness(t *testing.T) {
	code := []byte{
		// task 0 at 0x00
		0x03, 0x00, 0x00, 0x01, // addConst V0, 1
		0x06,             // yield
		0x07, 0x00, 0x00, // jmp 0
		// task 1 at 0x08
		0x03, 0x01, 0x00, 0x01, // addConst V1, 1
		0x06,             // yield
		0x07, 0x00, 0x08, // jmp 8
	}
	v := newTestVM(t, code)
	v.Tasks[1].PC = 8

	for frame := int16(1); frame <= 3; frame++ {
		runFrame(t, v)
		if v.Vars[0] != frame || v.Vars[1] != frame {
			t.Fatalf("frame %d: V0=%d V1=%d, want both %d", frame, v.Vars[0], v.Vars[1], frame)
		}
	}
}

func TestInstallTaskIsDeferred(t *testing.T) {
	code := []byte{
		// task 0: spawn task 1, then yield forever
		0x08, 0x01, 0x00, 0x08, // installTask 1, 0x08
		0x06,             // yield
		0x07, 0x00, 0x04, // jmp 4
		// task 1 at 0x08
		0x03, 0x01, 0x00, 0x01, // addConst V1, 1
		0x06,             // yield
		0x07, 0x00, 0x08, // jmp 8
	}
	v := newTestVM(t, code)

	// The install targets next_pc; the spawned task must not run within
	// the sweep that installed it.
	runFrame(t, v)
	if v.Vars[1] != 0 {
		t.Fatal("installed task ran before the sweep boundary")
	}
	if v.Tasks[1].PC != 8 {
		t.Fatalf("task 1 pc = 0x%X after sweep", v.Tasks[1].PC)
	}
	runFrame(t, v)
	if v.Vars[1] != 1 {
		t.Fatalf("V1 = %d after second frame", v.Vars[1])
	}
}

func TestChangeTasksStateKill(t *testing.T) {
	code := []byte{
		// task 0: kill task 1, then yield forever
		0x0C, 0x01, 0x01, 0x02, // changeTasksState 1..1, kill
		0x06,             // yield
		0x07, 0x00, 0x04, // jmp 4
		// task 1 at 0x08
		0x03, 0x01, 0x00, 0x01, // addConst V1, 1
		0x06,             // yield
		0x07, 0x00, 0x08, // jmp 8
	}
	v := newTestVM(t, code)
	v.Tasks[1].PC = 8

	// Task 1 still runs in the sweep that schedules the kill.
	runFrame(t, v)
	if v.Vars[1] != 1 {
		t.Fatalf("V1 = %d in kill frame", v.Vars[1])
	}
	runFrame(t, v)
	if v.Vars[1] != 1 {
		t.Fatal("killed task ran again")
	}
	if v.Tasks[1].PC != inactiveTask {
		t.Fatalf("task 1 pc = 0x%X, want inactive", v.Tasks[1].PC)
	}
}

func TestChangeTasksStatePause(t *testing.T) {
	code := []byte{
		0x0C, 0x01, 0x01, 0x01, // changeTasksState 1..1, paused
		0x06,             // yield
		0x07, 0x00, 0x04, // jmp 4
		// task 1 at 0x08
		0x03, 0x01, 0x00, 0x01, // addConst V1, 1
		0x06,             // yield
		0x07, 0x00, 0x08, // jmp 8
	}
	v := newTestVM(t, code)
	v.Tasks[1].PC = 8

	runFrame(t, v)
	runFrame(t, v)
	if v.Vars[1] != 1 {
		t.Fatalf("V1 = %d, paused task must not run", v.Vars[1])
	}
	if v.Tasks[1].State != 1 {
		t.Fatal("task 1 not paused")
	}
}

func TestCallRet(t *testing.T) {
	code := []byte{
		0x04, 0x00, 0x08, // call 0x08
		0x06,             // yield
		0x07, 0x00, 0x03, // jmp 3
		0x00,                   // pad
		0x00, 0x07, 0x00, 0x2A, // movConst V7, 42
		0x05, // ret
	}
	v := newTestVM(t, code)
	runFrame(t, v)
	if v.Vars[7] != 42 {
		t.Fatalf("V7 = %d", v.Vars[7])
	}
}

func TestCallStackOverflow(t *testing.T) {
	code := []byte{0x04, 0x00, 0x00} // call 0, forever
	v := newTestVM(t, code)
	if err := runUntilError(t, v); err == nil {
		t.Fatal("expected stack overflow")
	}
}

func TestRetStackUnderflow(t *testing.T) {
	code := []byte{0x05}
	v := newTestVM(t, code)
	if _, err := v.Run(); err == nil {
		t.Fatal("expected stack underflow")
	}
}

func TestInvalidOpcode(t *testing.T) {
	code := []byte{0x1B}
	v := newTestVM(t, code)
	if _, err := v.Run(); err == nil {
		t.Fatal("expected invalid opcode error")
	}
}

func TestCondJmpPredicates(t *testing.T) {
	tests := []struct {
		name  string
		op    byte
		b     int16 // value of the tested variable
		a     byte  // immediate operand
		taken bool
	}{
		{"eq true", 0, 5, 5, true},
		{"eq false", 0, 5, 6, false},
		{"ne true", 1, 5, 6, true},
		{"ne false", 1, 5, 5, false},
		{"gt true", 2, 7, 5, true},
		{"gt false", 2, 5, 5, false},
		{"ge true", 3, 5, 5, true},
		{"ge false", 3, 4, 5, false},
		{"lt true", 4, 4, 5, true},
		{"lt false", 4, 5, 5, false},
		{"le true", 5, 5, 5, true},
		{"le false", 5, 6, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := []byte{
				0x0A, tt.op, 0x00, tt.a, 0x00, 0x10, // condJmp V0 <op> a -> 0x10
				0x00, 0x09, 0x00, 0x01, // movConst V9, 1 (fallthrough)
				0x06,             // yield
				0x07, 0x00, 0x0A, // jmp 0x0A
				0x00, 0x00, // pad
				0x00, 0x09, 0x00, 0x02, // movConst V9, 2 (branch target)
				0x06,             // yield
				0x07, 0x00, 0x14, // jmp 0x14
			}
			v := newTestVM(t, code)
			v.Vars[0] = tt.b
			runFrame(t, v)
			want := int16(1)
			if tt.taken {
				want = 2
			}
			if v.Vars[9] != want {
				t.Fatalf("V9 = %d, want %d", v.Vars[9], want)
			}
		})
	}
}

func TestJmpIfVarLoops(t *testing.T) {
	code := []byte{
		0x03, 0x01, 0x00, 0x01, // addConst V1, 1
		0x09, 0x00, 0x00, 0x00, // jmpIfVar V0 -> 0
		0x06,             // yield
		0x07, 0x00, 0x08, // jmp 8
	}
	v := newTestVM(t, code)
	v.Vars[0] = 3
	runFrame(t, v)
	if v.Vars[1] != 3 {
		t.Fatalf("loop body ran %d times, want 3", v.Vars[1])
	}
	if v.Vars[0] != 0 {
		t.Fatalf("counter = %d", v.Vars[0])
	}
}

func TestUpdateDisplayBooksSleepDebt(t *testing.T) {
	code := []byte{
		0x10, 0xFE, // updateDisplay back page
		0x06,             // yield
		0x07, 0x00, 0x02, // jmp 2
	}
	v := newTestVM(t, code)
	v.Vars[VarPauseSlices] = 2
	runFrame(t, v)
	// two 20 ms slices with zero elapsed delay
	if v.Sleep != 40 {
		t.Fatalf("sleep = %d, want 40", v.Sleep)
	}
	if v.Vars[0xF7] != 0 {
		t.Fatal("VAR(0xF7) must be cleared on display update")
	}
}

func TestProtectionBypass(t *testing.T) {
	code := []byte{
		// jmpIf(VAR(0x29) == VAR(0x1E), @0x10)
		0x0A, 0x80, 0x29, 0x1E, 0x00, 0x10,
		0x00, 0x09, 0x00, 0x01, // movConst V9, 1 (not taken)
		0x06,
		0x07, 0x00, 0x0A,
		0x00, 0x00, // pad
		0x00, 0x09, 0x00, 0x02, // movConst V9, 2 (taken)
		0x06,
		0x07, 0x00, 0x14,
	}
	v := newTestVM(t, code)
	v.EnableProtection = false
	v.Res.CurrentPart = resource.PartCopyProtection
	v.Vars[0x1E] = 11
	v.Vars[0x1F] = 12
	v.Vars[0x20] = 13
	v.Vars[0x21] = 14
	v.Vars[0x29] = 99 // entered symbols do not match

	runFrame(t, v)

	if v.Vars[9] != 2 {
		t.Fatal("bypass must force the branch")
	}
	if v.Vars[0x29] != 11 || v.Vars[0x2A] != 12 || v.Vars[0x2B] != 13 || v.Vars[0x2C] != 14 {
		t.Fatal("expected symbols not copied")
	}
	if v.Vars[0x32] != 6 || v.Vars[0x64] != 20 {
		t.Fatal("protection counters not primed")
	}
}

func TestInputProjection(t *testing.T) {
	code := []byte{
		0x06,             // yield
		0x07, 0x00, 0x00, // jmp 0
	}
	v := newTestVM(t, code)
	v.Input.KeyDown(input.KeyRight)
	v.Input.KeyDown(input.KeyUp)
	v.Input.KeyDown(input.KeyAction)

	runFrame(t, v)

	if v.Vars[VarHeroPosLeftRight] != 1 {
		t.Errorf("LEFT_RIGHT = %d", v.Vars[VarHeroPosLeftRight])
	}
	if v.Vars[VarHeroPosUpDown] != -1 || v.Vars[VarHeroPosJumpDown] != -1 {
		t.Errorf("UP_DOWN = %d JUMP_DOWN = %d", v.Vars[VarHeroPosUpDown], v.Vars[VarHeroPosJumpDown])
	}
	if v.Vars[VarHeroPosMask] != 1|8 {
		t.Errorf("POS_MASK = %d", v.Vars[VarHeroPosMask])
	}
	if v.Vars[VarHeroAction] != 1 {
		t.Errorf("ACTION = %d", v.Vars[VarHeroAction])
	}
	if v.Vars[VarHeroActionPosMask] != int16(1|8|0x80) {
		t.Errorf("ACTION_POS_MASK = %d", v.Vars[VarHeroActionPosMask])
	}
}

func TestDemoJoyOverridesInput(t *testing.T) {
	code := []byte{
		0x06,             // yield
		0x07, 0x00, 0x00, // jmp 0
	}
	v := newTestVM(t, code)
	v.Res.CurrentPart = resource.PartWater
	v.Input.DemoJoy.Read([]byte{0x83, 2, 0x02, 1})
	if !v.Input.DemoJoy.Start() {
		t.Fatal("demo joy should start")
	}

	runFrame(t, v)

	if v.Vars[VarHeroActionPosMask] != int16(0x83) {
		t.Fatalf("ACTION_POS_MASK = %d", v.Vars[VarHeroActionPosMask])
	}
	if v.Vars[VarHeroPosMask] != 3 {
		t.Fatalf("POS_MASK = %d", v.Vars[VarHeroPosMask])
	}
	// 0x83 sets both bit 0 (right) and bit 1 (left); left is applied last
	if v.Vars[VarHeroPosLeftRight] != -1 {
		t.Fatalf("LEFT_RIGHT = %d", v.Vars[VarHeroPosLeftRight])
	}
	if v.Vars[VarHeroAction] != 1 {
		t.Fatalf("ACTION = %d", v.Vars[VarHeroAction])
	}
}

func TestDrawShapeImmediateClampsY(t *testing.T) {
	code := []byte{
		0x80, 0x00, // shape at offset 0
		10, 220, // x=10, y=220: overflow folds into x
		0x06,
		0x07, 0x00, 0x04,
	}
	v := newTestVM(t, code)
	// shape stream: a degenerate polygon drawn as a single point
	shape := []byte{0xC1, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0}
	shapeOff := int32(0x1000)
	copy(v.Res.Mem[shapeOff:], shape)
	v.Res.SegVideo1 = shapeOff

	runFrame(t, v)

	// y clamps to 199 and the 21-row overflow lands in x
	page := v.Video.Buffers[0]
	if got := v.Video.Pages[page][199*video.Width+31]; got != 1 {
		t.Fatalf("pixel at (31,199) = %d, want 1", got)
	}
}

func TestRemoveTask(t *testing.T) {
	code := []byte{
		// task 0
		0x08, 0x01, 0x00, 0x08, // installTask 1, 8
		0x06,
		0x07, 0x00, 0x04,
		// task 1: runs once and removes itself
		0x03, 0x01, 0x00, 0x01, // addConst V1, 1
		0x11, // removeTask
	}
	v := newTestVM(t, code)
	runFrame(t, v)
	runFrame(t, v)
	runFrame(t, v)
	if v.Vars[1] != 1 {
		t.Fatalf("V1 = %d, removed task must run exactly once", v.Vars[1])
	}
	if v.Tasks[1].PC != inactiveTask {
		t.Fatalf("task 1 pc = 0x%X", v.Tasks[1].PC)
	}
}
