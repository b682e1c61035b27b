// Package vm executes the game bytecode: 64 cooperatively scheduled tasks
// over a shared 256-variable register file, with a 27-opcode primitive set
// and two families of polygon draw opcodes folded into the upper half of the
// opcode space.
package vm

import (
	"encoding/binary"

	"raw-engine/internal/audio"
	"raw-engine/internal/debug"
	"raw-engine/internal/input"
	"raw-engine/internal/resource"
	"raw-engine/internal/video"
)

// NumTasks is the size of the task table.
const NumTasks = 64

// inactiveTask is the program-counter sentinel of a dormant task slot.
const inactiveTask = 0xFFFF

// Reserved variables. Everything else is free for the bytecode.
const (
	VarRandomSeed        = 0x3C
	VarScreenNum         = 0x67
	VarLastKeyChar       = 0xDA
	VarHeroPosUpDown     = 0xE5
	VarMusicSync         = 0xF4
	VarScrollY           = 0xF9
	VarHeroAction        = 0xFA
	VarHeroPosJumpDown   = 0xFB
	VarHeroPosLeftRight  = 0xFC
	VarHeroPosMask       = 0xFD
	VarHeroActionPosMask = 0xFE
	VarPauseSlices       = 0xFF
)

// Task is one slot of the task table. NextPC and NextState are the deferred
// writes applied on the sweep boundary.
type Task struct {
	PC        uint16
	NextPC    uint16
	State     uint8
	NextState uint8
}

// VM is the bytecode interpreter state plus its wiring to the other
// subsystems.
type VM struct {
	Vars       [256]int16
	StackCalls [64]uint16
	Tasks      [NumTasks]Task

	StackPtr    uint8
	Ptr         uint16 // pc of the running task, an offset into the bytecode segment
	Paused      bool
	ScreenNum   int
	StartTime   uint32
	TimeStamp   uint32
	CurrentTask uint8

	// Elapsed accumulates host milliseconds; Sleep is the outstanding
	// debt from pause slices.
	Elapsed uint32
	Sleep   uint32

	EnableProtection bool

	Res   *resource.Manager
	Video *video.Video
	Audio *audio.Mixer
	Input *input.State
	Log   *debug.Logger

	code []byte
}

// New wires a VM to its collaborators.
func New(res *resource.Manager, vid *video.Video, mix *audio.Mixer, inp *input.State, log *debug.Logger) *VM {
	return &VM{Res: res, Video: vid, Audio: mix, Input: inp, Log: log}
}

func (v *VM) fetchByte() uint8 {
	b := v.code[v.Ptr]
	v.Ptr++
	return b
}

func (v *VM) fetchWord() uint16 {
	w := binary.BigEndian.Uint16(v.code[v.Ptr:])
	v.Ptr += 2
	return w
}

// RestartAt switches to a part and resets the task table; only task 0 is
// live, at offset 0. A non-negative pos lands in VAR(0).
func (v *VM) RestartAt(part, pos int) error {
	v.Audio.StopAll()
	if v.Res.DataType == resource.DataTypeDOS && part == resource.PartCopyProtection {
		// VAR(0x54) selects the title screen shown by the protection
		// part: "Another World" for French data, "Out Of This World"
		// otherwise.
		if v.Res.Lang == resource.LangFR {
			v.Vars[0x54] = 0x01
		} else {
			v.Vars[0x54] = 0x81
		}
	}
	if err := v.Res.SetupPart(part); err != nil {
		return err
	}
	for i := range v.Tasks {
		v.Tasks[i] = Task{PC: inactiveTask, NextPC: inactiveTask}
	}
	v.Tasks[0].PC = 0
	v.ScreenNum = -1
	if pos >= 0 {
		v.Vars[0] = int16(pos)
	}
	v.StartTime = v.Elapsed
	v.TimeStamp = v.Elapsed
	if part == resource.PartWater {
		if v.Input.DemoJoy.Start() {
			// the scripted demo runs from a zeroed register file
			for i := range v.Vars {
				v.Vars[i] = 0
			}
		}
	}
	return nil
}

// setupTasks is the sweep-boundary apply: a staged part switch first, then
// every slot's deferred pc/state writes.
func (v *VM) setupTasks() error {
	if v.Res.NextPart != 0 {
		if err := v.RestartAt(int(v.Res.NextPart), -1); err != nil {
			return err
		}
		v.Res.NextPart = 0
	}
	for i := range v.Tasks {
		t := &v.Tasks[i]
		t.State = t.NextState
		n := t.NextPC
		if n != inactiveTask {
			if n == inactiveTask-1 {
				t.PC = inactiveTask
			} else {
				t.PC = n
			}
			t.NextPC = inactiveTask
		}
	}
	return nil
}

// updateInput projects the host input state into the reserved variables.
// During the water part a scripted joystick stream overrides the live input.
func (v *VM) updateInput() {
	if v.Res.CurrentPart == resource.PartPassword {
		c := v.Input.LastChar
		if c == 8 || c == 0 || (c >= 'a' && c <= 'z') {
			v.Vars[VarLastKeyChar] = int16(c &^ 0x20)
			v.Input.LastChar = 0
		}
	}
	var lr, m, ud, jd int16
	if v.Input.DirMask&input.DirRight != 0 {
		lr = 1
		m |= 1
	}
	if v.Input.DirMask&input.DirLeft != 0 {
		lr = -1
		m |= 2
	}
	if v.Input.DirMask&input.DirDown != 0 {
		ud = 1
		jd = 1
		m |= 4 // crouch
	}
	if v.Input.DirMask&input.DirUp != 0 {
		ud = -1
		jd = -1
		m |= 8 // jump
	}
	if v.Res.DataType != resource.DataTypeAmiga && v.Res.DataType != resource.DataTypeAtari {
		v.Vars[VarHeroPosUpDown] = ud
	}
	v.Vars[VarHeroPosJumpDown] = jd
	v.Vars[VarHeroPosLeftRight] = lr
	v.Vars[VarHeroPosMask] = m
	var action int16
	if v.Input.Action {
		action = 1
		m |= 0x80
	}
	v.Vars[VarHeroAction] = action
	v.Vars[VarHeroActionPosMask] = m

	if v.Res.CurrentPart == resource.PartWater {
		mask := v.Input.DemoJoy.Update()
		if mask != 0 {
			v.Vars[VarHeroActionPosMask] = int16(mask)
			v.Vars[VarHeroPosMask] = int16(mask & 15)
			v.Vars[VarHeroPosLeftRight] = 0
			if mask&1 != 0 {
				v.Vars[VarHeroPosLeftRight] = 1
			}
			if mask&2 != 0 {
				v.Vars[VarHeroPosLeftRight] = -1
			}
			v.Vars[VarHeroPosJumpDown] = 0
			if mask&4 != 0 {
				v.Vars[VarHeroPosJumpDown] = 1
			}
			if mask&8 != 0 {
				v.Vars[VarHeroPosJumpDown] = -1
			}
			v.Vars[VarHeroAction] = int16(mask >> 7)
		}
	}
}

// executeTask runs exactly one opcode of the current task. Opcodes with the
// top bit set draw a shape at immediate coordinates; opcodes with bit 6 set
// draw a shape with per-field addressing modes; the rest dispatch through
// the primitive table.
func (v *VM) executeTask() error {
	opcode := v.fetchByte()
	switch {
	case opcode&0x80 != 0:
		off := (uint16(opcode)<<8 | uint16(v.fetchByte())) << 1
		v.Res.UseSegVideo2 = false
		x := int16(v.fetchByte())
		y := int16(v.fetchByte())
		if h := y - 199; h > 0 {
			y = 199
			x += h
		}
		v.Log.LogVideof(debug.LogLevelDebug, "draw opcode 0x%02X: off=0x%X x=%d y=%d", opcode, off, x, y)
		v.Video.DrawShapeAt(false, off, 0xFF, 64, x, y)
	case opcode&0x40 != 0:
		offsetHi := v.fetchByte()
		off := (uint16(offsetHi)<<8 | uint16(v.fetchByte())) << 1
		x := int16(v.fetchByte())
		v.Res.UseSegVideo2 = false
		if opcode&0x20 == 0 {
			if opcode&0x10 == 0 {
				x = x<<8 | int16(v.fetchByte())
			} else {
				x = v.Vars[x]
			}
		} else {
			if opcode&0x10 != 0 {
				x += 0x100
			}
		}
		y := int16(v.fetchByte())
		if opcode&8 == 0 {
			if opcode&4 == 0 {
				y = y<<8 | int16(v.fetchByte())
			} else {
				y = v.Vars[y]
			}
		}
		zoom := uint16(64)
		if opcode&2 == 0 {
			if opcode&1 != 0 {
				zoom = uint16(v.Vars[v.fetchByte()])
			}
		} else {
			if opcode&1 != 0 {
				v.Res.UseSegVideo2 = true
			} else {
				zoom = uint16(v.fetchByte())
			}
		}
		v.Log.LogVideof(debug.LogLevelDebug, "draw opcode 0x40: off=0x%X x=%d y=%d", off, x, y)
		v.Video.DrawShapeAt(v.Res.UseSegVideo2, off, 0xFF, zoom, x, y)
	default:
		if opcode > 0x1A {
			return opcodeError(opcode)
		}
		return opTable[opcode](v)
	}
	return nil
}

// Run executes one opcode of the current task and advances the round-robin.
// It reports true when a full sweep has completed, which is the host's
// logical frame boundary.
func (v *VM) Run() (bool, error) {
	v.code = v.Res.CodeSegment()
	i := int(v.CurrentTask)
	if !v.Input.Quit && v.Tasks[i].State == 0 {
		n := v.Tasks[i].PC
		if n != inactiveTask {
			v.Ptr = n
			v.Paused = false
			if err := v.executeTask(); err != nil {
				return false, err
			}
			v.Tasks[i].PC = v.Ptr
			if !v.Paused && v.Tasks[i].PC != inactiveTask {
				return false, nil
			}
		}
	}

	result := false
	for {
		i = (i + 1) % NumTasks
		if i == 0 {
			result = true
			if err := v.setupTasks(); err != nil {
				return false, err
			}
			v.updateInput()
		}
		if v.Tasks[i].PC != inactiveTask {
			v.StackPtr = 0
			v.CurrentTask = uint8(i)
			break
		}
	}
	return result, nil
}
