package vm

import (
	"fmt"

	"raw-engine/internal/audio"
	"raw-engine/internal/debug"
	"raw-engine/internal/resource"
)

type opcodeFunc func(*VM) error

var opTable = [0x1B]opcodeFunc{
	/* 0x00 */
	(*VM).opMovConst,
	(*VM).opMov,
	(*VM).opAdd,
	(*VM).opAddConst,
	/* 0x04 */
	(*VM).opCall,
	(*VM).opRet,
	(*VM).opYieldTask,
	(*VM).opJmp,
	/* 0x08 */
	(*VM).opInstallTask,
	(*VM).opJmpIfVar,
	(*VM).opCondJmp,
	(*VM).opSetPalette,
	/* 0x0C */
	(*VM).opChangeTasksState,
	(*VM).opSelectPage,
	(*VM).opFillPage,
	(*VM).opCopyPage,
	/* 0x10 */
	(*VM).opUpdateDisplay,
	(*VM).opRemoveTask,
	(*VM).opDrawString,
	(*VM).opSub,
	/* 0x14 */
	(*VM).opAnd,
	(*VM).opOr,
	(*VM).opShl,
	(*VM).opShr,
	/* 0x18 */
	(*VM).opPlaySound,
	(*VM).opUpdateResources,
	(*VM).opPlayMusic,
}

func opcodeError(opcode uint8) error {
	return fmt.Errorf("invalid opcode 0x%X", opcode)
}

func (v *VM) opMovConst() error {
	i := v.fetchByte()
	n := int16(v.fetchWord())
	v.Log.LogVMf(debug.LogLevelDebug, "op_movConst(0x%02X, %d)", i, n)
	v.Vars[i] = n
	return nil
}

func (v *VM) opMov() error {
	i := v.fetchByte()
	j := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_mov(0x%02X, 0x%02X)", i, j)
	v.Vars[i] = v.Vars[j]
	return nil
}

func (v *VM) opAdd() error {
	i := v.fetchByte()
	j := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_add(0x%02X, 0x%02X)", i, j)
	v.Vars[i] += v.Vars[j]
	return nil
}

func (v *VM) opAddConst() error {
	if v.Res.CurrentPart == resource.PartLuxe && v.Ptr == 0x6D48 {
		// Script bug in the original data: the gun-loop script never
		// stops its sound. Later editions fixed the data; here the
		// 'stop' sound is injected like other parts of the game do.
		v.Log.LogVMf(debug.LogLevelWarning, "op_addConst: workaround for infinite looping gun sound")
		v.sndPlaySound(0x5B, 1, 64, 1)
	}
	i := v.fetchByte()
	n := int16(v.fetchWord())
	v.Log.LogVMf(debug.LogLevelDebug, "op_addConst(0x%02X, %d)", i, n)
	v.Vars[i] += n
	return nil
}

func (v *VM) opCall() error {
	off := v.fetchWord()
	v.Log.LogVMf(debug.LogLevelDebug, "op_call(0x%X)", off)
	if v.StackPtr == 0x40 {
		return fmt.Errorf("op_call: stack overflow")
	}
	v.StackCalls[v.StackPtr] = v.Ptr
	v.StackPtr++
	v.Ptr = off
	return nil
}

func (v *VM) opRet() error {
	v.Log.LogVMf(debug.LogLevelDebug, "op_ret()")
	if v.StackPtr == 0 {
		return fmt.Errorf("op_ret: stack underflow")
	}
	v.StackPtr--
	v.Ptr = v.StackCalls[v.StackPtr]
	return nil
}

func (v *VM) opYieldTask() error {
	v.Log.LogVMf(debug.LogLevelDebug, "op_yieldTask()")
	v.Paused = true
	return nil
}

func (v *VM) opJmp() error {
	off := v.fetchWord()
	v.Log.LogVMf(debug.LogLevelDebug, "op_jmp(0x%02X)", off)
	v.Ptr = off
	return nil
}

func (v *VM) opInstallTask() error {
	i := v.fetchByte()
	n := v.fetchWord()
	v.Log.LogVMf(debug.LogLevelDebug, "op_installTask(0x%X, 0x%X)", i, n)
	if int(i) >= NumTasks {
		return fmt.Errorf("op_installTask: invalid task %d", i)
	}
	v.Tasks[i].NextPC = n
	return nil
}

func (v *VM) opJmpIfVar() error {
	i := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_jmpIfVar(0x%02X)", i)
	v.Vars[i]--
	if v.Vars[i] != 0 {
		return v.opJmp()
	}
	v.fetchWord()
	return nil
}

// fixUpPaletteChangeScreen forces the palette matching a bitmap background
// on the two screens that blit one outside the normal palette flow.
func (v *VM) fixUpPaletteChangeScreen(part, screen int) {
	pal := -1
	switch part {
	case resource.PartCite:
		if screen == 0x47 { // bitmap resource #68
			pal = 8
		}
	case resource.PartLuxe:
		if screen == 0x4A { // bitmap resources #144, #145
			pal = 1
		}
	}
	if pal != -1 {
		v.Log.LogVMf(debug.LogLevelDebug, "Setting palette %d for part %d screen %d", pal, part, screen)
		v.Video.ChangePal(uint8(pal))
	}
}

func (v *VM) opCondJmp() error {
	op := v.fetchByte()
	variable := v.fetchByte()
	b := v.Vars[variable]
	var a int16
	if op&0x80 != 0 {
		a = v.Vars[v.fetchByte()]
	} else if op&0x40 != 0 {
		a = int16(v.fetchWord())
	} else {
		a = int16(v.fetchByte())
	}
	v.Log.LogVMf(debug.LogLevelDebug, "op_condJmp(%d, 0x%02X, 0x%02X) var=0x%02X", op, b, a, variable)
	expr := false
	switch op & 7 {
	case 0:
		expr = b == a
		if !v.EnableProtection && v.Res.CurrentPart == resource.PartCopyProtection {
			// The protection screen compares the entered symbols
			// with the expected ones through VAR(0x29)..VAR(0x2C);
			// feed it the answer and take the branch.
			if variable == 0x29 && op&0x80 != 0 {
				v.Vars[0x29] = v.Vars[0x1E]
				v.Vars[0x2A] = v.Vars[0x1F]
				v.Vars[0x2B] = v.Vars[0x20]
				v.Vars[0x2C] = v.Vars[0x21]
				v.Vars[0x32] = 6
				v.Vars[0x64] = 20
				v.Log.LogVMf(debug.LogLevelWarning, "op_condJmp: bypassing protection")
				expr = true
			}
		}
	case 1:
		expr = b != a
	case 2:
		expr = b > a
	case 3:
		expr = b >= a
	case 4:
		expr = b < a
	case 5:
		expr = b <= a
	default:
		v.Log.LogVMf(debug.LogLevelWarning, "op_condJmp: invalid condition %d", op&7)
	}
	if expr {
		if err := v.opJmp(); err != nil {
			return err
		}
		if variable == VarScreenNum && v.ScreenNum != int(v.Vars[VarScreenNum]) {
			v.fixUpPaletteChangeScreen(int(v.Res.CurrentPart), int(v.Vars[VarScreenNum]))
			v.ScreenNum = int(v.Vars[VarScreenNum])
		}
	} else {
		v.fetchWord()
	}
	return nil
}

func (v *VM) opSetPalette() error {
	i := v.fetchWord()
	v.Log.LogVMf(debug.LogLevelDebug, "op_changePalette(%d)", i)
	num := uint8(i >> 8)
	if v.Video.FixUpPalette && v.Res.CurrentPart == resource.PartIntro && (num == 10 || num == 16) {
		return nil
	}
	v.Video.NextPal = num
	return nil
}

func (v *VM) opChangeTasksState() error {
	start := v.fetchByte()
	end := v.fetchByte()
	if end < start {
		v.Log.LogVMf(debug.LogLevelWarning, "op_changeTasksState: end < start")
		return nil
	}
	state := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_changeTasksState(%d, %d, %d)", start, end, state)
	if state == 2 {
		for ; start <= end; start++ {
			v.Tasks[start].NextPC = inactiveTask - 1
		}
	} else if state < 2 {
		for ; start <= end; start++ {
			v.Tasks[start].NextState = state
		}
	}
	return nil
}

func (v *VM) opSelectPage() error {
	i := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_selectPage(%d)", i)
	v.Video.SetWorkPage(i)
	return nil
}

func (v *VM) opFillPage() error {
	i := v.fetchByte()
	color := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_fillPage(%d, %d)", i, color)
	v.Video.FillPage(i, color)
	return nil
}

func (v *VM) opCopyPage() error {
	i := v.fetchByte()
	j := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_copyPage(%d, %d)", i, j)
	v.Video.CopyPage(i, j, v.Vars[VarScrollY])
	return nil
}

// handleSpecialKeys consumes the pause/code/back keys on display updates.
func (v *VM) handleSpecialKeys() {
	if v.Input.Pause {
		v.Input.Pause = false
	}
	if v.Input.Back {
		v.Input.Back = false
	}
	if v.Input.Code {
		v.Input.Code = false
		if v.Res.HasPasswordScreen {
			if v.Res.CurrentPart != resource.PartPassword && v.Res.CurrentPart != resource.PartCopyProtection {
				v.Res.NextPart = resource.PartPassword
			}
		}
	}
}

func (v *VM) opUpdateDisplay() error {
	page := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_updateDisplay(%d)", page)
	v.handleSpecialKeys()

	if v.EnableProtection {
		// the entered protection symbols match the expected values
		if v.Res.CurrentPart == resource.PartCopyProtection && v.Vars[0x67] == 1 {
			v.Vars[0xDC] = 33
		}
	}

	const frameHz = 50
	if v.Vars[VarPauseSlices] != 0 {
		delay := int(v.Elapsed) - int(v.TimeStamp)
		pause := int(v.Vars[VarPauseSlices])*1000/frameHz - delay
		if pause > 0 {
			v.Sleep += uint32(pause)
		}
	}
	v.TimeStamp = v.Elapsed
	v.Vars[0xF7] = 0

	v.Video.UpdateDisplay(page)
	return nil
}

func (v *VM) opRemoveTask() error {
	v.Log.LogVMf(debug.LogLevelDebug, "op_removeTask()")
	v.Ptr = inactiveTask
	v.Paused = true
	return nil
}

func (v *VM) opDrawString() error {
	strId := v.fetchWord()
	x := uint16(v.fetchByte())
	y := uint16(v.fetchByte())
	col := uint16(v.fetchByte())
	v.Log.LogVMf(debug.LogLevelDebug, "op_drawString(0x%03X, %d, %d, %d)", strId, x, y, col)
	v.Video.DrawString(uint8(col), x, y, strId)
	return nil
}

func (v *VM) opSub() error {
	i := v.fetchByte()
	j := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_sub(0x%02X, 0x%02X)", i, j)
	v.Vars[i] -= v.Vars[j]
	return nil
}

func (v *VM) opAnd() error {
	i := v.fetchByte()
	n := v.fetchWord()
	v.Log.LogVMf(debug.LogLevelDebug, "op_and(0x%02X, %d)", i, n)
	v.Vars[i] = int16(uint16(v.Vars[i]) & n)
	return nil
}

func (v *VM) opOr() error {
	i := v.fetchByte()
	n := v.fetchWord()
	v.Log.LogVMf(debug.LogLevelDebug, "op_or(0x%02X, %d)", i, n)
	v.Vars[i] = int16(uint16(v.Vars[i]) | n)
	return nil
}

func (v *VM) opShl() error {
	i := v.fetchByte()
	n := v.fetchWord()
	v.Log.LogVMf(debug.LogLevelDebug, "op_shl(0x%02X, %d)", i, n)
	v.Vars[i] = int16(uint16(v.Vars[i]) << n)
	return nil
}

func (v *VM) opShr() error {
	i := v.fetchByte()
	n := v.fetchWord()
	v.Log.LogVMf(debug.LogLevelDebug, "op_shr(0x%02X, %d)", i, n)
	v.Vars[i] = int16(uint16(v.Vars[i]) >> n)
	return nil
}

// sndPlaySound starts a raw sample on a mixer voice. A zero volume stops the
// voice; volume and frequency index are clamped to their table ranges.
func (v *VM) sndPlaySound(resNum uint16, freq, vol, channel uint8) {
	v.Log.LogAudiof(debug.LogLevelDebug, "snd_playSound(0x%X, %d, %d, %d)", resNum, freq, vol, channel)
	if vol == 0 {
		v.Audio.StopSound(channel & 3)
		return
	}
	if vol > 63 {
		vol = 63
	}
	if freq > 39 {
		freq = 39
	}
	channel &= 3
	me := &v.Res.MemList[resNum]
	if me.Status == resource.StatusLoaded {
		v.Audio.PlaySoundRaw(channel, me.BufOff, audio.SoundFreq(freq), vol)
	}
}

func (v *VM) opPlaySound() error {
	resNum := v.fetchWord()
	freq := v.fetchByte()
	vol := v.fetchByte()
	channel := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_playSound(0x%X, %d, %d, %d)", resNum, freq, vol, channel)
	v.sndPlaySound(resNum, freq, vol, channel)
	return nil
}

func (v *VM) opUpdateResources() error {
	num := v.fetchWord()
	v.Log.LogVMf(debug.LogLevelDebug, "op_updateResources(%d)", num)
	if num == 0 {
		v.Audio.StopAll()
		v.Res.Invalidate()
		return nil
	}
	return v.Res.Update(num)
}

func (v *VM) sndPlayMusic(resNum, delay uint16, pos uint8) error {
	v.Log.LogAudiof(debug.LogLevelDebug, "snd_playMusic(0x%X, %d, %d)", resNum, delay, pos)
	switch {
	case resNum != 0:
		if err := v.Audio.Sfx.LoadModule(resNum, delay, pos); err != nil {
			return err
		}
		v.Audio.Sfx.Start()
		v.Audio.Sfx.Play(audio.MixFreq)
	case delay != 0:
		v.Audio.Sfx.SetEventsDelay(delay)
	default:
		v.Audio.Sfx.Stop()
	}
	return nil
}

func (v *VM) opPlayMusic() error {
	resNum := v.fetchWord()
	delay := v.fetchWord()
	pos := v.fetchByte()
	v.Log.LogVMf(debug.LogLevelDebug, "op_playMusic(0x%X, %d, %d)", resNum, delay, pos)
	return v.sndPlayMusic(resNum, delay, pos)
}
