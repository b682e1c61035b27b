// Package game is the host-facing surface of the interpreter. A Game owns
// every subsystem and is driven by periodic Exec calls; the host reads the
// finished framebuffer and palette between calls and receives audio through
// a sample callback.
package game

import (
	"time"

	"raw-engine/internal/audio"
	"raw-engine/internal/debug"
	"raw-engine/internal/input"
	"raw-engine/internal/resource"
	"raw-engine/internal/text"
	"raw-engine/internal/video"
	"raw-engine/internal/vm"
)

// Framebuffer dimensions re-exported for hosts.
const (
	Width  = video.Width
	Height = video.Height
)

// AudioDesc configures the sample stream handed to the host.
type AudioDesc struct {
	// Callback receives one logical frame's worth of stereo-interleaved
	// float32 samples in [-1, 1).
	Callback audio.Callback

	// SamplesPerFrame is the number of interleaved samples mixed per
	// logical frame; zero selects one 50 Hz frame at 44100 Hz stereo.
	SamplesPerFrame int
}

// DebugHook observes the program counter after every executed opcode. When
// Stopped is set and true, Exec returns without running any bytecode.
type DebugHook struct {
	Func    func(pc uint16)
	Stopped *bool
}

// Desc configures a Game.
type Desc struct {
	// PartNum is a restart position in [0,35] or a raw part id.
	PartNum          int
	UseEGA           bool
	Lang             resource.Language
	EnableProtection bool
	FixUpPalette     bool
	Audio            AudioDesc
	Debug            DebugHook

	// Logger defaults to a fresh, all-disabled logger.
	Logger *debug.Logger
}

// GameData re-exports the resource bundle type for hosts.
type GameData = resource.GameData

// Game is one interpreter instance. It is not safe for concurrent use; the
// host must drive it from a single goroutine.
type Game struct {
	Res   *resource.Manager
	Video *video.Video
	Audio *audio.Mixer
	Input *input.State
	VM    *vm.VM
	Log   *debug.Logger

	PartNum int

	title string
	debug DebugHook

	samplesPerFrame int
}

// New creates a configured but not yet started Game.
func New(desc Desc) *Game {
	log := desc.Logger
	if log == nil {
		log = debug.NewLogger(10000)
	}

	res := resource.NewManager(log)
	vid := video.New(res, log)
	inp := &input.State{}
	mix := audio.NewMixer(res.Mem, desc.Audio.Callback, log)
	machine := vm.New(res, vid, mix, inp, log)

	g := &Game{
		Res:             res,
		Video:           vid,
		Audio:           mix,
		Input:           inp,
		VM:              machine,
		Log:             log,
		PartNum:         desc.PartNum,
		debug:           desc.Debug,
		samplesPerFrame: desc.Audio.SamplesPerFrame,
	}
	if g.samplesPerFrame == 0 {
		g.samplesPerFrame = audio.MixFreq / 50 * 2
	}

	res.Lang = desc.Lang
	vid.UseEGA = desc.UseEGA
	vid.FixUpPalette = desc.FixUpPalette
	machine.EnableProtection = desc.EnableProtection

	// Cross-component wiring: bitmaps decode straight into the work page,
	// invalidation drops the palette cache, the tracker resolves its
	// instruments through the resource directory and reports sync marks
	// into the register file.
	res.OnBitmap = vid.CopyBitmap
	res.OnInvalidate = vid.InvalidatePal
	mix.Init(desc.Audio.Callback)
	mix.Sfx.Resolve = func(resNum uint16, resType uint8) (int32, bool) {
		me := &res.MemList[resNum]
		if me.Status == resource.StatusLoaded && me.Type == resType {
			return me.BufOff, true
		}
		return -1, false
	}
	mix.Sfx.OnSync = func(value uint16) {
		machine.Vars[vm.VarMusicSync] = int16(value)
	}

	return g
}

// Start hands over the data bundle, detects the data variant and boots the
// starting part.
func (g *Game) Start(data GameData) error {
	g.Res.Data = data
	if len(data.Demo3Joy) != 0 {
		g.Input.DemoJoy.Read(data.Demo3Joy)
	}

	if err := g.Res.DetectVersion(); err != nil {
		return err
	}
	g.Video.Init()
	g.Res.HasPasswordScreen = true
	g.Res.ScriptBak = 0
	g.Res.ScriptCur = 0
	g.Res.VidCur = resource.MemBlockSize - resource.VidBitmapSize
	if err := g.Res.ReadEntries(); err != nil {
		return err
	}

	g.VM.Vars[vm.VarRandomSeed] = int16(time.Now().Unix())
	if !g.VM.EnableProtection {
		g.VM.Vars[0xBC] = 0x10
		g.VM.Vars[0xC6] = 0x80
		if g.Res.DataType == resource.DataTypeAmiga || g.Res.DataType == resource.DataTypeAtari {
			g.VM.Vars[0xF2] = 6000
		} else {
			g.VM.Vars[0xF2] = 4000
		}
		g.VM.Vars[0xDC] = 33
	}
	if g.Res.DataType == resource.DataTypeDOS {
		g.VM.Vars[0xE4] = 20
	}

	if g.Res.Lang == resource.LangFR {
		g.Video.StringsTable = text.TableFR
	} else {
		g.Video.StringsTable = text.TableEN
	}

	if g.VM.EnableProtection {
		if g.Res.DataType != resource.DataTypeDOS || g.Res.HasPasswordScreen {
			g.PartNum = resource.PartCopyProtection
		}
	}

	num := g.PartNum
	var err error
	if num < 36 {
		err = g.VM.RestartAt(restartPos[num*2], restartPos[num*2+1])
	} else {
		err = g.VM.RestartAt(num, -1)
	}
	if err != nil {
		return err
	}
	g.title = g.Res.GameTitle()
	return nil
}

// Exec advances the interpreter by the elapsed wall time. It runs bytecode
// until every live task has yielded once, mixes one frame of audio and books
// a 20 ms (50 Hz) sleep debt.
func (g *Game) Exec(ms uint32) error {
	g.VM.Elapsed += ms

	if g.VM.Sleep != 0 {
		if ms > g.VM.Sleep {
			g.VM.Sleep = 0
		} else {
			g.VM.Sleep -= ms
		}
		return nil
	}

	for {
		if g.debug.Stopped != nil && *g.debug.Stopped {
			g.VM.Sleep = 0
			break
		}
		stopped, err := g.VM.Run()
		if err != nil {
			return err
		}
		if g.debug.Func != nil {
			g.debug.Func(g.VM.Tasks[g.VM.CurrentTask].PC)
		}
		if stopped {
			break
		}
	}

	g.Audio.Update(g.samplesPerFrame)

	g.VM.Sleep += 20 // 50 Hz
	return nil
}

// KeyDown forwards a key press to the input state.
func (g *Game) KeyDown(k input.Key) {
	g.Input.KeyDown(k)
}

// KeyUp forwards a key release to the input state.
func (g *Game) KeyUp(k input.Key) {
	g.Input.KeyUp(k)
}

// CharPressed records a typed character for the password screen.
func (g *Game) CharPressed(c rune) {
	g.Input.LastChar = byte(c)
}

// DisplayInfo exposes immutable views of the framebuffer and palette. The
// slices stay valid between Exec calls only.
func (g *Game) DisplayInfo() (fb []byte, pal []uint32, w, h int) {
	return g.Video.Fb[:], g.Video.Palette[:], Width, Height
}

// Title returns the window title matching the loaded data.
func (g *Game) Title() string {
	return g.title
}

// GetResBuf decodes resource id out of the banks into dst, bypassing the
// arena. Used by host-side tooling.
func (g *Game) GetResBuf(id int, dst []byte) bool {
	return g.Res.ReadBank(&g.Res.MemList[id], dst)
}

// Quit requests scheduling to halt on the next sweep.
func (g *Game) Quit() {
	g.Input.Quit = true
}
