package game

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"raw-engine/internal/audio"
	"raw-engine/internal/resource"
	"raw-engine/internal/text"
	"raw-engine/internal/video"
	"raw-engine/internal/vm"
)

// SnapshotVersion is bumped whenever the snapshot layout changes. Snapshots
// are by-value state copies and are not portable across builds.
const SnapshotVersion uint32 = 1

// Snapshot is the complete core state. Host callback and debug hooks are
// deliberately absent: they survive a load unchanged. Everything that refers
// into the arena does so by offset, so a restored snapshot is self-contained.
type Snapshot struct {
	Version uint32

	ResState   ResState
	VMState    VMState
	VideoState VideoState
	AudioState AudioState
	InputState InputState

	PartNum int
	Title   string
}

// ResState captures the resource manager, arena included.
type ResState struct {
	MemList           [resource.EntriesCountMax]resource.MemEntry
	NumMemList        uint16
	Mem               []byte
	CurrentPart       uint16
	NextPart          uint16
	ScriptBak         int32
	ScriptCur         int32
	VidCur            int32
	UseSegVideo2      bool
	SegVideoPal       int32
	SegCode           int32
	SegCodeSize       uint16
	SegVideo1         int32
	SegVideo2         int32
	HasPasswordScreen bool
	DataType          resource.DataType
	Lang              resource.Language
}

// VMState captures the register file, call stack, task table and timing.
type VMState struct {
	Vars        [256]int16
	StackCalls  [64]uint16
	Tasks       [vm.NumTasks]vm.Task
	StackPtr    uint8
	Ptr         uint16
	Paused      bool
	ScreenNum   int
	StartTime   uint32
	TimeStamp   uint32
	CurrentTask uint8
	Elapsed     uint32
	Sleep       uint32
}

// VideoState captures the pages, palette and page indirection.
type VideoState struct {
	Fb           [video.Width * video.Height]uint8
	Pages        [4][video.Width * video.Height]uint8
	Palette      [16]uint32
	NextPal      uint8
	CurrentPal   uint8
	Buffers      [3]uint8
	DrawPage     uint8
	UseEGA       bool
	FixUpPalette bool
}

// AudioState captures the mixer voices and the tracker.
type AudioState struct {
	Channels [audio.MixChannels]audio.Channel

	SfxDelay       uint16
	SfxResNum      uint16
	SfxMod         audio.SfxModule
	SfxPlaying     bool
	SfxRate        int
	SfxSamplesLeft int
	SfxChannels    [audio.SfxNumChannels]audio.SfxChannel
}

// InputState captures the key state and the demo stream position.
type InputState struct {
	DirMask  uint8
	Action   bool
	Code     bool
	Pause    bool
	Quit     bool
	Back     bool
	LastChar byte

	DemoKeyMask uint8
	DemoCounter uint8
	DemoPos     int
}

// SaveSnapshot serializes the complete core state.
func (g *Game) SaveSnapshot() ([]byte, error) {
	snap := Snapshot{
		Version: SnapshotVersion,
		ResState: ResState{
			MemList:           g.Res.MemList,
			NumMemList:        g.Res.NumMemList,
			Mem:               g.Res.Mem,
			CurrentPart:       g.Res.CurrentPart,
			NextPart:          g.Res.NextPart,
			ScriptBak:         g.Res.ScriptBak,
			ScriptCur:         g.Res.ScriptCur,
			VidCur:            g.Res.VidCur,
			UseSegVideo2:      g.Res.UseSegVideo2,
			SegVideoPal:       g.Res.SegVideoPal,
			SegCode:           g.Res.SegCode,
			SegCodeSize:       g.Res.SegCodeSize,
			SegVideo1:         g.Res.SegVideo1,
			SegVideo2:         g.Res.SegVideo2,
			HasPasswordScreen: g.Res.HasPasswordScreen,
			DataType:          g.Res.DataType,
			Lang:              g.Res.Lang,
		},
		VMState: VMState{
			Vars:        g.VM.Vars,
			StackCalls:  g.VM.StackCalls,
			Tasks:       g.VM.Tasks,
			StackPtr:    g.VM.StackPtr,
			Ptr:         g.VM.Ptr,
			Paused:      g.VM.Paused,
			ScreenNum:   g.VM.ScreenNum,
			StartTime:   g.VM.StartTime,
			TimeStamp:   g.VM.TimeStamp,
			CurrentTask: g.VM.CurrentTask,
			Elapsed:     g.VM.Elapsed,
			Sleep:       g.VM.Sleep,
		},
		VideoState: VideoState{
			Fb:           g.Video.Fb,
			Pages:        g.Video.Pages,
			Palette:      g.Video.Palette,
			NextPal:      g.Video.NextPal,
			CurrentPal:   g.Video.CurrentPal,
			Buffers:      g.Video.Buffers,
			DrawPage:     g.Video.DrawPage,
			UseEGA:       g.Video.UseEGA,
			FixUpPalette: g.Video.FixUpPalette,
		},
		AudioState: AudioState{
			Channels:       g.Audio.Channels,
			SfxDelay:       g.Audio.Sfx.Delay,
			SfxResNum:      g.Audio.Sfx.ResNum,
			SfxMod:         g.Audio.Sfx.Mod,
			SfxPlaying:     g.Audio.Sfx.Playing,
			SfxRate:        g.Audio.Sfx.Rate,
			SfxSamplesLeft: g.Audio.Sfx.SamplesLeft,
			SfxChannels:    g.Audio.Sfx.Channels,
		},
		InputState: InputState{
			DirMask:     g.Input.DirMask,
			Action:      g.Input.Action,
			Code:        g.Input.Code,
			Pause:       g.Input.Pause,
			Quit:        g.Input.Quit,
			Back:        g.Input.Back,
			LastChar:    g.Input.LastChar,
			DemoKeyMask: g.Input.DemoJoy.KeyMask,
			DemoCounter: g.Input.DemoJoy.Counter,
			DemoPos:     g.Input.DemoJoy.Pos,
		},
		PartNum: g.PartNum,
		Title:   g.title,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&snap); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadSnapshot restores a previously saved state. The data bundle, the audio
// callback and the debug hook of the live game are kept.
func (g *Game) LoadSnapshot(data []byte) error {
	var snap Snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	rs := &snap.ResState
	g.Res.MemList = rs.MemList
	g.Res.NumMemList = rs.NumMemList
	copy(g.Res.Mem, rs.Mem)
	g.Res.CurrentPart = rs.CurrentPart
	g.Res.NextPart = rs.NextPart
	g.Res.ScriptBak = rs.ScriptBak
	g.Res.ScriptCur = rs.ScriptCur
	g.Res.VidCur = rs.VidCur
	g.Res.UseSegVideo2 = rs.UseSegVideo2
	g.Res.SegVideoPal = rs.SegVideoPal
	g.Res.SegCode = rs.SegCode
	g.Res.SegCodeSize = rs.SegCodeSize
	g.Res.SegVideo1 = rs.SegVideo1
	g.Res.SegVideo2 = rs.SegVideo2
	g.Res.HasPasswordScreen = rs.HasPasswordScreen
	g.Res.DataType = rs.DataType
	g.Res.Lang = rs.Lang

	vs := &snap.VMState
	g.VM.Vars = vs.Vars
	g.VM.StackCalls = vs.StackCalls
	g.VM.Tasks = vs.Tasks
	g.VM.StackPtr = vs.StackPtr
	g.VM.Ptr = vs.Ptr
	g.VM.Paused = vs.Paused
	g.VM.ScreenNum = vs.ScreenNum
	g.VM.StartTime = vs.StartTime
	g.VM.TimeStamp = vs.TimeStamp
	g.VM.CurrentTask = vs.CurrentTask
	g.VM.Elapsed = vs.Elapsed
	g.VM.Sleep = vs.Sleep

	gs := &snap.VideoState
	g.Video.Fb = gs.Fb
	g.Video.Pages = gs.Pages
	g.Video.Palette = gs.Palette
	g.Video.NextPal = gs.NextPal
	g.Video.CurrentPal = gs.CurrentPal
	g.Video.Buffers = gs.Buffers
	g.Video.DrawPage = gs.DrawPage
	g.Video.UseEGA = gs.UseEGA
	g.Video.FixUpPalette = gs.FixUpPalette

	as := &snap.AudioState
	g.Audio.Channels = as.Channels
	g.Audio.Sfx.Delay = as.SfxDelay
	g.Audio.Sfx.ResNum = as.SfxResNum
	g.Audio.Sfx.Mod = as.SfxMod
	g.Audio.Sfx.Playing = as.SfxPlaying
	g.Audio.Sfx.Rate = as.SfxRate
	g.Audio.Sfx.SamplesLeft = as.SfxSamplesLeft
	g.Audio.Sfx.Channels = as.SfxChannels

	is := &snap.InputState
	g.Input.DirMask = is.DirMask
	g.Input.Action = is.Action
	g.Input.Code = is.Code
	g.Input.Pause = is.Pause
	g.Input.Quit = is.Quit
	g.Input.Back = is.Back
	g.Input.LastChar = is.LastChar
	g.Input.DemoJoy.KeyMask = is.DemoKeyMask
	g.Input.DemoJoy.Counter = is.DemoCounter
	g.Input.DemoJoy.Pos = is.DemoPos
	g.Input.DemoJoy.Rebind(g.Res.Data.Demo3Joy)

	g.PartNum = snap.PartNum
	g.title = snap.Title

	// Re-derive everything that is not state: the arena alias and the
	// language-selected string table.
	g.Audio.SetArena(g.Res.Mem)
	if g.Res.Lang == resource.LangFR {
		g.Video.StringsTable = text.TableFR
	} else {
		g.Video.StringsTable = text.TableEN
	}

	return nil
}
