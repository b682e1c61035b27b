// Package ui hosts the interpreter in a Fyne window: the paletted
// framebuffer is scaled into a canvas image, keyboard events feed the input
// adapter and the audio callback is queued onto an SDL2 device.
package ui

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"raw-engine/internal/debug"
	"raw-engine/internal/game"
	"raw-engine/internal/input"
	"raw-engine/internal/ui/panels"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/veandco/go-sdl2/sdl"
)

const frameHz = 50

// FyneUI drives one Game in a window.
type FyneUI struct {
	app    fyne.App
	window fyne.Window
	game   *game.Game
	scale  int

	running bool
	paused  bool

	audioDev   sdl.AudioDeviceID
	audioBytes []byte
	audioMu    sync.Mutex

	screenImage   *canvas.Image
	statusLabel   *widget.Label
	frameImages   [2]*image.RGBA
	frameImageIdx int

	showLogViewer bool
	showVars      bool

	logViewerPanel *fyne.Container
	varsPanel      *fyne.Container
	updateLogs     func()
	updateVars     func()

	splitContent *container.Split

	keyMu     sync.Mutex
	keyStates map[fyne.KeyName]bool
}

// NewFyneUI creates the window and audio device for a configured game. The
// caller wires the game's audio callback to ui.QueueSamples once the UI
// exists (see cmd/raw).
func NewFyneUI(g *game.Game, scale int) (*FyneUI, error) {
	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}

	audioSpec := sdl.AudioSpec{
		Freq:     44100,
		Format:   sdl.AUDIO_F32,
		Channels: 2,
		Samples:  1024,
	}
	audioDev, err := sdl.OpenAudioDevice("", false, &audioSpec, nil, 0)
	if err != nil {
		g.Log.LogUIf(debug.LogLevelWarning, "Failed to open audio device: %v", err)
		audioDev = 0
	} else {
		sdl.PauseAudioDevice(audioDev, false)
	}

	fyneApp := app.NewWithID("com.raw-engine.player")
	window := fyneApp.NewWindow(g.Title())

	statusLabel := widget.NewLabel("part: - | frame: 0")

	frame0 := image.NewRGBA(image.Rect(0, 0, game.Width*scale, game.Height*scale))
	frame1 := image.NewRGBA(image.Rect(0, 0, game.Width*scale, game.Height*scale))
	screenImage := canvas.NewImageFromImage(frame0)
	screenImage.FillMode = canvas.ImageFillContain
	screenImage.SetMinSize(fyne.NewSize(float32(game.Width*scale), float32(game.Height*scale)))

	logViewerPanel, updateLogs := panels.LogViewer(g.Log, window)
	logViewerPanel.Hide()
	varsPanel, updateVars := panels.VarsViewer(g)
	varsPanel.Hide()

	ui := &FyneUI{
		app:            fyneApp,
		window:         window,
		game:           g,
		scale:          scale,
		audioDev:       audioDev,
		screenImage:    screenImage,
		statusLabel:    statusLabel,
		frameImages:    [2]*image.RGBA{frame0, frame1},
		logViewerPanel: logViewerPanel,
		varsPanel:      varsPanel,
		updateLogs:     updateLogs,
		updateVars:     updateVars,
		keyStates:      make(map[fyne.KeyName]bool),
	}

	rightPanels := container.NewVBox(logViewerPanel, varsPanel)
	splitContent := container.NewHSplit(screenImage, rightPanels)
	splitContent.SetOffset(1.0)
	ui.splitContent = splitContent

	mainContent := container.NewBorder(nil, statusLabel, nil, nil, splitContent)
	window.SetContent(mainContent)
	window.Resize(fyne.NewSize(float32(game.Width*scale), float32(game.Height*scale)+40))
	window.CenterOnScreen()

	ui.createMenus()
	ui.setupKeyboardInput()

	return ui, nil
}

// QueueSamples is the audio callback handed to the game: it converts the
// float32 frame to little-endian bytes and queues it on the SDL device.
func (ui *FyneUI) QueueSamples(samples []float32) {
	if ui.audioDev == 0 {
		return
	}
	ui.audioMu.Lock()
	defer ui.audioMu.Unlock()
	need := len(samples) * 4
	if cap(ui.audioBytes) < need {
		ui.audioBytes = make([]byte, need)
	}
	buf := ui.audioBytes[:need]
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(s))
	}
	// Bound the queue so a render stall does not grow latency without end.
	if sdl.GetQueuedAudioSize(ui.audioDev) > uint32(need)*6 {
		return
	}
	_ = sdl.QueueAudio(ui.audioDev, buf)
}

var keyBindings = map[fyne.KeyName]input.Key{
	fyne.KeyLeft:   input.KeyLeft,
	fyne.KeyRight:  input.KeyRight,
	fyne.KeyUp:     input.KeyUp,
	fyne.KeyDown:   input.KeyDown,
	fyne.KeySpace:  input.KeyAction,
	fyne.KeyReturn: input.KeyAction,
	fyne.KeyEscape: input.KeyBack,
	fyne.KeyC:      input.KeyCode,
	fyne.KeyP:      input.KeyPause,
}

func (ui *FyneUI) setupKeyboardInput() {
	if c, ok := ui.window.Canvas().(desktop.Canvas); ok {
		c.SetOnKeyDown(func(key *fyne.KeyEvent) {
			ui.keyMu.Lock()
			already := ui.keyStates[key.Name]
			ui.keyStates[key.Name] = true
			ui.keyMu.Unlock()
			if k, ok := keyBindings[key.Name]; ok && !already {
				ui.game.KeyDown(k)
			}
		})
		c.SetOnKeyUp(func(key *fyne.KeyEvent) {
			ui.keyMu.Lock()
			ui.keyStates[key.Name] = false
			ui.keyMu.Unlock()
			if k, ok := keyBindings[key.Name]; ok {
				ui.game.KeyUp(k)
			}
		})
	}
	// Typed runes feed the password screen.
	ui.window.Canvas().SetOnTypedRune(func(r rune) {
		ui.game.CharPressed(r)
	})
}

func (ui *FyneUI) updateLayout() {
	if ui.showLogViewer || ui.showVars {
		ui.splitContent.SetOffset(0.7)
	} else {
		ui.splitContent.SetOffset(1.0)
	}
}

func (ui *FyneUI) createMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Save Snapshot...", func() {
			data, err := ui.game.SaveSnapshot()
			if err != nil {
				dialog.ShowError(err, ui.window)
				return
			}
			name := fmt.Sprintf("raw_%s.snap", time.Now().Format("20060102_150405"))
			if err := os.WriteFile(name, data, 0644); err != nil {
				dialog.ShowError(err, ui.window)
				return
			}
			ui.statusLabel.SetText("Saved " + name)
		}),
		fyne.NewMenuItem("Load Snapshot...", func() {
			fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
				if err != nil || reader == nil {
					return
				}
				defer reader.Close()
				data, readErr := io.ReadAll(reader)
				if readErr != nil {
					dialog.ShowError(readErr, ui.window)
					return
				}
				if err := ui.game.LoadSnapshot(data); err != nil {
					dialog.ShowError(err, ui.window)
					return
				}
				ui.statusLabel.SetText("Snapshot loaded")
			}, ui.window)
			fileDialog.Show()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", func() {
			ui.window.Close()
		}),
	)

	gameMenu := fyne.NewMenu("Game",
		fyne.NewMenuItem("Pause/Resume", func() {
			ui.paused = !ui.paused
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Log Viewer", func() {
			ui.showLogViewer = !ui.showLogViewer
			if ui.showLogViewer {
				ui.logViewerPanel.Show()
			} else {
				ui.logViewerPanel.Hide()
			}
			ui.updateLayout()
		}),
		fyne.NewMenuItem("Variables", func() {
			ui.showVars = !ui.showVars
			if ui.showVars {
				ui.varsPanel.Show()
			} else {
				ui.varsPanel.Hide()
			}
			ui.updateLayout()
		}),
	)

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, gameMenu, viewMenu))
}

// renderScreen expands the paletted framebuffer through the current palette
// into an integer-scaled RGBA image.
func (ui *FyneUI) renderScreen() image.Image {
	fb, pal, w, h := ui.game.DisplayInfo()

	img := ui.frameImages[ui.frameImageIdx]
	ui.frameImageIdx ^= 1

	pix := img.Pix
	stride := img.Stride
	scale := ui.scale
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			color := pal[fb[y*w+x]&0xF]
			r := uint8(color)
			g := uint8(color >> 8)
			b := uint8(color >> 16)
			baseX := x * scale
			baseY := y * scale
			for sy := 0; sy < scale; sy++ {
				row := (baseY + sy) * stride
				for sx := 0; sx < scale; sx++ {
					off := row + (baseX+sx)*4
					pix[off+0] = r
					pix[off+1] = g
					pix[off+2] = b
					pix[off+3] = 0xFF
				}
			}
		}
	}
	return img
}

// Run enters the UI main loop and blocks until the window closes.
func (ui *FyneUI) Run() error {
	defer ui.Cleanup()

	ui.running = true
	go ui.updateLoop()
	ui.window.ShowAndRun()
	ui.running = false
	ui.game.Quit()
	return nil
}

// updateLoop ticks the interpreter at 50 Hz and refreshes the canvas.
func (ui *FyneUI) updateLoop() {
	ticker := time.NewTicker(time.Second / frameHz)
	defer ticker.Stop()

	frame := 0
	last := time.Now()
	for ui.running {
		<-ticker.C
		now := time.Now()
		delta := now.Sub(last)
		last = now
		if delta > 250*time.Millisecond {
			delta = 250 * time.Millisecond
		}

		if ui.paused {
			continue
		}

		if err := ui.game.Exec(uint32(delta.Milliseconds())); err != nil {
			ui.game.Log.LogUIf(debug.LogLevelError, "Interpreter error: %v", err)
			fyne.Do(func() {
				dialog.ShowError(err, ui.window)
			})
			return
		}
		frame++

		img := ui.renderScreen()
		refreshAuxPanels := frame%8 == 0
		fyne.Do(func() {
			ui.screenImage.Image = img
			ui.screenImage.Refresh()
			if refreshAuxPanels {
				ui.statusLabel.SetText(fmt.Sprintf("part: %d | frame: %d", ui.game.Res.CurrentPart, frame))
				if ui.showLogViewer && ui.updateLogs != nil {
					ui.updateLogs()
				}
				if ui.showVars && ui.updateVars != nil {
					ui.updateVars()
				}
			}
		})
	}
}

// Cleanup releases the audio device.
func (ui *FyneUI) Cleanup() {
	if ui.audioDev != 0 {
		sdl.CloseAudioDevice(ui.audioDev)
	}
	sdl.Quit()
}
