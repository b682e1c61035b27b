package panels

import (
	"strings"

	"raw-engine/internal/debug"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LogViewer creates a panel showing the interpreter log ring. Returns the
// container and an update function to be called periodically while visible.
func LogViewer(logger *debug.Logger, window fyne.Window) (*fyne.Container, func()) {
	logText := widget.NewMultiLineEntry()
	logText.Wrapping = fyne.TextWrapOff
	logText.Disable() // read-only, still selectable for copy
	logScroll := container.NewScroll(logText)
	logScroll.SetMinSize(fyne.NewSize(500, 300))

	components := []struct {
		name debug.Component
		chk  *widget.Check
	}{
		{debug.ComponentVM, widget.NewCheck("VM", nil)},
		{debug.ComponentVideo, widget.NewCheck("Video", nil)},
		{debug.ComponentAudio, widget.NewCheck("Audio", nil)},
		{debug.ComponentResource, widget.NewCheck("Resource", nil)},
		{debug.ComponentBank, widget.NewCheck("Bank", nil)},
		{debug.ComponentInput, widget.NewCheck("Input", nil)},
		{debug.ComponentSystem, widget.NewCheck("System", nil)},
	}
	checkRow := container.NewHBox()
	for _, c := range components {
		c.chk.SetChecked(true)
		checkRow.Add(c.chk)
	}

	copyBtn := widget.NewButton("Copy All", func() {
		if logText.Text != "" && window != nil {
			window.Clipboard().SetContent(logText.Text)
		}
	})
	clearBtn := widget.NewButton("Clear", func() {
		logger.Clear()
		logText.SetText("")
	})

	update := func() {
		entries := logger.GetRecentEntries(500)
		var sb strings.Builder
		for i := range entries {
			e := &entries[i]
			show := false
			for _, c := range components {
				if e.Component == c.name && c.chk.Checked {
					show = true
					break
				}
			}
			if !show {
				continue
			}
			sb.WriteString(e.Format())
			sb.WriteByte('\n')
		}
		if sb.String() != logText.Text {
			logText.SetText(sb.String())
		}
	}

	header := container.NewVBox(
		widget.NewLabelWithStyle("Log Viewer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		checkRow,
		container.NewHBox(copyBtn, clearBtn),
	)
	return container.NewBorder(header, nil, nil, nil, logScroll), update
}
