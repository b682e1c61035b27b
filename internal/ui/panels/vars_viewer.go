package panels

import (
	"fmt"
	"strings"

	"raw-engine/internal/game"
	"raw-engine/internal/vm"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// reservedVars labels the variables with fixed meaning for the bytecode.
var reservedVars = []struct {
	idx  int
	name string
}{
	{vm.VarRandomSeed, "RANDOM_SEED"},
	{vm.VarScreenNum, "SCREEN_NUM"},
	{vm.VarLastKeyChar, "LAST_KEYCHAR"},
	{vm.VarHeroPosUpDown, "HERO_POS_UP_DOWN"},
	{vm.VarMusicSync, "MUSIC_SYNC"},
	{vm.VarScrollY, "SCROLL_Y"},
	{vm.VarHeroAction, "HERO_ACTION"},
	{vm.VarHeroPosJumpDown, "HERO_POS_JUMP_DOWN"},
	{vm.VarHeroPosLeftRight, "HERO_POS_LEFT_RIGHT"},
	{vm.VarHeroPosMask, "HERO_POS_MASK"},
	{vm.VarHeroActionPosMask, "HERO_ACTION_POS_MASK"},
	{vm.VarPauseSlices, "PAUSE_SLICES"},
}

// VarsViewer creates a panel showing the reserved VM variables and the live
// task slots. Returns the container and its periodic update function.
func VarsViewer(g *game.Game) (*fyne.Container, func()) {
	varsText := widget.NewLabel("")
	varsText.TextStyle = fyne.TextStyle{Monospace: true}
	tasksText := widget.NewLabel("")
	tasksText.TextStyle = fyne.TextStyle{Monospace: true}

	update := func() {
		var sb strings.Builder
		fmt.Fprintf(&sb, "part %d\n", g.Res.CurrentPart)
		for _, rv := range reservedVars {
			fmt.Fprintf(&sb, "VAR(0x%02X) %-20s %6d\n", rv.idx, rv.name, g.VM.Vars[rv.idx])
		}
		varsText.SetText(sb.String())

		sb.Reset()
		for i := range g.VM.Tasks {
			t := &g.VM.Tasks[i]
			if t.PC == 0xFFFF {
				continue
			}
			state := "run"
			if t.State != 0 {
				state = "pause"
			}
			fmt.Fprintf(&sb, "task %02d pc=0x%04X %s\n", i, t.PC, state)
		}
		tasksText.SetText(sb.String())
	}

	varsScroll := container.NewScroll(varsText)
	varsScroll.SetMinSize(fyne.NewSize(320, 200))
	tasksScroll := container.NewScroll(tasksText)
	tasksScroll.SetMinSize(fyne.NewSize(320, 150))

	return container.NewVBox(
		widget.NewLabelWithStyle("Variables", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		varsScroll,
		widget.NewLabelWithStyle("Tasks", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		tasksScroll,
	), update
}
