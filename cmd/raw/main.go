package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"raw-engine/internal/debug"
	"raw-engine/internal/game"
	"raw-engine/internal/resource"
	"raw-engine/internal/ui"
)

// loadGameData scans a directory for the data files of a 1991 release:
// memlist.bin plus bank01..bank0d (DOS), or the banks alone (Amiga/Atari),
// and an optional demo3.joy. File name matching is case-insensitive.
func loadGameData(dir string) (game.GameData, error) {
	var data game.GameData

	entries, err := os.ReadDir(dir)
	if err != nil {
		return data, fmt.Errorf("failed to read data directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		path := filepath.Join(dir, e.Name())
		switch {
		case name == "memlist.bin":
			if data.MemList, err = os.ReadFile(path); err != nil {
				return data, err
			}
		case name == "demo3.joy":
			if data.Demo3Joy, err = os.ReadFile(path); err != nil {
				return data, err
			}
		case strings.HasPrefix(name, "bank0") && len(name) == 6:
			var num int
			if _, err := fmt.Sscanf(name, "bank%x", &num); err != nil || num < 1 || num > 0xd {
				continue
			}
			if data.Banks[num-1], err = os.ReadFile(path); err != nil {
				return data, err
			}
		}
	}
	if len(data.MemList) == 0 && len(data.Banks[0]) == 0 {
		return data, fmt.Errorf("no data files found in %s", dir)
	}
	return data, nil
}

func main() {
	dataDir := flag.String("data", ".", "Path to the game data files")
	part := flag.Int("part", 16001, "Starting part: position 0-35 or raw part id 16000-16009")
	langFlag := flag.String("lang", "us", "Language: fr or us")
	ega := flag.Bool("ega", false, "Use the EGA palette (DOS data only)")
	protection := flag.Bool("protection", false, "Enable the copy protection screen")
	scale := flag.Int("scale", 3, "Display scale (1-6)")
	enableLogging := flag.Bool("log", false, "Enable logging (disabled by default)")
	flag.Parse()

	if *scale < 1 || *scale > 6 {
		fmt.Fprintf(os.Stderr, "Error: scale must be between 1 and 6\n")
		os.Exit(1)
	}

	lang := resource.LangUS
	if strings.EqualFold(*langFlag, "fr") {
		lang = resource.LangFR
	}

	data, err := loadGameData(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := debug.NewLogger(10000)
	if *enableLogging {
		logger.EnableAll()
		logger.SetMinLevel(debug.LogLevelDebug)
	}

	g := game.New(game.Desc{
		PartNum:          *part,
		UseEGA:           *ega,
		Lang:             lang,
		EnableProtection: *protection,
		Logger:           logger,
	})

	if err := g.Start(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	uiInstance, err := ui.NewFyneUI(g, *scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating UI: %v\n", err)
		os.Exit(1)
	}
	g.Audio.SetCallback(uiInstance.QueueSamples)

	fmt.Println(g.Title())
	fmt.Println("Controls:")
	fmt.Println("  Arrow Keys - Move")
	fmt.Println("  Space / Enter - Action")
	fmt.Println("  C - Enter code screen")
	fmt.Println("  P - Pause")
	fmt.Println("  ESC - Back")

	if err := uiInstance.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "UI error: %v\n", err)
		os.Exit(1)
	}
}
