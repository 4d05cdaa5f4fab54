package main

import (
	"flag"
	"fmt"
	"log"

	"crystavoid/config"
	"crystavoid/core"
	"crystavoid/rendering"
	"crystavoid/rendering/rlview"
)

func main() {
	var (
		settingsPath = flag.String("settings", "settings.json", "Settings file")
		family       = flag.String("family", "", "Initial lattice (FCC or BCC)")
		grid         = flag.Int("grid", 0, "Initial grid size")
	)
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *family != "" {
		settings.Scene.DefaultFamily = *family
	}
	if *grid > 0 {
		settings.Scene.DefaultGridSize = *grid
	}

	initial, err := settings.ViewState()
	if err != nil {
		log.Fatalf("Invalid initial view: %v", err)
	}
	controller, err := core.NewController(initial, settings.Scene.MaxGridSize)
	if err != nil {
		log.Fatalf("Failed to create controller: %v", err)
	}

	fmt.Println(rendering.KeyHelp)

	viewer := rlview.NewViewer(settings.Viewer.Width, settings.Viewer.Height, controller, settings.Scene.MaxGridSize)
	defer viewer.Close()
	viewer.Run()
}
