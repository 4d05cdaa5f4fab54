package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"crystavoid/config"
	"crystavoid/core"
	"crystavoid/rendering"
	"crystavoid/rendering/opengl"
)

func init() {
	// GLFW event handling must run on the main thread
	runtime.LockOSThread()
}

func main() {
	var (
		settingsPath = flag.String("settings", "settings.json", "Settings file")
		family       = flag.String("family", "", "Initial lattice (FCC or BCC)")
		grid         = flag.Int("grid", 0, "Initial grid size")
		mode         = flag.String("mode", "", "Void display mode (dot, wireframe, solid)")
		width        = flag.Int("width", 0, "Window width")
		height       = flag.Int("height", 0, "Window height")
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
	if *mode != "" {
		settings.Scene.DisplayMode = *mode
	}
	if *width > 0 {
		settings.Viewer.Width = *width
	}
	if *height > 0 {
		settings.Viewer.Height = *height
	}

	initial, err := settings.ViewState()
	if err != nil {
		log.Fatalf("Invalid initial view: %v", err)
	}
	controller, err := core.NewController(initial, settings.Scene.MaxGridSize)
	if err != nil {
		log.Fatalf("Failed to create controller: %v", err)
	}

	renderer, err := opengl.NewLatticeRenderer(settings.Viewer.Width, settings.Viewer.Height, controller, settings.Scene.MaxGridSize)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Terminate()

	fmt.Println("=== Crystal Void Viewer ===")
	fmt.Printf("%s, grid %d, voids as %s\n", initial.Family, initial.GridSize, initial.DisplayMode)
	fmt.Println(rendering.KeyHelp)

	renderer.Run()
}
