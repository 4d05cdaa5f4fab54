package config

import (
	"encoding/json"
	"fmt"
	"os"

	"crystavoid/core"
)

type Settings struct {
	Scene  SceneSettings  `json:"scene"`
	Server ServerSettings `json:"server"`
	Viewer ViewerSettings `json:"viewer"`
	Chat   ChatSettings   `json:"chat"`
}

type SceneSettings struct {
	DefaultFamily   string `json:"defaultFamily"`
	DefaultGridSize int    `json:"defaultGridSize"`
	MaxGridSize     int    `json:"maxGridSize"`
	DisplayMode     string `json:"displayMode"`
	Comment         string `json:"comment"`
}

type ServerSettings struct {
	Port    int    `json:"port"`
	WebRoot string `json:"webRoot"`
}

type ViewerSettings struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type ChatSettings struct {
	Model        string  `json:"model"`
	APIKeyEnv    string  `json:"apiKeyEnv"`
	Temperature  float32 `json:"temperature"`
	TranscriptDB string  `json:"transcriptDB"`
}

// Defaults returns the compiled-in settings used when no file is present.
func Defaults() Settings {
	return Settings{
		Scene: SceneSettings{
			DefaultFamily:   "FCC",
			DefaultGridSize: 1,
			MaxGridSize:     core.DefaultMaxGridSize,
			DisplayMode:     "dot",
		},
		Server: ServerSettings{
			Port:    8080,
			WebRoot: "web",
		},
		Viewer: ViewerSettings{
			Width:  1280,
			Height: 800,
		},
		Chat: ChatSettings{
			Model:        "gemini-3-pro-preview",
			APIKeyEnv:    "API_KEY",
			Temperature:  0.7,
			TranscriptDB: "chat.db",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Settings, error) {
	settings := Defaults()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No %s found, using defaults\n", path)
			return &settings, settings.Validate()
		}
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&settings); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	fmt.Printf("Loaded settings: %s grid %d (max %d), %s voids\n",
		settings.Scene.DefaultFamily, settings.Scene.DefaultGridSize,
		settings.Scene.MaxGridSize, settings.Scene.DisplayMode)

	return &settings, nil
}

// Validate checks the scene section against the geometry core's rules.
func (s *Settings) Validate() error {
	_, err := s.ViewState()
	if err != nil {
		return err
	}
	if s.Server.Port < 0 || s.Server.Port > 65535 {
		return fmt.Errorf("port %d out of range", s.Server.Port)
	}
	return nil
}

// ViewState converts the scene section into the controller's initial state.
func (s *Settings) ViewState() (core.ViewState, error) {
	state := core.DefaultViewState()

	family, err := core.ParseFamily(s.Scene.DefaultFamily)
	if err != nil {
		return state, err
	}
	mode, err := core.ParseDisplayMode(s.Scene.DisplayMode)
	if err != nil {
		return state, err
	}
	state.Family = family
	state.DisplayMode = mode
	state.GridSize = s.Scene.DefaultGridSize

	if err := state.Validate(s.Scene.MaxGridSize); err != nil {
		return state, err
	}
	return state, nil
}

// APIKey reads the tutor key from the configured variable, then GEMINI_API_KEY.
func (c ChatSettings) APIKey() string {
	if c.APIKeyEnv != "" {
		if key := os.Getenv(c.APIKeyEnv); key != "" {
			return key
		}
	}
	return os.Getenv("GEMINI_API_KEY")
}
