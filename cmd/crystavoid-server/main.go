package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"crystavoid/chat"
	"crystavoid/config"
	"crystavoid/server"
)

func main() {
	var (
		settingsPath = flag.String("settings", "settings.json", "Settings file")
		port         = flag.Int("port", 0, "HTTP port")
		webRoot      = flag.String("web", "", "Directory holding index.html and static/")
		offline      = flag.Bool("offline", false, "Answer chat from the built-in fact sheet")
		noHistory    = flag.Bool("no-history", false, "Do not record chat transcripts")
	)
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *port > 0 {
		settings.Server.Port = *port
	}
	if *webRoot != "" {
		settings.Server.WebRoot = *webRoot
	}

	initial, err := settings.ViewState()
	if err != nil {
		log.Fatalf("Invalid initial view: %v", err)
	}

	tutor := newTutor(settings.Chat, *offline)

	var transcript *chat.Transcript
	if !*noHistory && settings.Chat.TranscriptDB != "" {
		transcript, err = chat.NewTranscript(settings.Chat.TranscriptDB)
		if err != nil {
			log.Fatalf("Failed to open transcript: %v", err)
		}
		defer transcript.Close()
	}

	srv, err := server.New(server.Options{
		Initial:     initial,
		MaxGridSize: settings.Scene.MaxGridSize,
		WebRoot:     settings.Server.WebRoot,
		Tutor:       tutor,
		Transcript:  transcript,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Fatal(srv.ListenAndServe(fmt.Sprintf(":%d", settings.Server.Port)))
}

// newTutor prefers the hosted model and falls back to the fact sheet.
func newTutor(cfg config.ChatSettings, offline bool) chat.Tutor {
	if offline {
		fmt.Println("Chat: offline fact sheet")
		return chat.OfflineTutor{}
	}
	key := cfg.APIKey()
	if key == "" {
		fmt.Printf("Chat: no key in %s or GEMINI_API_KEY, using offline fact sheet\n", cfg.APIKeyEnv)
		return chat.OfflineTutor{}
	}
	tutor, err := chat.NewGeminiTutor(context.Background(), chat.GeminiOptions{
		APIKey:      key,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		log.Printf("Chat: %v, using offline fact sheet", err)
		return chat.OfflineTutor{}
	}
	fmt.Printf("Chat: %s\n", cfg.Model)
	return tutor
}
