package chat

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"crystavoid/core"
)

// GeminiTutor streams answers from the Gemini API. Each question opens a
// fresh chat so the system instruction always names the current family.
type GeminiTutor struct {
	client      *genai.Client
	model       string
	temperature float32
}

// GeminiOptions configures NewGeminiTutor. BaseURL is empty outside tests.
type GeminiOptions struct {
	APIKey      string
	Model       string
	Temperature float32
	BaseURL     string
}

func NewGeminiTutor(ctx context.Context, opts GeminiOptions) (*GeminiTutor, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("failed to create tutor: no API key")
	}
	cc := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %v", err)
	}
	return &GeminiTutor{
		client:      client,
		model:       opts.Model,
		temperature: opts.Temperature,
	}, nil
}

func (g *GeminiTutor) StreamAnswer(ctx context.Context, question string, family core.CrystalFamily, onChunk func(string)) error {
	if err := validateQuestion(question, family); err != nil {
		return err
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction(family), genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
	}
	session, err := g.client.Chats.Create(ctx, g.model, config, nil)
	if err != nil {
		log.Printf("Gemini API error: %v", err)
		onChunk(ErrorChunk)
		return nil
	}

	for resp, err := range session.SendMessageStream(ctx, genai.Part{Text: question}) {
		if err != nil {
			log.Printf("Gemini API error: %v", err)
			onChunk(ErrorChunk)
			return nil
		}
		if text := resp.Text(); text != "" {
			onChunk(text)
		}
	}
	return nil
}
