package chat

import (
	"context"
	"log"
	"strings"

	"crystavoid/core"
)

// Session ties a tutor to one conversation and records both sides of it.
// The transcript is optional.
type Session struct {
	ID         string
	tutor      Tutor
	transcript *Transcript
}

func NewSession(tutor Tutor, transcript *Transcript) *Session {
	return &Session{
		ID:         NewSessionID(),
		tutor:      tutor,
		transcript: transcript,
	}
}

// Ask streams the tutor's answer to onChunk and stores the question and the
// assembled answer. Storage failures are logged and do not interrupt the answer.
func (s *Session) Ask(ctx context.Context, question string, family core.CrystalFamily, onChunk func(string)) error {
	if err := validateQuestion(question, family); err != nil {
		return err
	}
	s.record(RoleUser, family, question)

	var answer strings.Builder
	err := s.tutor.StreamAnswer(ctx, question, family, func(chunk string) {
		answer.WriteString(chunk)
		onChunk(chunk)
	})
	if err != nil {
		return err
	}

	s.record(RoleModel, family, answer.String())
	return nil
}

func (s *Session) record(role string, family core.CrystalFamily, text string) {
	if s.transcript == nil {
		return
	}
	if _, err := s.transcript.Append(s.ID, role, family.String(), text); err != nil {
		log.Printf("chat transcript: %v", err)
	}
}
