package chat

import (
	"context"
	"fmt"
	"strings"

	"crystavoid/core"
)

// ErrorChunk is streamed in place of an answer when the model cannot be reached.
const ErrorChunk = "\n\n(Error connecting to AI Tutor. Please try again later.)"

// Greeting is the first message a new chat session shows.
const Greeting = "你好！我是你的晶体学助教。关于 FCC 或 BCC 结构有什么问题吗？"

// Tutor answers free-text questions about the structure being viewed.
// onChunk receives the answer incrementally and is called from the
// caller's goroutine. A failed request still yields one ErrorChunk and a
// nil error; the returned error is reserved for rejected input.
type Tutor interface {
	StreamAnswer(ctx context.Context, question string, family core.CrystalFamily, onChunk func(string)) error
}

func validateQuestion(question string, family core.CrystalFamily) error {
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("empty question")
	}
	if !family.Valid() {
		return fmt.Errorf("%w: %v", core.ErrUnknownFamily, family)
	}
	return nil
}

// SystemInstruction describes the viewer context to the model.
func SystemInstruction(family core.CrystalFamily) string {
	var b strings.Builder
	b.WriteString("You are a helpful and knowledgeable materials science tutor specializing in crystallography.\n")
	fmt.Fprintf(&b, "The user is currently looking at a 3D visualization of a %s (Face-Centered Cubic or Body-Centered Cubic) crystal structure.\n\n", family)
	b.WriteString("Context:\n")
	switch family {
	case core.FCC:
		b.WriteString("- Atoms sit at the corners and face centers, 74% packing efficiency, 4 octahedral voids, 8 tetrahedral voids per cell.\n")
	case core.BCC:
		b.WriteString("- Atoms sit at the corners and the body center, 68% packing efficiency, the octahedral voids are distorted.\n")
	}
	if cell, err := core.CellData(family); err == nil {
		fmt.Fprintf(&b, "- Coordination number %d.\n", cell.CoordinationNumber)
	}
	b.WriteString("\nAnswer the user's question concisely and accurately in Chinese (unless they ask in English). Use Markdown for formatting.")
	return b.String()
}
