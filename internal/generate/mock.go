package generate

import (
	"context"
	"strings"
)

// Mock is a deterministic offline generator for local runs and tests.
// It echoes the first line of the prompt back in a canned response.
type Mock struct{}

func (Mock) Generate(_ context.Context, prompt string) (string, error) {
	head, _, _ := strings.Cut(strings.TrimSpace(prompt), "\n")
	var sb strings.Builder
	sb.WriteString("FADE IN:\n\n")
	sb.WriteString("Sample material for: ")
	sb.WriteString(strings.TrimSpace(head))
	sb.WriteString("\n\nFADE OUT.")
	return sb.String(), nil
}
