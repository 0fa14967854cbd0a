// Package ops implements the application operations shared by the CLI,
// web, and MCP surfaces.
package ops

import (
	"context"
	"crypto/rand"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
)

// ExportVersion tags export documents so imports can reject
// incompatible files.
const ExportVersion = "1.0"

// Generator is the one-shot AI boundary used by persona generation and
// transcript review. The gemini client satisfies it.
type Generator interface {
	GenerateOnce(ctx context.Context, text string) (string, error)
}

// GeneratedPrompt is one entry in the generated-prompt history.
type GeneratedPrompt struct {
	ID             string   `json:"id"`
	CustomerName   string   `json:"customerName"`
	FlowType       string   `json:"flowType"`
	Segment        string   `json:"segment"`
	SelectedStages []string `json:"selectedStages"`
	Prompt         string   `json:"prompt"`
	CreatedAt      string   `json:"createdAt"`
}

func generateULID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	if err != nil {
		// Extremely unlikely; fall back to timestamp-based ID
		return "fallback-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return id.String()
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
