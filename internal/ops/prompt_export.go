package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/store"
)

// PromptExport is the full prompt export document.
type PromptExport struct {
	Version        string           `json:"version"`
	ExportedAt     string           `json:"exportedAt"`
	Advisor        *persona.Advisor `json:"advisor,omitempty"`
	CustomerName   string           `json:"customerName"`
	FlowType       string           `json:"flowType"`
	Segment        string           `json:"segment"`
	SelectedStages []string         `json:"selectedStages"`
	Prompt         string           `json:"prompt"`
}

// ExportPromptInput contains parameters for the ExportPrompt operation.
type ExportPromptInput struct {
	ID   string // required, generated-prompt history entry
	Path string // optional, default: <baseDir>/exports/prompt-<id>.json
}

// ExportPromptOutput contains the result of the ExportPrompt operation.
type ExportPromptOutput struct {
	Path string `json:"path"`
}

// ExportPrompt writes one generated-prompt history entry to a JSON file,
// together with the advisor profile current at export time.
func ExportPrompt(st *store.Store, baseDir string, input ExportPromptInput) (*ExportPromptOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	entry := FindPrompt(st, input.ID)
	if entry == nil {
		return nil, errors.NewNotFound(input.ID)
	}

	var advisor *persona.Advisor
	var stored persona.Advisor
	if st.Get(store.KeyAdvisorProfile, &stored) {
		advisor = &stored
	}

	path := input.Path
	if path == "" {
		name := fmt.Sprintf("prompt-%s-%s.json", entry.ID, time.Now().UTC().Format("20060102-150405"))
		path = filepath.Join(baseDir, "exports", name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	doc := PromptExport{
		Version:        ExportVersion,
		ExportedAt:     timestamp(),
		Advisor:        advisor,
		CustomerName:   entry.CustomerName,
		FlowType:       entry.FlowType,
		Segment:        entry.Segment,
		SelectedStages: entry.SelectedStages,
		Prompt:         entry.Prompt,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export file: %w", err))
	}

	return &ExportPromptOutput{Path: path}, nil
}
