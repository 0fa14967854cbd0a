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

// ProfileExport is the advisor-profile export document.
type ProfileExport struct {
	Version        string          `json:"version"`
	ExportedAt     string          `json:"exportedAt"`
	AdvisorProfile persona.Advisor `json:"advisorProfile"`
}

// ExportProfileInput contains parameters for the ExportProfile operation.
type ExportProfileInput struct {
	Path string // optional, default: <baseDir>/exports/advisor-profile-<timestamp>.json
}

// ExportProfileOutput contains the result of the ExportProfile operation.
type ExportProfileOutput struct {
	Path string `json:"path"`
}

// ExportProfile writes the stored advisor profile to a JSON file.
func ExportProfile(st *store.Store, baseDir string, input ExportProfileInput) (*ExportProfileOutput, error) {
	var profile persona.Advisor
	if !st.Get(store.KeyAdvisorProfile, &profile) {
		return nil, errors.NewNotFound("advisor profile")
	}

	path := input.Path
	if path == "" {
		name := fmt.Sprintf("advisor-profile-%s.json", time.Now().UTC().Format("20060102-150405"))
		path = filepath.Join(baseDir, "exports", name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	doc := ProfileExport{
		Version:        ExportVersion,
		ExportedAt:     timestamp(),
		AdvisorProfile: profile,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export file: %w", err))
	}

	return &ExportProfileOutput{Path: path}, nil
}
