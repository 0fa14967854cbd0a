package ops

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/persona"
)

func TestExportProfile(t *testing.T) {
	st, baseDir := testStore(t)
	AdvisorSet(st, AdvisorSetInput{Profile: persona.Advisor{Name: "Lan", ExperienceMonths: 30}})

	out, err := ExportProfile(st, baseDir, ExportProfileInput{})
	if err != nil {
		t.Fatalf("ExportProfile failed: %v", err)
	}

	data, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	var doc ProfileExport
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc.Version != ExportVersion {
		t.Errorf("Version = %q, want %q", doc.Version, ExportVersion)
	}
	if doc.ExportedAt == "" {
		t.Error("ExportedAt should be set")
	}
	if doc.AdvisorProfile.Name != "Lan" {
		t.Errorf("AdvisorProfile.Name = %q, want Lan", doc.AdvisorProfile.Name)
	}
}

func TestExportProfile_NoProfile(t *testing.T) {
	st, baseDir := testStore(t)

	_, err := ExportProfile(st, baseDir, ExportProfileInput{})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestImportProfile_RoundTrip(t *testing.T) {
	st, baseDir := testStore(t)
	AdvisorSet(st, AdvisorSetInput{Profile: persona.Advisor{Name: "Lan", Strengths: "Lắng nghe tốt"}})

	exported, err := ExportProfile(st, baseDir, ExportProfileInput{})
	if err != nil {
		t.Fatalf("ExportProfile failed: %v", err)
	}

	// Import into a fresh store
	st2, _ := testStore(t)
	out, err := ImportProfile(st2, ImportProfileInput{Path: exported.Path})
	if err != nil {
		t.Fatalf("ImportProfile failed: %v", err)
	}
	if out.Profile.Name != "Lan" || out.Profile.Strengths != "Lắng nghe tốt" {
		t.Errorf("imported profile = %+v", out.Profile)
	}

	got, _ := AdvisorGet(st2)
	if got.Profile == nil || got.Profile.Name != "Lan" {
		t.Error("imported profile should be stored")
	}
}

func TestImportProfile_MissingAdvisorProfile(t *testing.T) {
	st, baseDir := testStore(t)
	path := filepath.Join(baseDir, "bad.json")
	os.WriteFile(path, []byte(`{"version":"1.0"}`), 0600)

	_, err := ImportProfile(st, ImportProfileInput{Path: path})
	if !errors.Is(err, errors.ErrInvalidImport) {
		t.Fatalf("expected INVALID_IMPORT, got %v", err)
	}
}

func TestImportProfile_InvalidJSON(t *testing.T) {
	st, baseDir := testStore(t)
	path := filepath.Join(baseDir, "broken.json")
	os.WriteFile(path, []byte("not json at all"), 0600)

	_, err := ImportProfile(st, ImportProfileInput{Path: path})
	if !errors.Is(err, errors.ErrInvalidImport) {
		t.Fatalf("expected INVALID_IMPORT, got %v", err)
	}
}
