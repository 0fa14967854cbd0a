package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultWhenMissing(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Model != DefaultConfig().Model {
		t.Fatalf("Model = %q, want %q", cfg.Model, DefaultConfig().Model)
	}
	if cfg.PromptHistoryLimit != 20 {
		t.Fatalf("PromptHistoryLimit = %d, want 20", cfg.PromptHistoryLimit)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"model": "gemini-2.5-pro", "prompt_history_limit": 5}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Fatalf("Model = %q, want %q", cfg.Model, "gemini-2.5-pro")
	}
	if cfg.PromptHistoryLimit != 5 {
		t.Fatalf("PromptHistoryLimit = %d, want 5", cfg.PromptHistoryLimit)
	}
	// Unset fields fall back to defaults
	if cfg.MaxOutputTokens != 1024 {
		t.Fatalf("MaxOutputTokens = %d, want 1024", cfg.MaxOutputTokens)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{not json}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestLoad_DisabledTools(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"disabled_tools": ["persona_generate", "prompt_list"]}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.DisabledTools) != 2 {
		t.Fatalf("DisabledTools length = %d, want 2", len(cfg.DisabledTools))
	}
	if cfg.DisabledTools[0] != "persona_generate" {
		t.Errorf("DisabledTools[0] = %q, want %q", cfg.DisabledTools[0], "persona_generate")
	}
}

func TestMerge_OverlayWins(t *testing.T) {
	base := DefaultConfig()
	overlay := &Config{Temperature: 0.2, DisabledTools: []string{"review"}}

	merged := Merge(base, overlay)

	if merged.Temperature != 0.2 {
		t.Errorf("Temperature = %v, want 0.2", merged.Temperature)
	}
	if merged.Model != base.Model {
		t.Errorf("Model = %q, want %q", merged.Model, base.Model)
	}
	if len(merged.DisabledTools) != 1 || merged.DisabledTools[0] != "review" {
		t.Errorf("DisabledTools = %v, want [review]", merged.DisabledTools)
	}
}

func TestMerge_DeduplicatesTools(t *testing.T) {
	base := &Config{DisabledTools: []string{"review", "prompt_list"}}
	overlay := &Config{DisabledTools: []string{" review ", "advisor_set"}}

	merged := Merge(base, overlay)

	if len(merged.DisabledTools) != 3 {
		t.Fatalf("DisabledTools length = %d, want 3: %v", len(merged.DisabledTools), merged.DisabledTools)
	}
}
