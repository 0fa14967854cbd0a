package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// Model is the Gemini model used for persona generation, roleplay
	// chat, and transcript review.
	Model string `json:"model,omitempty"`

	// Temperature, TopP, TopK, and MaxOutputTokens are passed through to
	// the Gemini generation config for roleplay chat turns.
	Temperature     float32 `json:"temperature,omitempty"`
	TopP            float32 `json:"top_p,omitempty"`
	TopK            float32 `json:"top_k,omitempty"`
	MaxOutputTokens int32   `json:"max_output_tokens,omitempty"`

	// PromptHistoryLimit caps the generated-prompt history. The oldest
	// entry is evicted when the cap is exceeded. Sessions are not capped.
	PromptHistoryLimit int `json:"prompt_history_limit,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// If set to 1, all database access is serialized (reduces "database is
	// locked" errors). 0 means use sql.DB default.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:              "gemini-2.5-flash",
		Temperature:        0.9,
		TopP:               0.95,
		TopK:               40,
		MaxOutputTokens:    1024,
		PromptHistoryLimit: 20,
	}
}

// BaseDir returns the rolecoach data directory (~/.rolecoach).
func BaseDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".rolecoach"), nil
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.rolecoach.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads config from a file without applying defaults.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Model = overlay.Model
	if result.Model == "" {
		result.Model = base.Model
	}

	result.Temperature = overlay.Temperature
	if result.Temperature == 0 {
		result.Temperature = base.Temperature
	}

	result.TopP = overlay.TopP
	if result.TopP == 0 {
		result.TopP = base.TopP
	}

	result.TopK = overlay.TopK
	if result.TopK == 0 {
		result.TopK = base.TopK
	}

	result.MaxOutputTokens = overlay.MaxOutputTokens
	if result.MaxOutputTokens == 0 {
		result.MaxOutputTokens = base.MaxOutputTokens
	}

	result.PromptHistoryLimit = overlay.PromptHistoryLimit
	if result.PromptHistoryLimit == 0 {
		result.PromptHistoryLimit = base.PromptHistoryLimit
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
