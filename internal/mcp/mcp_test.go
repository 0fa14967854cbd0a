package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nmtri/rolecoach/internal/config"
	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/ops"
	"github.com/nmtri/rolecoach/internal/store"
)

// testSetup creates a temporary store and config for testing.
func testSetup(t *testing.T) (*store.Store, *config.Config) {
	t.Helper()
	db, err := store.Init(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return store.New(db), config.DefaultConfig()
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// resultText extracts the text payload from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return tc.Text
}

type fakeGenerator struct {
	reply string
	err   error
}

func (g *fakeGenerator) GenerateOnce(_ context.Context, _ string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func TestHandleAdvisorSetGet(t *testing.T) {
	st, cfg := testSetup(t)
	h := NewHandlers(st, cfg)
	ctx := context.Background()

	result, err := h.HandleAdvisorSet(ctx, makeRequest(map[string]any{
		"name":              "Lan",
		"experience_months": 18,
	}))
	if err != nil {
		t.Fatalf("HandleAdvisorSet: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	result, err = h.HandleAdvisorGet(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("HandleAdvisorGet: %v", err)
	}
	var out ops.AdvisorGetOutput
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if out.Profile == nil || out.Profile.Name != "Lan" {
		t.Errorf("unexpected profile: %+v", out.Profile)
	}
}

func TestHandleAdvisorSet_MissingName(t *testing.T) {
	st, cfg := testSetup(t)
	h := NewHandlers(st, cfg)

	result, err := h.HandleAdvisorSet(context.Background(), makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("HandleAdvisorSet: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if !strings.Contains(resultText(t, result), "INVALID_REQUEST") {
		t.Errorf("unexpected error payload: %s", resultText(t, result))
	}
}

func TestHandlePromptGenerateAndList(t *testing.T) {
	st, cfg := testSetup(t)
	h := NewHandlers(st, cfg)
	ctx := context.Background()

	result, err := h.HandlePromptGenerate(ctx, makeRequest(map[string]any{
		"customer":  map[string]any{"name": "Minh", "age": "35"},
		"flow_type": "new_customer",
		"segment":   "mass_market",
	}))
	if err != nil {
		t.Fatalf("HandlePromptGenerate: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}
	var genOut ops.GeneratePromptOutput
	if err := json.Unmarshal([]byte(resultText(t, result)), &genOut); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if !strings.Contains(genOut.Entry.Prompt, "Minh") {
		t.Error("prompt should carry the customer name")
	}

	result, err = h.HandlePromptList(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("HandlePromptList: %v", err)
	}
	var listOut ops.ListPromptsOutput
	if err := json.Unmarshal([]byte(resultText(t, result)), &listOut); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if listOut.Total != 1 {
		t.Errorf("Total = %d, want 1", listOut.Total)
	}
}

func TestHandleFlowStages(t *testing.T) {
	st, cfg := testSetup(t)
	h := NewHandlers(st, cfg)

	result, err := h.HandleFlowStages(context.Background(), makeRequest(map[string]any{
		"flow_type": "ecm",
	}))
	if err != nil {
		t.Fatalf("HandleFlowStages: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "re_engagement") {
		t.Errorf("expected ECM stages, got %s", text)
	}
}

func TestHandleFlowStages_DefaultFlow(t *testing.T) {
	st, cfg := testSetup(t)
	h := NewHandlers(st, cfg)

	result, err := h.HandleFlowStages(context.Background(), makeRequest(nil))
	if err != nil {
		t.Fatalf("HandleFlowStages: %v", err)
	}
	if !strings.Contains(resultText(t, result), "opening") {
		t.Error("expected new-customer stages by default")
	}
}

func TestHandlePersonaGenerate(t *testing.T) {
	st, cfg := testSetup(t)
	h := NewHandlers(st, cfg)
	h.newGenerator = func(context.Context) (ops.Generator, error) {
		return &fakeGenerator{reply: `{"personalityType":"emotional","basicInfo":{"name":"Chị Hoa"}}`}, nil
	}

	result, err := h.HandlePersonaGenerate(context.Background(), makeRequest(map[string]any{
		"description": "Giáo viên 30 tuổi, mới sinh con",
	}))
	if err != nil {
		t.Fatalf("HandlePersonaGenerate: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}
	var out ops.GeneratePersonaOutput
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if out.Customer.DisplayName() != "Chị Hoa" {
		t.Errorf("DisplayName = %q", out.Customer.DisplayName())
	}
}

func TestHandlePersonaGenerate_NoAPIKey(t *testing.T) {
	st, cfg := testSetup(t)
	h := NewHandlers(st, cfg)

	result, err := h.HandlePersonaGenerate(context.Background(), makeRequest(map[string]any{
		"description": "ai đó",
	}))
	if err != nil {
		t.Fatalf("HandlePersonaGenerate: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result without an API key")
	}
	if !strings.Contains(resultText(t, result), string(errors.ErrAPIKeyMissing)) {
		t.Errorf("unexpected error payload: %s", resultText(t, result))
	}
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{"prompt_generate", "bogus_tool"})
	if len(unknown) != 1 || unknown[0] != "bogus_tool" {
		t.Errorf("unknown = %v, want [bogus_tool]", unknown)
	}
}

func TestNewServer_DisabledTools(t *testing.T) {
	st, cfg := testSetup(t)
	cfg.DisabledTools = []string{"persona_generate"}

	s := NewServer(st, cfg, "test")
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestAllToolNames(t *testing.T) {
	names := AllToolNames()
	if len(names) != len(toolRegistry) {
		t.Errorf("len = %d, want %d", len(names), len(toolRegistry))
	}
}
