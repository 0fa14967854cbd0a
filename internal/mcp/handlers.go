package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nmtri/rolecoach/internal/config"
	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/gemini"
	"github.com/nmtri/rolecoach/internal/ops"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/store"
)

// GeneratorFactory builds a one-shot AI generator on demand. The default
// creates a Gemini client from the stored API key; tests inject fakes.
type GeneratorFactory func(ctx context.Context) (ops.Generator, error)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store        *store.Store
	cfg          *config.Config
	newGenerator GeneratorFactory
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store, cfg *config.Config) *Handlers {
	h := &Handlers{store: st, cfg: cfg}
	h.newGenerator = func(ctx context.Context) (ops.Generator, error) {
		return gemini.New(ctx, st.APIKey(), cfg)
	}
	return h
}

// Request types for each tool

// AdvisorSetRequest represents the arguments for advisor_set.
type AdvisorSetRequest struct {
	Name             string `json:"name"`
	Gender           string `json:"gender,omitempty"`
	Age              string `json:"age,omitempty"`
	ExperienceMonths int    `json:"experience_months,omitempty"`
	Personality      string `json:"personality,omitempty"`
	Strengths        string `json:"strengths,omitempty"`
	Improvements     string `json:"improvements,omitempty"`
}

// PromptGenerateRequest represents the arguments for prompt_generate.
type PromptGenerateRequest struct {
	Customer       *persona.Customer `json:"customer"`
	FlowType       string            `json:"flow_type,omitempty"`
	Segment        string            `json:"segment,omitempty"`
	SelectedStages []string          `json:"selected_stages,omitempty"`
}

// FlowStagesRequest represents the arguments for flow_stages.
type FlowStagesRequest struct {
	FlowType string `json:"flow_type,omitempty"`
}

// PersonaGenerateRequest represents the arguments for persona_generate.
type PersonaGenerateRequest struct {
	Description string `json:"description"`
	Segment     string `json:"segment,omitempty"`
	FlowType    string `json:"flow_type,omitempty"`
}

// Handler implementations

// HandleAdvisorGet handles the advisor_get tool call.
func (h *Handlers) HandleAdvisorGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.AdvisorGet(h.store)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleAdvisorSet handles the advisor_set tool call.
func (h *Handlers) HandleAdvisorSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AdvisorSetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.AdvisorSet(h.store, ops.AdvisorSetInput{Profile: persona.Advisor{
		Name:             input.Name,
		Gender:           input.Gender,
		Age:              input.Age,
		ExperienceMonths: input.ExperienceMonths,
		Personality:      input.Personality,
		Strengths:        input.Strengths,
		Improvements:     input.Improvements,
	}})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandlePromptGenerate handles the prompt_generate tool call.
func (h *Handlers) HandlePromptGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptGenerateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.GeneratePrompt(h.store, h.cfg, ops.GeneratePromptInput{
		Customer:       input.Customer,
		FlowType:       flows.FlowType(input.FlowType),
		Segment:        flows.Segment(input.Segment),
		SelectedStages: input.SelectedStages,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandlePromptList handles the prompt_list tool call.
func (h *Handlers) HandlePromptList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ListPrompts(h.store)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleFlowStages handles the flow_stages tool call.
func (h *Handlers) HandleFlowStages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FlowStagesRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	flowType := flows.FlowType(input.FlowType)
	if flowType == "" {
		flowType = flows.FlowNewCustomer
	}
	return successResult(map[string]any{
		"flowType": flowType,
		"stages":   flows.StagesFor(flowType),
	})
}

// HandlePersonaGenerate handles the persona_generate tool call.
func (h *Handlers) HandlePersonaGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PersonaGenerateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	gen, err := h.newGenerator(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.GeneratePersona(ctx, gen, ops.GeneratePersonaInput{
		Description: input.Description,
		Segment:     flows.Segment(input.Segment),
		FlowType:    flows.FlowType(input.FlowType),
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if cErr, ok := err.(*errors.CoachError); ok {
		errorObj := map[string]any{
			"code":    cErr.Code,
			"message": cErr.Message,
			"status":  cErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if cErr.Code != errors.ErrInternal && cErr.Details != nil {
			errorObj["details"] = cErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
