package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var advisorGetToolDef = mcp.NewTool("advisor_get",
	mcp.WithDescription("Get the stored advisor (TVV) profile. Returns null when none is set."),
)

var advisorSetToolDef = mcp.NewTool("advisor_set",
	mcp.WithDescription("Store the advisor (TVV) profile, replacing any existing one."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Advisor display name")),
	mcp.WithString("gender", mcp.Description("Advisor gender")),
	mcp.WithString("age", mcp.Description("Advisor age")),
	mcp.WithNumber("experience_months", mcp.Description("Sales experience in months")),
	mcp.WithString("personality", mcp.Description("Self-described personality")),
	mcp.WithString("strengths", mcp.Description("Self-assessed strengths")),
	mcp.WithString("improvements", mcp.Description("Areas the advisor wants to improve")),
)

var promptGenerateToolDef = mcp.NewTool("prompt_generate",
	mcp.WithDescription("Assemble a Vietnamese insurance roleplay context prompt from a customer persona and the stored advisor profile. The prompt is saved to history."),
	mcp.WithObject("customer", mcp.Required(), mcp.Description("Customer persona (name, age, personality, trustLevel, ...)")),
	mcp.WithString("flow_type", mcp.Description("Consulting flow: new_customer (default) or ecm")),
	mcp.WithString("segment", mcp.Description("Customer segment: mass_market (default) or hnw")),
	mcp.WithArray("selected_stages", mcp.Description("Stage IDs to roleplay; empty means all stages")),
)

var promptListToolDef = mcp.NewTool("prompt_list",
	mcp.WithDescription("List the generated-prompt history, newest first."),
)

var flowStagesToolDef = mcp.NewTool("flow_stages",
	mcp.WithDescription("List the consulting stages of a flow with descriptions and tips."),
	mcp.WithString("flow_type", mcp.Description("Consulting flow: new_customer (default) or ecm")),
)

var personaGenerateToolDef = mcp.NewTool("persona_generate",
	mcp.WithDescription("Expand a free-text customer sketch into a full persona using the AI gateway. Requires a stored API key."),
	mcp.WithString("description", mcp.Required(), mcp.Description("Free-text customer sketch")),
	mcp.WithString("segment", mcp.Description("Customer segment: mass_market (default) or hnw")),
	mcp.WithString("flow_type", mcp.Description("Consulting flow: new_customer (default) or ecm")),
)
