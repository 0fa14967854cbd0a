package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nmtri/rolecoach/internal/config"
	"github.com/nmtri/rolecoach/internal/store"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"advisor_get": {
		def:     advisorGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAdvisorGet },
	},
	"advisor_set": {
		def:     advisorSetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAdvisorSet },
	},
	"prompt_generate": {
		def:     promptGenerateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptGenerate },
	},
	"prompt_list": {
		def:     promptListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptList },
	},
	"flow_stages": {
		def:     flowStagesToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFlowStages },
	},
	"persona_generate": {
		def:     personaGenerateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePersonaGenerate },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with rolecoach tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(st *store.Store, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"rolecoach",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(st, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	// Register tools (skip disabled)
	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(st *store.Store, cfg *config.Config, version string) error {
	s := NewServer(st, cfg, version)
	return server.ServeStdio(s)
}
