package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/ops"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
	Nav     string // active nav item: "prompts", "sessions"
}

// PromptsPageData is the template data for the prompt history page.
type PromptsPageData struct {
	PageData
	Prompts []ops.GeneratedPrompt
	Total   int
}

// PromptDetailPageData is the template data for the prompt detail page.
type PromptDetailPageData struct {
	PageData
	Prompt       *ops.GeneratedPrompt
	RenderedHTML template.HTML
}

// SessionsPageData is the template data for the session history page.
type SessionsPageData struct {
	PageData
	Sessions []ops.SessionSummary
	Total    int
}

// SessionDetailPageData is the template data for the session detail page.
type SessionDetailPageData struct {
	PageData
	Session *SessionView
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"formatTime": formatTime,
		"flowLabel":  flowLabel,
	}

	// Parse layout as the base template
	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"prompts":        "prompts.html",
		"prompt_detail":  "prompt_detail.html",
		"sessions":       "sessions.html",
		"session_detail": "session_detail.html",
		"error":          "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, name string, data any) {
	r.renderPageStatus(w, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		log.Printf("template %q not found", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("template execution error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	var cErr *errors.CoachError
	if !stderrors.As(err, &cErr) {
		cErr = errors.NewInternal(err)
	}

	status := cErr.Status
	message := cErr.Message

	if strings.Contains(req.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    string(cErr.Code),
				"message": message,
				"status":  status,
			},
		})
		return
	}

	r.renderPageStatus(w, status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", status),
			Version: r.version,
		},
		StatusCode: status,
		Message:    message,
	})
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// formatTime reformats an RFC3339 timestamp as "2006-01-02 15:04" UTC.
// Unparseable values are shown as-is.
func formatTime(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.UTC().Format("2006-01-02 15:04")
}

// flowLabel maps flow type IDs to their Vietnamese display names.
func flowLabel(flowType string) string {
	switch flowType {
	case "ecm":
		return "Chăm sóc khách hàng hiện tại"
	default:
		return "Tư vấn khách hàng mới"
	}
}
