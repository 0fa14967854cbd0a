package web

import (
	"encoding/json"
	"net/http"

	"github.com/nmtri/rolecoach/internal/config"
	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/ops"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/session"
	"github.com/nmtri/rolecoach/internal/store"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	store    *store.Store
	cfg      *config.Config
	renderer *Renderer
}

// SessionView is an archived session prepared for the detail template.
type SessionView struct {
	ID           string
	CustomerName string
	FlowType     string
	Segment      string
	StageName    string
	Note         string
	CreatedAt    string
	CompletedAt  string
	Messages     []session.Message
}

// HandlePrompts handles GET /prompts — generated-prompt history.
func (h *Handlers) HandlePrompts(w http.ResponseWriter, r *http.Request) {
	result, err := ops.ListPrompts(h.store)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "prompts", PromptsPageData{
		PageData: PageData{
			Title:   "Lịch sử prompt",
			Version: h.renderer.version,
			Nav:     "prompts",
		},
		Prompts: result.Prompts,
		Total:   result.Total,
	})
}

// HandlePromptDetail handles GET /prompts/{id} — view one generated prompt.
func (h *Handlers) HandlePromptDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("prompt ID is required"))
		return
	}

	entry := ops.FindPrompt(h.store, id)
	if entry == nil {
		h.renderer.renderError(w, r, errors.NewNotFound(id))
		return
	}

	h.renderer.renderPage(w, "prompt_detail", PromptDetailPageData{
		PageData: PageData{
			Title:   entry.CustomerName,
			Version: h.renderer.version,
			Nav:     "prompts",
		},
		Prompt:       entry,
		RenderedHTML: renderMarkdown(entry.Prompt),
	})
}

// HandleSessions handles GET /sessions — archived roleplay sessions.
func (h *Handlers) HandleSessions(w http.ResponseWriter, r *http.Request) {
	result, err := ops.SessionList(h.store)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "sessions", SessionsPageData{
		PageData: PageData{
			Title:   "Phiên luyện tập",
			Version: h.renderer.version,
			Nav:     "sessions",
		},
		Sessions: result.Sessions,
		Total:    result.Total,
	})
}

// HandleSessionDetail handles GET /sessions/{id} — session transcript.
func (h *Handlers) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("session ID is required"))
		return
	}

	sess := session.Find(h.store, id)
	if sess == nil {
		h.renderer.renderError(w, r, errors.NewNotFound(id))
		return
	}

	view := &SessionView{
		ID:           sess.ID,
		FlowType:     string(sess.FlowType),
		Segment:      string(sess.Segment),
		Note:         sess.Note,
		CreatedAt:    sess.CreatedAt,
		CompletedAt:  sess.CompletedAt,
		Messages:     sess.Messages,
		CustomerName: "Khách hàng",
	}
	if sess.Customer != nil {
		view.CustomerName = sess.Customer.DisplayName()
	}
	stages := flows.StagesFor(sess.FlowType)
	if sess.CurrentStage >= 0 && sess.CurrentStage < len(stages) {
		view.StageName = stages[sess.CurrentStage].Name
	}

	h.renderer.renderPage(w, "session_detail", SessionDetailPageData{
		PageData: PageData{
			Title:   view.CustomerName,
			Version: h.renderer.version,
			Nav:     "sessions",
		},
		Session: view,
	})
}

// HandleSessionDelete handles DELETE /sessions/{id}.
func (h *Handlers) HandleSessionDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	result, err := ops.SessionDelete(h.store, ops.SessionDeleteInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

// HandleAPIGenerate handles POST /api/prompts — generate a context prompt.
func (h *Handlers) HandleAPIGenerate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Customer       *persona.Customer `json:"customer"`
		FlowType       string            `json:"flowType"`
		Segment        string            `json:"segment"`
		SelectedStages []string          `json:"selectedStages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid JSON body"))
		return
	}

	result, err := ops.GeneratePrompt(h.store, h.cfg, ops.GeneratePromptInput{
		Customer:       body.Customer,
		FlowType:       flows.FlowType(body.FlowType),
		Segment:        flows.Segment(body.Segment),
		SelectedStages: body.SelectedStages,
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

// HandleAPIPrompts handles GET /api/prompts — prompt history as JSON.
func (h *Handlers) HandleAPIPrompts(w http.ResponseWriter, r *http.Request) {
	result, err := ops.ListPrompts(h.store)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

// HandleAPISessions handles GET /api/sessions — session summaries as JSON.
func (h *Handlers) HandleAPISessions(w http.ResponseWriter, r *http.Request) {
	result, err := ops.SessionList(h.store)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}
