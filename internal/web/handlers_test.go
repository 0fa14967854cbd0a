package web

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nmtri/rolecoach/internal/config"
	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/ops"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/session"
	"github.com/nmtri/rolecoach/internal/store"
)

func setupTest(t *testing.T) *Handlers {
	t.Helper()
	db, err := store.Init(t.TempDir())
	if err != nil {
		t.Fatalf("store.Init: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		t.Fatalf("template sub-FS: %v", err)
	}

	return &Handlers{
		store:    store.New(db),
		cfg:      config.DefaultConfig(),
		renderer: NewRenderer(templateSub, "test"),
	}
}

// seedPrompt generates one history entry and returns its ID.
func seedPrompt(t *testing.T, h *Handlers, name string) string {
	t.Helper()
	out, err := ops.GeneratePrompt(h.store, h.cfg, ops.GeneratePromptInput{
		Customer: &persona.Customer{Name: name},
	})
	if err != nil {
		t.Fatalf("seed prompt %q: %v", name, err)
	}
	return out.Entry.ID
}

// seedSession archives one completed session and returns its ID.
func seedSession(t *testing.T, h *Handlers, name string) string {
	t.Helper()
	sess := session.NewSession(&persona.Customer{Name: name}, flows.FlowNewCustomer, flows.SegmentMassMarket)
	sess.Messages = []session.Message{
		{Role: "user", Content: "Chào anh."},
		{Role: "assistant", Content: "Chào em."},
	}
	sess.Status = session.StatusCompleted
	session.Save(h.store, sess)
	return sess.ID
}

// --- Pages ---

func TestHandlePrompts(t *testing.T) {
	h := setupTest(t)
	seedPrompt(t, h, "Minh")

	req := httptest.NewRequest("GET", "/prompts", nil)
	rec := httptest.NewRecorder()
	h.HandlePrompts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Minh") {
		t.Error("page should list the generated prompt")
	}
}

func TestHandlePromptDetail(t *testing.T) {
	h := setupTest(t)
	id := seedPrompt(t, h, "Minh")

	req := httptest.NewRequest("GET", "/prompts/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.HandlePromptDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Minh") || !strings.Contains(body, "ROLEPLAY TƯ VẤN BẢO HIỂM AIA") {
		t.Error("detail page should render the prompt")
	}
}

func TestHandlePromptDetail_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/prompts/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	h.HandlePromptDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandleSessions(t *testing.T) {
	h := setupTest(t)
	seedSession(t, h, "Hùng")

	req := httptest.NewRequest("GET", "/sessions", nil)
	rec := httptest.NewRecorder()
	h.HandleSessions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Hùng") {
		t.Error("page should list the session")
	}
}

func TestHandleSessionDetail(t *testing.T) {
	h := setupTest(t)
	id := seedSession(t, h, "Hùng")

	req := httptest.NewRequest("GET", "/sessions/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.HandleSessionDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Chào anh.") || !strings.Contains(body, "Tư vấn viên") {
		t.Error("detail page should render the transcript")
	}
}

func TestHandleSessionDelete(t *testing.T) {
	h := setupTest(t)
	id := seedSession(t, h, "Hùng")

	req := httptest.NewRequest("DELETE", "/sessions/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.HandleSessionDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if session.Find(h.store, id) != nil {
		t.Error("session should be deleted")
	}
}

// --- JSON API ---

func TestHandleAPIGenerate(t *testing.T) {
	h := setupTest(t)

	body := `{"customer":{"name":"Minh","age":"35"},"flowType":"new_customer","segment":"mass_market"}`
	req := httptest.NewRequest("POST", "/api/prompts", strings.NewReader(body))
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleAPIGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var out ops.GeneratePromptOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if out.Entry == nil || !strings.Contains(out.Entry.Prompt, "Minh") {
		t.Error("response should carry the generated prompt")
	}
}

func TestHandleAPIGenerate_InvalidBody(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("POST", "/api/prompts", strings.NewReader("{"))
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleAPIGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("error response is not JSON: %v", err)
	}
	if errResp.Error.Code != "INVALID_REQUEST" {
		t.Errorf("code = %q, want INVALID_REQUEST", errResp.Error.Code)
	}
}

func TestHandleAPIPrompts(t *testing.T) {
	h := setupTest(t)
	seedPrompt(t, h, "Minh")

	req := httptest.NewRequest("GET", "/api/prompts", nil)
	rec := httptest.NewRecorder()
	h.HandleAPIPrompts(rec, req)

	var out ops.ListPromptsOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if out.Total != 1 {
		t.Errorf("Total = %d, want 1", out.Total)
	}
}

func TestHandleAPISessions(t *testing.T) {
	h := setupTest(t)
	seedSession(t, h, "Hùng")

	req := httptest.NewRequest("GET", "/api/sessions", nil)
	rec := httptest.NewRecorder()
	h.HandleAPISessions(rec, req)

	var out ops.SessionListOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if out.Total != 1 || out.Sessions[0].CustomerName != "Hùng" {
		t.Errorf("unexpected sessions: %+v", out.Sessions)
	}
}
