// Package session implements the roleplay session state machine: a single
// resumable "current" session that accepts advisor messages, forwards them
// to the AI gateway, and archives on completion.
package session

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/store"
)

// Status is the lifecycle state of a session record.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Message is one turn of a roleplay conversation.
type Message struct {
	Role      string `json:"role"` // "user" or "assistant"
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Session is one roleplay run's persisted state.
type Session struct {
	ID            string            `json:"id"`
	Customer      *persona.Customer `json:"customer"`
	FlowType      flows.FlowType    `json:"flowType"`
	Segment       flows.Segment     `json:"segment"`
	Messages      []Message         `json:"messages"`
	CurrentStage  int               `json:"currentStage"`
	Note          string            `json:"note"`
	NoteUpdatedAt string            `json:"noteUpdatedAt,omitempty"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
	CompletedAt   string            `json:"completedAt,omitempty"`
	Status        Status            `json:"status"`
}

// NewSession creates a fresh active session record.
func NewSession(customer *persona.Customer, flowType flows.FlowType, segment flows.Segment) *Session {
	now := timestamp()
	return &Session{
		ID:           newID(),
		Customer:     customer,
		FlowType:     flowType,
		Segment:      segment,
		Messages:     []Message{},
		CurrentStage: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
		Status:       StatusActive,
	}
}

// newID generates a ULID session id.
func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		// ulid.New only fails on entropy exhaustion; fall back to a
		// timestamp-only id rather than aborting session creation.
		return time.Now().UTC().Format("20060102150405.000000000")
	}
	return id.String()
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// All returns the archived session list, newest first. An absent or
// malformed collection yields an empty list.
func All(st *store.Store) []Session {
	var sessions []Session
	st.Get(store.KeySessions, &sessions)
	return sessions
}

// Save upserts a session into the archived list. New sessions are
// prepended; existing ids are replaced in place.
func Save(st *store.Store, sess *Session) {
	sessions := All(st)
	for i := range sessions {
		if sessions[i].ID == sess.ID {
			sessions[i] = *sess
			st.Set(store.KeySessions, sessions)
			return
		}
	}
	sessions = append([]Session{*sess}, sessions...)
	st.Set(store.KeySessions, sessions)
}

// Find returns the archived session with the given id, or nil.
func Find(st *store.Store, id string) *Session {
	for _, s := range All(st) {
		if s.ID == id {
			return &s
		}
	}
	return nil
}

// Delete removes the archived session with the given id. Unknown ids are
// a no-op.
func Delete(st *store.Store, id string) {
	sessions := All(st)
	kept := sessions[:0]
	for _, s := range sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	st.Set(store.KeySessions, kept)
}

// SaveNote updates the note on an archived session and stamps
// noteUpdatedAt. Returns false when the id is unknown.
func SaveNote(st *store.Store, id, note string) bool {
	sessions := All(st)
	for i := range sessions {
		if sessions[i].ID == id {
			sessions[i].Note = note
			sessions[i].NoteUpdatedAt = timestamp()
			st.Set(store.KeySessions, sessions)
			return true
		}
	}
	return false
}

// LoadCurrent returns the resumable "current" session, or nil.
func LoadCurrent(st *store.Store) *Session {
	var sess Session
	if !st.Get(store.KeyCurrentSession, &sess) {
		return nil
	}
	return &sess
}

// SaveCurrent stores the session in the single "current" slot.
func SaveCurrent(st *store.Store, sess *Session) {
	st.Set(store.KeyCurrentSession, sess)
}

// ClearCurrent empties the "current" slot.
func ClearCurrent(st *store.Store) {
	st.Remove(store.KeyCurrentSession)
}

// Transcript renders the message list as labeled dialogue lines for
// review prompts and exports.
func (s *Session) Transcript() string {
	var b strings.Builder
	for i, m := range s.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		label := "Khách hàng"
		if m.Role == "user" {
			label = "Tư vấn viên"
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}
