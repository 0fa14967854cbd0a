package session

import (
	"context"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/prompt"
	"github.com/nmtri/rolecoach/internal/store"
)

// Gateway is the AI boundary the manager talks to. The gemini package
// provides the production implementation; tests inject fakes.
type Gateway interface {
	// BeginChat opens a multi-turn chat seeded with the given system
	// prompt and returns a handle for subsequent turns.
	BeginChat(ctx context.Context, systemPrompt string) (Chat, error)
}

// Chat is one live multi-turn conversation with the model.
type Chat interface {
	// Send forwards one advisor message and returns the customer reply.
	Send(ctx context.Context, text string) (string, error)
	// Close tears down the conversation handle.
	Close()
}

// ResumeStrategy re-establishes a chat handle for a session restored from
// the current-session slot. The default strategy seeds a fresh model
// context from the session's persona prompt: the transcript is kept in the
// record but is not replayed, so the model starts without conversational
// memory. ReplayResume is the alternative policy.
type ResumeStrategy func(ctx context.Context, gw Gateway, sess *Session) (Chat, error)

// FreshResume seeds a new chat from the persona prompt only.
func FreshResume(ctx context.Context, gw Gateway, sess *Session) (Chat, error) {
	return gw.BeginChat(ctx, prompt.RoleplaySystem(sess.Customer, sess.FlowType, sess.CurrentStage))
}

// ReplayResume seeds a new chat and replays the stored transcript's user
// turns so the model rebuilds its conversational memory. Replay failures
// abort the resume rather than leaving a half-replayed context.
func ReplayResume(ctx context.Context, gw Gateway, sess *Session) (Chat, error) {
	chat, err := gw.BeginChat(ctx, prompt.RoleplaySystem(sess.Customer, sess.FlowType, sess.CurrentStage))
	if err != nil {
		return nil, err
	}
	for _, m := range sess.Messages {
		if m.Role != "user" {
			continue
		}
		if _, err := chat.Send(ctx, m.Content); err != nil {
			chat.Close()
			return nil, err
		}
	}
	return chat, nil
}

// Manager drives the roleplay session lifecycle. At most one session is
// active at a time; the active session is mirrored into the store's
// current-session slot after every mutation so a crash or restart can
// resume it.
type Manager struct {
	store   *store.Store
	gateway Gateway
	resume  ResumeStrategy

	session *Session
	chat    Chat
}

// NewManager creates a manager with the default fresh-context resume
// strategy.
func NewManager(st *store.Store, gw Gateway) *Manager {
	return &Manager{store: st, gateway: gw, resume: FreshResume}
}

// SetResumeStrategy swaps the resume policy. Passing nil restores the
// default.
func (m *Manager) SetResumeStrategy(s ResumeStrategy) {
	if s == nil {
		s = FreshResume
	}
	m.resume = s
}

// Current returns the active session, or nil.
func (m *Manager) Current() *Session {
	return m.session
}

// Start begins a new roleplay session: seeds a chat with the persona
// system prompt and stores the session as current.
func (m *Manager) Start(ctx context.Context, customer *persona.Customer, flowType flows.FlowType, segment flows.Segment) (*Session, error) {
	if m.session != nil {
		return nil, errors.NewSessionActive(m.session.ID)
	}

	systemPrompt := prompt.RoleplaySystem(customer, flowType, 0)
	chat, err := m.gateway.BeginChat(ctx, systemPrompt)
	if err != nil {
		return nil, err
	}

	sess := NewSession(customer, flowType, segment)
	m.session = sess
	m.chat = chat
	SaveCurrent(m.store, sess)

	return sess, nil
}

// Send forwards one advisor message and appends both turns to the
// transcript. The transcript is only appended to after the gateway reply
// returns; a failed call leaves the session exactly as it was.
func (m *Manager) Send(ctx context.Context, text string) (string, error) {
	if m.session == nil {
		return "", errors.NewNoActiveSession()
	}

	if m.chat == nil {
		// Session was resumed; re-establish the model context first.
		chat, err := m.resume(ctx, m.gateway, m.session)
		if err != nil {
			return "", err
		}
		m.chat = chat
	}

	reply, err := m.chat.Send(ctx, text)
	if err != nil {
		return "", err
	}

	now := timestamp()
	m.session.Messages = append(m.session.Messages,
		Message{Role: "user", Content: text, Timestamp: now},
		Message{Role: "assistant", Content: reply, Timestamp: timestamp()},
	)
	m.session.UpdatedAt = timestamp()
	SaveCurrent(m.store, m.session)

	return reply, nil
}

// SetStage moves the session to another consulting stage. Out-of-range
// indices are silently ignored.
func (m *Manager) SetStage(index int) {
	if m.session == nil {
		return
	}
	stages := flows.StagesFor(m.session.FlowType)
	if index < 0 || index >= len(stages) {
		return
	}
	m.session.CurrentStage = index
	m.session.UpdatedAt = timestamp()
	SaveCurrent(m.store, m.session)
}

// End completes the session: archives it with the note, clears the
// current slot, and tears down the chat handle. Returns the finalized
// record.
func (m *Manager) End(note string) (*Session, error) {
	if m.session == nil {
		return nil, errors.NewNoActiveSession()
	}

	sess := m.session
	sess.Status = StatusCompleted
	sess.Note = note
	sess.CompletedAt = timestamp()
	sess.UpdatedAt = sess.CompletedAt

	Save(m.store, sess)
	ClearCurrent(m.store)
	m.teardown()

	return sess, nil
}

// Cancel discards the session without archiving it.
func (m *Manager) Cancel() {
	ClearCurrent(m.store)
	m.teardown()
}

// Resume restores the session stored in the current slot, if any. The
// chat handle is re-established lazily on the next Send via the resume
// strategy; until then the restored record is data only.
func (m *Manager) Resume() *Session {
	sess := LoadCurrent(m.store)
	if sess == nil {
		return nil
	}
	m.session = sess
	m.chat = nil
	return sess
}

func (m *Manager) teardown() {
	if m.chat != nil {
		m.chat.Close()
		m.chat = nil
	}
	m.session = nil
}
