package ops

import (
	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/session"
	"github.com/nmtri/rolecoach/internal/store"
)

// SessionSummary is one archived session without its transcript.
type SessionSummary struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	FlowType     string `json:"flowType"`
	Segment      string `json:"segment"`
	Messages     int    `json:"messages"`
	StageName    string `json:"stageName"`
	HasNote      bool   `json:"hasNote"`
	CreatedAt    string `json:"createdAt"`
	CompletedAt  string `json:"completedAt,omitempty"`
	Status       string `json:"status"`
}

// SessionListOutput contains the result of the SessionList operation.
type SessionListOutput struct {
	Sessions []SessionSummary `json:"sessions"`
	Total    int              `json:"total"`
}

// SessionList returns archived session summaries, newest first.
func SessionList(st *store.Store) (*SessionListOutput, error) {
	sessions := session.All(st)
	summaries := make([]SessionSummary, 0, len(sessions))
	for i := range sessions {
		summaries = append(summaries, summarize(&sessions[i]))
	}
	return &SessionListOutput{Sessions: summaries, Total: len(summaries)}, nil
}

func summarize(sess *session.Session) SessionSummary {
	stageName := ""
	stages := flows.StagesFor(sess.FlowType)
	if sess.CurrentStage >= 0 && sess.CurrentStage < len(stages) {
		stageName = stages[sess.CurrentStage].Name
	}
	name := ""
	if sess.Customer != nil {
		name = sess.Customer.DisplayName()
	}
	return SessionSummary{
		ID:           sess.ID,
		CustomerName: name,
		FlowType:     string(sess.FlowType),
		Segment:      string(sess.Segment),
		Messages:     len(sess.Messages),
		StageName:    stageName,
		HasNote:      sess.Note != "",
		CreatedAt:    sess.CreatedAt,
		CompletedAt:  sess.CompletedAt,
		Status:       string(sess.Status),
	}
}
