package ops

import (
	"context"
	"strings"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/prompt"
	"github.com/nmtri/rolecoach/internal/session"
	"github.com/nmtri/rolecoach/internal/store"
)

// ReviewInput contains parameters for the Review operation. Exactly one
// of SessionID or Transcript must be set.
type ReviewInput struct {
	SessionID  string // review an archived session's transcript
	Transcript string // review a pasted transcript
}

// ReviewOutput contains the result of the Review operation.
type ReviewOutput struct {
	Review string `json:"review"`
}

// Review sends a practice transcript to the AI with the coaching rubric
// and returns the evaluation text.
func Review(ctx context.Context, gen Generator, st *store.Store, input ReviewInput) (*ReviewOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)

	if input.SessionID != "" {
		if transcript != "" {
			return nil, errors.NewInvalidRequest("specify either session_id or transcript, not both")
		}
		sess := session.Find(st, input.SessionID)
		if sess == nil {
			return nil, errors.NewNotFound(input.SessionID)
		}
		transcript = sess.Transcript()
	}
	if transcript == "" {
		return nil, errors.NewInvalidRequest("transcript is empty")
	}

	var advisor *persona.Advisor
	var stored persona.Advisor
	if st.Get(store.KeyAdvisorProfile, &stored) {
		advisor = &stored
	}

	reply, err := gen.GenerateOnce(ctx, prompt.Review(transcript, advisor))
	if err != nil {
		return nil, err
	}
	return &ReviewOutput{Review: reply}, nil
}
