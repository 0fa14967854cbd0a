package ops

import (
	"github.com/nmtri/rolecoach/internal/config"
	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/prompt"
	"github.com/nmtri/rolecoach/internal/store"
)

// GeneratePromptInput contains parameters for the GeneratePrompt operation.
type GeneratePromptInput struct {
	Customer       *persona.Customer
	FlowType       flows.FlowType
	Segment        flows.Segment
	SelectedStages []string // empty means every stage is included
}

// GeneratePromptOutput contains the result of the GeneratePrompt operation.
type GeneratePromptOutput struct {
	Entry *GeneratedPrompt `json:"entry"`
}

// GeneratePrompt assembles the roleplay context prompt from the stored
// advisor profile and the given customer, and prepends it to the
// generated-prompt history. The history is capped at the configured
// limit; the oldest entry is evicted.
func GeneratePrompt(st *store.Store, cfg *config.Config, input GeneratePromptInput) (*GeneratePromptOutput, error) {
	if input.Customer == nil {
		return nil, errors.NewInvalidRequest("customer is required")
	}
	if input.FlowType == "" {
		input.FlowType = flows.FlowNewCustomer
	}
	if input.Segment == "" {
		input.Segment = flows.SegmentMassMarket
	}

	var advisor *persona.Advisor
	var stored persona.Advisor
	if st.Get(store.KeyAdvisorProfile, &stored) {
		advisor = &stored
	}

	text := prompt.Context(prompt.ContextInput{
		Advisor:        advisor,
		Customer:       input.Customer,
		FlowType:       input.FlowType,
		Segment:        input.Segment,
		SelectedStages: input.SelectedStages,
	})

	entry := &GeneratedPrompt{
		ID:             generateULID(),
		CustomerName:   input.Customer.DisplayName(),
		FlowType:       string(input.FlowType),
		Segment:        string(input.Segment),
		SelectedStages: input.SelectedStages,
		Prompt:         text,
		CreatedAt:      timestamp(),
	}

	var history []GeneratedPrompt
	st.Get(store.KeyGeneratedPrompts, &history)
	history = append([]GeneratedPrompt{*entry}, history...)
	limit := cfg.PromptHistoryLimit
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	st.Set(store.KeyGeneratedPrompts, history)

	return &GeneratePromptOutput{Entry: entry}, nil
}
