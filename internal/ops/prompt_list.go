package ops

import (
	"github.com/nmtri/rolecoach/internal/store"
)

// ListPromptsOutput contains the result of the ListPrompts operation.
type ListPromptsOutput struct {
	Prompts []GeneratedPrompt `json:"prompts"`
	Total   int               `json:"total"`
}

// ListPrompts returns the generated-prompt history, newest first.
func ListPrompts(st *store.Store) (*ListPromptsOutput, error) {
	var history []GeneratedPrompt
	st.Get(store.KeyGeneratedPrompts, &history)
	return &ListPromptsOutput{Prompts: history, Total: len(history)}, nil
}

// FindPrompt returns one history entry by ID, or nil.
func FindPrompt(st *store.Store, id string) *GeneratedPrompt {
	var history []GeneratedPrompt
	st.Get(store.KeyGeneratedPrompts, &history)
	for i := range history {
		if history[i].ID == id {
			return &history[i]
		}
	}
	return nil
}
