package ops

import (
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/store"
)

// AdvisorGetOutput contains the result of the AdvisorGet operation.
type AdvisorGetOutput struct {
	Profile *persona.Advisor `json:"profile"` // nil when no profile is stored
}

// AdvisorGet returns the stored advisor profile, or nil when none exists.
func AdvisorGet(st *store.Store) (*AdvisorGetOutput, error) {
	var profile persona.Advisor
	if !st.Get(store.KeyAdvisorProfile, &profile) {
		return &AdvisorGetOutput{Profile: nil}, nil
	}
	return &AdvisorGetOutput{Profile: &profile}, nil
}
