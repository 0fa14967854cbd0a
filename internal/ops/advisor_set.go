package ops

import (
	"strings"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/store"
)

// AdvisorSetInput contains parameters for the AdvisorSet operation.
type AdvisorSetInput struct {
	Profile persona.Advisor
}

// AdvisorSetOutput contains the result of the AdvisorSet operation.
type AdvisorSetOutput struct {
	Profile *persona.Advisor `json:"profile"`
}

// AdvisorSet stores the advisor profile, replacing any existing one.
// There is a single profile slot per user.
func AdvisorSet(st *store.Store, input AdvisorSetInput) (*AdvisorSetOutput, error) {
	profile := input.Profile
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return nil, errors.NewInvalidRequest("name is required")
	}
	if profile.ExperienceMonths < 0 {
		return nil, errors.NewInvalidRequest("experience_months must not be negative")
	}

	st.Set(store.KeyAdvisorProfile, &profile)
	return &AdvisorSetOutput{Profile: &profile}, nil
}
