package ops

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/store"
)

// ImportProfileInput contains parameters for the ImportProfile operation.
type ImportProfileInput struct {
	Path string // required
}

// ImportProfileOutput contains the result of the ImportProfile operation.
type ImportProfileOutput struct {
	Profile *persona.Advisor `json:"profile"`
}

// ImportProfile reads an advisor-profile export file and stores the
// profile, replacing any existing one. The file must carry an
// advisorProfile object; other fields are not validated.
func ImportProfile(st *store.Store, input ImportProfileInput) (*ImportProfileOutput, error) {
	if input.Path == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, errors.NewInvalidImport("cannot read file: " + err.Error())
	}

	var doc struct {
		AdvisorProfile *persona.Advisor `json:"advisorProfile"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewInvalidImport("file is not valid JSON")
	}
	if doc.AdvisorProfile == nil {
		return nil, errors.NewInvalidImport("file has no advisorProfile")
	}

	profile := *doc.AdvisorProfile
	profile.Name = strings.TrimSpace(profile.Name)
	st.Set(store.KeyAdvisorProfile, &profile)

	return &ImportProfileOutput{Profile: &profile}, nil
}
