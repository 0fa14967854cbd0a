package ops

import (
	"context"
	"strings"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/prompt"
)

// GeneratePersonaInput contains parameters for the GeneratePersona operation.
type GeneratePersonaInput struct {
	Description string // free-text customer sketch, required
	Segment     flows.Segment
	FlowType    flows.FlowType
}

// GeneratePersonaOutput contains the result of the GeneratePersona operation.
type GeneratePersonaOutput struct {
	Customer *persona.Customer `json:"customer"`
}

// GeneratePersona asks the AI to expand a free-text customer sketch into
// a full customer persona and parses the JSON reply. The persona is
// stamped with generation metadata.
func GeneratePersona(ctx context.Context, gen Generator, input GeneratePersonaInput) (*GeneratePersonaOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, errors.NewInvalidRequest("description is required")
	}
	if input.Segment == "" {
		input.Segment = flows.SegmentMassMarket
	}
	if input.FlowType == "" {
		input.FlowType = flows.FlowNewCustomer
	}

	text := prompt.CustomerGeneration(description, input.Segment, input.FlowType)
	reply, err := gen.GenerateOnce(ctx, text)
	if err != nil {
		return nil, err
	}

	customer, err := prompt.ParseCustomerResponse(reply)
	if err != nil {
		return nil, err
	}
	customer.Meta = &persona.GenerationMeta{
		Segment:             string(input.Segment),
		FlowType:            string(input.FlowType),
		GeneratedAt:         timestamp(),
		OriginalDescription: description,
	}

	return &GeneratePersonaOutput{Customer: customer}, nil
}
