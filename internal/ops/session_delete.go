package ops

import (
	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/session"
	"github.com/nmtri/rolecoach/internal/store"
)

// SessionDeleteInput contains parameters for the SessionDelete operation.
type SessionDeleteInput struct {
	ID string // required
}

// SessionDeleteOutput contains the result of the SessionDelete operation.
type SessionDeleteOutput struct {
	Deleted string `json:"deleted"`
}

// SessionDelete removes one archived session.
func SessionDelete(st *store.Store, input SessionDeleteInput) (*SessionDeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	if session.Find(st, input.ID) == nil {
		return nil, errors.NewNotFound(input.ID)
	}
	session.Delete(st, input.ID)
	return &SessionDeleteOutput{Deleted: input.ID}, nil
}
