package ops

import (
	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/session"
	"github.com/nmtri/rolecoach/internal/store"
)

// SaveNoteInput contains parameters for the SaveNote operation.
type SaveNoteInput struct {
	ID   string // required
	Note string // empty clears the note
}

// SaveNoteOutput contains the result of the SaveNote operation.
type SaveNoteOutput struct {
	ID            string `json:"id"`
	Note          string `json:"note"`
	NoteUpdatedAt string `json:"noteUpdatedAt"`
}

// SaveNote attaches a self-assessment note to an archived session.
func SaveNote(st *store.Store, input SaveNoteInput) (*SaveNoteOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	if !session.SaveNote(st, input.ID, input.Note) {
		return nil, errors.NewNotFound(input.ID)
	}
	sess := session.Find(st, input.ID)
	return &SaveNoteOutput{ID: sess.ID, Note: sess.Note, NoteUpdatedAt: sess.NoteUpdatedAt}, nil
}
