package ports

import (
	"context"

	"github.com/scribbly/notes-api/internal/core/domain"
)

// CreateNoteInput carries the data needed to create a note.
type CreateNoteInput struct {
	UserID  string
	Title   string
	Content string
	Tags    []string
}

// UpdateNoteInput carries a partial update. Nil pointers mean "not
// supplied": an explicit empty string, empty tag list or false pin flag is
// applied, an omitted field retains its stored value.
type UpdateNoteInput struct {
	UserID   string
	NoteID   string
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
}

// Empty reports whether no field was supplied at all.
func (in UpdateNoteInput) Empty() bool {
	return in.Title == nil && in.Content == nil && in.Tags == nil && in.IsPinned == nil
}

// NoteService defines note use cases. Every operation is scoped to the
// authenticated owner carried in the input.
type NoteService interface {
	CreateNote(ctx context.Context, in CreateNoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, in UpdateNoteInput) (*domain.Note, error)
	ListNotes(ctx context.Context, userID string) ([]*domain.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
	SetNotePinned(ctx context.Context, userID, noteID string, pinned bool) (*domain.Note, error)
	SearchNotes(ctx context.Context, userID, query string) ([]*domain.Note, error)
}
