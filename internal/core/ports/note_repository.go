package ports

import (
	"context"

	"github.com/scribbly/notes-api/internal/core/domain"
)

// NoteRepository defines persistence operations for notes. Every lookup,
// update and delete is scoped by (note id, owner id) at the query level.
type NoteRepository interface {
	// Create inserts a new note and returns it with the store-assigned id.
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	FindByIDAndOwner(ctx context.Context, id, userID string) (*domain.Note, error)
	// Update persists the full document for the given (id, owner) pair.
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id, userID string) error
	// ListByOwner returns all notes owned by userID, pinned notes first.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Note, error)
}

// NoteSearcher matches notes by a case-insensitive substring over title or
// content. Kept separate from NoteRepository so the regex-based
// implementation can be swapped for indexed full-text search without
// touching the NoteService contract.
type NoteSearcher interface {
	SearchByOwner(ctx context.Context, userID, query string) ([]*domain.Note, error)
}
