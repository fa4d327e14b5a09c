package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/scribbly/notes-api/internal/core/domain"
	"github.com/scribbly/notes-api/internal/core/ports"
)

// NoteService implements note use cases. The owner id in every input comes
// from the verified session token, never from the request body.
type NoteService struct {
	repo     ports.NoteRepository
	searcher ports.NoteSearcher
	log      zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, searcher ports.NoteSearcher, log zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, searcher: searcher, log: log}
}

// CreateNote persists a new note owned by the caller.
func (s *NoteService) CreateNote(ctx context.Context, in ports.CreateNoteInput) (*domain.Note, error) {
	if in.Title == "" || in.Content == "" {
		return nil, domain.ErrMissingFields
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	note := &domain.Note{
		Title:     in.Title,
		Content:   in.Content,
		Tags:      tags,
		IsPinned:  false,
		UserID:    in.UserID,
		CreatedOn: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, note)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("failed to create note")
		return nil, err
	}

	s.log.Info().Str("note_id", created.ID).Str("user_id", in.UserID).Msg("note created")
	return created, nil
}

// UpdateNote applies a partial update to a note owned by the caller.
// Only supplied fields change; a nil pointer leaves the stored value as is.
func (s *NoteService) UpdateNote(ctx context.Context, in ports.UpdateNoteInput) (*domain.Note, error) {
	if in.Empty() {
		return nil, domain.ErrNoChanges
	}

	note, err := s.repo.FindByIDAndOwner(ctx, in.NoteID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		note.Title = *in.Title
	}
	if in.Content != nil {
		note.Content = *in.Content
	}
	if in.Tags != nil {
		note.Tags = *in.Tags
	}
	if in.IsPinned != nil {
		note.IsPinned = *in.IsPinned
	}

	if err := s.repo.Update(ctx, note); err != nil {
		s.log.Error().Err(err).Str("note_id", in.NoteID).Msg("failed to update note")
		return nil, err
	}

	return note, nil
}

// ListNotes returns all notes owned by the caller, pinned notes first.
func (s *NoteService) ListNotes(ctx context.Context, userID string) ([]*domain.Note, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// DeleteNote removes a note owned by the caller.
func (s *NoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if _, err := s.repo.FindByIDAndOwner(ctx, noteID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, noteID, userID); err != nil {
		s.log.Error().Err(err).Str("note_id", noteID).Msg("failed to delete note")
		return err
	}

	s.log.Info().Str("note_id", noteID).Str("user_id", userID).Msg("note deleted")
	return nil
}

// SetNotePinned sets the pinned flag on a note owned by the caller.
func (s *NoteService) SetNotePinned(ctx context.Context, userID, noteID string, pinned bool) (*domain.Note, error) {
	note, err := s.repo.FindByIDAndOwner(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	note.IsPinned = pinned
	if err := s.repo.Update(ctx, note); err != nil {
		s.log.Error().Err(err).Str("note_id", noteID).Msg("failed to update pin flag")
		return nil, err
	}

	return note, nil
}

// SearchNotes returns the caller's notes whose title or content contains
// query as a case-insensitive substring.
func (s *NoteService) SearchNotes(ctx context.Context, userID, query string) ([]*domain.Note, error) {
	if query == "" {
		return nil, domain.ErrMissingFields
	}
	return s.searcher.SearchByOwner(ctx, userID, query)
}
