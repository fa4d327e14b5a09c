package handler

import (
	"github.com/scribbly/notes-api/internal/core/domain"
)

// --- Service result → HTTP response ---

func toNoteResponse(n *domain.Note) noteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return noteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		IsPinned:  n.IsPinned,
		UserID:    n.UserID,
		CreatedOn: n.CreatedOn.UTC(),
	}
}

func toNotesResponse(notes []*domain.Note) []noteResponse {
	out := make([]noteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return out
}
