package handler

import "time"

// errorResponse documents the error envelope rendered by the central HTTP
// error handler.
type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// --- Request / Response types ---

type addNoteRequest struct {
	Title   string   `json:"title"   validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

// editNoteRequest uses pointer fields so an omitted field is
// distinguishable from an explicitly supplied zero value: `"isPinned":
// false` unpins, a missing isPinned leaves the flag alone.
type editNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPinned *bool     `json:"isPinned"`
}

type updatePinnedRequest struct {
	IsPinned *bool `json:"isPinned"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	UserID    string    `json:"userId"`
	CreatedOn time.Time `json:"createdOn"`
}

type noteEnvelope struct {
	Error   bool         `json:"error"`
	Note    noteResponse `json:"note"`
	Message string       `json:"message"`
}

type notesEnvelope struct {
	Error   bool           `json:"error"`
	Notes   []noteResponse `json:"notes"`
	Message string         `json:"message"`
}

type messageEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
