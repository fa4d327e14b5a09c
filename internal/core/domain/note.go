package domain

import (
	"errors"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")
var ErrNoChanges = errors.New("no changes provided")
var ErrMissingFields = errors.New("missing required fields")

// Note is a user-owned note. UserID references the owning User; every
// read, update and delete must filter by both note id and owner id so one
// user can never observe another's notes.
type Note struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Tags      []string  `json:"tags" bson:"tags"`
	IsPinned  bool      `json:"isPinned" bson:"is_pinned"`
	UserID    string    `json:"userId" bson:"user_id"`
	CreatedOn time.Time `json:"createdOn" bson:"created_on"`
}
