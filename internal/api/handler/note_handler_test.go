package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scribbly/notes-api/internal/api/middleware"
	"github.com/scribbly/notes-api/internal/core/domain"
	"github.com/scribbly/notes-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub service
// ---------------------------------------------------------------------------

type stubNoteService struct {
	note  *domain.Note
	notes []*domain.Note
	err   error

	lastCreate ports.CreateNoteInput
	lastUpdate ports.UpdateNoteInput
	lastUserID string
	lastNoteID string
	lastPinned bool
	lastQuery  string
}

func (s *stubNoteService) CreateNote(_ context.Context, in ports.CreateNoteInput) (*domain.Note, error) {
	s.lastCreate = in
	return s.note, s.err
}

func (s *stubNoteService) UpdateNote(_ context.Context, in ports.UpdateNoteInput) (*domain.Note, error) {
	s.lastUpdate = in
	return s.note, s.err
}

func (s *stubNoteService) ListNotes(_ context.Context, userID string) ([]*domain.Note, error) {
	s.lastUserID = userID
	return s.notes, s.err
}

func (s *stubNoteService) DeleteNote(_ context.Context, userID, noteID string) error {
	s.lastUserID = userID
	s.lastNoteID = noteID
	return s.err
}

func (s *stubNoteService) SetNotePinned(_ context.Context, userID, noteID string, pinned bool) (*domain.Note, error) {
	s.lastUserID = userID
	s.lastNoteID = noteID
	s.lastPinned = pinned
	return s.note, s.err
}

func (s *stubNoteService) SearchNotes(_ context.Context, userID, query string) ([]*domain.Note, error) {
	s.lastUserID = userID
	s.lastQuery = query
	return s.notes, s.err
}

func sampleNote() *domain.Note {
	return &domain.Note{
		ID:        "note_1",
		Title:     "Groceries",
		Content:   "milk and eggs",
		Tags:      []string{"home"},
		UserID:    "user_1",
		CreatedOn: time.Now().UTC(),
	}
}

func authedContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newRequestContext(method, target, body)
	c.Set(middleware.ContextUserID, "user_1")
	return c, rec
}

// ---------------------------------------------------------------------------
// AddNote tests
// ---------------------------------------------------------------------------

func TestAddNote_Success(t *testing.T) {
	svc := &stubNoteService{note: sampleNote()}
	h := NewNoteHandler(svc)

	c, rec := authedContext(http.MethodPost, "/add-note",
		`{"title":"Groceries","content":"milk and eggs","tags":["home"]}`)

	if err := h.AddNote(c); err != nil {
		t.Fatalf("AddNote returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastCreate.UserID != "user_1" {
		t.Fatalf("owner must come from the session, got %q", svc.lastCreate.UserID)
	}
	if svc.lastCreate.Title != "Groceries" || len(svc.lastCreate.Tags) != 1 {
		t.Fatalf("unexpected create input: %+v", svc.lastCreate)
	}

	body := decodeBody(t, rec)
	if body["message"] != "Note Added Successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	note, _ := body["note"].(map[string]any)
	if note["id"] != "note_1" {
		t.Fatalf("unexpected note in response: %v", body["note"])
	}
}

func TestAddNote_MissingTitle(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{})

	c, _ := authedContext(http.MethodPost, "/add-note", `{"content":"body"}`)
	assertHTTPError(t, h.AddNote(c), http.StatusBadRequest)
}

func TestAddNote_Unauthenticated(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{})

	c, _ := newRequestContext(http.MethodPost, "/add-note",
		`{"title":"t","content":"c"}`)
	assertHTTPError(t, h.AddNote(c), http.StatusUnauthorized)
}

// ---------------------------------------------------------------------------
// EditNote tests
// ---------------------------------------------------------------------------

func TestEditNote_PartialBody(t *testing.T) {
	svc := &stubNoteService{note: sampleNote()}
	h := NewNoteHandler(svc)

	c, rec := authedContext(http.MethodPut, "/edit-note/note_1", `{"tags":["work"]}`)
	c.SetParamNames("id")
	c.SetParamValues("note_1")

	if err := h.EditNote(c); err != nil {
		t.Fatalf("EditNote returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	in := svc.lastUpdate
	if in.NoteID != "note_1" || in.UserID != "user_1" {
		t.Fatalf("unexpected update scope: %+v", in)
	}
	// Only the supplied field may be non-nil.
	if in.Title != nil || in.Content != nil || in.IsPinned != nil {
		t.Fatalf("omitted fields must stay nil: %+v", in)
	}
	if in.Tags == nil || len(*in.Tags) != 1 || (*in.Tags)[0] != "work" {
		t.Fatalf("tags not bound: %+v", in.Tags)
	}
}

func TestEditNote_NoFields(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{err: domain.ErrNoChanges})

	c, _ := authedContext(http.MethodPut, "/edit-note/note_1", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("note_1")

	if err := h.EditNote(c); !errors.Is(err, domain.ErrNoChanges) {
		t.Fatalf("expected ErrNoChanges passthrough, got %v", err)
	}
}

func TestEditNote_NotFound(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{err: domain.ErrNoteNotFound})

	c, _ := authedContext(http.MethodPut, "/edit-note/note_999", `{"title":"new"}`)
	c.SetParamNames("id")
	c.SetParamValues("note_999")

	if err := h.EditNote(c); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound passthrough, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetAllNotes tests
// ---------------------------------------------------------------------------

func TestGetAllNotes_Success(t *testing.T) {
	svc := &stubNoteService{notes: []*domain.Note{sampleNote()}}
	h := NewNoteHandler(svc)

	c, rec := authedContext(http.MethodGet, "/get-all", "")

	if err := h.GetAllNotes(c); err != nil {
		t.Fatalf("GetAllNotes returned error: %v", err)
	}
	if svc.lastUserID != "user_1" {
		t.Fatalf("expected list scoped to user_1, got %q", svc.lastUserID)
	}

	body := decodeBody(t, rec)
	notes, _ := body["notes"].([]any)
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %v", body["notes"])
	}
}

func TestGetAllNotes_Empty(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{})

	c, rec := authedContext(http.MethodGet, "/get-all", "")
	if err := h.GetAllNotes(c); err != nil {
		t.Fatalf("GetAllNotes returned error: %v", err)
	}

	// An empty result renders as [], never null.
	body := decodeBody(t, rec)
	notes, ok := body["notes"].([]any)
	if !ok || len(notes) != 0 {
		t.Fatalf("expected empty array, got %v", body["notes"])
	}
}

// ---------------------------------------------------------------------------
// DeleteNote tests
// ---------------------------------------------------------------------------

func TestDeleteNote_Success(t *testing.T) {
	svc := &stubNoteService{}
	h := NewNoteHandler(svc)

	c, rec := authedContext(http.MethodDelete, "/delete-note/note_1", "")
	c.SetParamNames("id")
	c.SetParamValues("note_1")

	if err := h.DeleteNote(c); err != nil {
		t.Fatalf("DeleteNote returned error: %v", err)
	}
	if svc.lastNoteID != "note_1" || svc.lastUserID != "user_1" {
		t.Fatalf("unexpected delete scope: note=%q user=%q", svc.lastNoteID, svc.lastUserID)
	}

	body := decodeBody(t, rec)
	if body["message"] != "Note Deleted Successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestDeleteNote_NotFound(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{err: domain.ErrNoteNotFound})

	c, _ := authedContext(http.MethodDelete, "/delete-note/note_999", "")
	c.SetParamNames("id")
	c.SetParamValues("note_999")

	if err := h.DeleteNote(c); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound passthrough, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateNotePinned tests
// ---------------------------------------------------------------------------

func TestUpdateNotePinned_Pin(t *testing.T) {
	svc := &stubNoteService{note: sampleNote()}
	h := NewNoteHandler(svc)

	c, _ := authedContext(http.MethodPut, "/update-note-pinned/note_1", `{"isPinned":true}`)
	c.SetParamNames("id")
	c.SetParamValues("note_1")

	if err := h.UpdateNotePinned(c); err != nil {
		t.Fatalf("UpdateNotePinned returned error: %v", err)
	}
	if !svc.lastPinned {
		t.Fatalf("expected pinned=true")
	}
}

func TestUpdateNotePinned_AbsentFlagUnpins(t *testing.T) {
	svc := &stubNoteService{note: sampleNote(), lastPinned: true}
	h := NewNoteHandler(svc)

	c, _ := authedContext(http.MethodPut, "/update-note-pinned/note_1", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("note_1")

	if err := h.UpdateNotePinned(c); err != nil {
		t.Fatalf("UpdateNotePinned returned error: %v", err)
	}
	if svc.lastPinned {
		t.Fatalf("absent isPinned must unpin")
	}
}

// ---------------------------------------------------------------------------
// SearchNotes tests
// ---------------------------------------------------------------------------

func TestSearchNotes_Success(t *testing.T) {
	svc := &stubNoteService{notes: []*domain.Note{sampleNote()}}
	h := NewNoteHandler(svc)

	c, rec := authedContext(http.MethodGet, "/search-notes?query=milk", "")

	if err := h.SearchNotes(c); err != nil {
		t.Fatalf("SearchNotes returned error: %v", err)
	}
	if svc.lastQuery != "milk" || svc.lastUserID != "user_1" {
		t.Fatalf("unexpected search input: query=%q user=%q", svc.lastQuery, svc.lastUserID)
	}

	body := decodeBody(t, rec)
	notes, _ := body["notes"].([]any)
	if len(notes) != 1 {
		t.Fatalf("expected 1 match, got %v", body["notes"])
	}
}

func TestSearchNotes_MissingQuery(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{})

	c, _ := authedContext(http.MethodGet, "/search-notes", "")
	httpErr := assertHTTPError(t, h.SearchNotes(c), http.StatusBadRequest)
	if httpErr.Message != "Search Query is Required" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}
