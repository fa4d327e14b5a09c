package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scribbly/notes-api/internal/api/metrics"
	"github.com/scribbly/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. Every operation is
// scoped to the authenticated user injected by the Auth middleware.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// AddNote handles POST /add-note.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addNoteRequest  true  "Note details"
// @Success      200   {object}  noteEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /add-note [post]
func (h *NoteHandler) AddNote(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.CreateNote(c.Request().Context(), ports.CreateNoteInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return err
	}

	metrics.NotesCreatedTotal.Inc()
	return c.JSON(http.StatusOK, noteEnvelope{
		Note:    toNoteResponse(note),
		Message: "Note Added Successfully",
	})
}

// EditNote handles PUT /edit-note/:id. Only supplied fields change.
//
// @Summary      Edit a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Note id"
// @Param        body  body      editNoteRequest  true  "Fields to change"
// @Success      200   {object}  noteEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /edit-note/{id} [put]
func (h *NoteHandler) EditNote(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req editNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	note, err := h.service.UpdateNote(c.Request().Context(), ports.UpdateNoteInput{
		UserID:   userID,
		NoteID:   c.Param("id"),
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, noteEnvelope{
		Note:    toNoteResponse(note),
		Message: "Note Updated",
	})
}

// GetAllNotes handles GET /get-all. Pinned notes sort first.
//
// @Summary      List all notes owned by the caller
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  notesEnvelope
// @Failure      401  {object}  errorResponse
// @Router       /get-all [get]
func (h *NoteHandler) GetAllNotes(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	notes, err := h.service.ListNotes(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notesEnvelope{
		Notes:   toNotesResponse(notes),
		Message: "All Notes Retrieved",
	})
}

// DeleteNote handles DELETE /delete-note/:id.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Note id"
// @Success      200  {object}  messageEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /delete-note/{id} [delete]
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteNote(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.NotesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageEnvelope{
		Message: "Note Deleted Successfully",
	})
}

// UpdateNotePinned handles PUT /update-note-pinned/:id. An absent isPinned
// unpins the note.
//
// @Summary      Pin or unpin a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Note id"
// @Param        body  body      updatePinnedRequest  true  "Pin flag"
// @Success      200   {object}  noteEnvelope
// @Failure      404   {object}  errorResponse
// @Router       /update-note-pinned/{id} [put]
func (h *NoteHandler) UpdateNotePinned(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updatePinnedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	pinned := false
	if req.IsPinned != nil {
		pinned = *req.IsPinned
	}

	note, err := h.service.SetNotePinned(c.Request().Context(), userID, c.Param("id"), pinned)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, noteEnvelope{
		Note:    toNoteResponse(note),
		Message: "Note Updated",
	})
}

// SearchNotes handles GET /search-notes?query=...
//
// @Summary      Search notes by substring
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  true  "Case-insensitive substring"
// @Success      200    {object}  notesEnvelope
// @Failure      400    {object}  errorResponse
// @Router       /search-notes [get]
func (h *NoteHandler) SearchNotes(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search Query is Required")
	}

	notes, err := h.service.SearchNotes(c.Request().Context(), userID, query)
	if err != nil {
		return err
	}

	metrics.SearchesTotal.Inc()
	return c.JSON(http.StatusOK, notesEnvelope{
		Notes:   toNotesResponse(notes),
		Message: "Notes Matching the Search Query Retrieved Successfully",
	})
}
