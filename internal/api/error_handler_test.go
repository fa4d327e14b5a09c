package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/scribbly/notes-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrMissingFields, http.StatusBadRequest, "Required Fields Missing"},
		{domain.ErrNoChanges, http.StatusBadRequest, "No Changes Provided"},
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "Invalid Credentials"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Too Many Login Attempts"},
		{domain.ErrNoteNotFound, http.StatusNotFound, "Note Not Found"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User Not Found"},
		{domain.ErrUserExists, http.StatusConflict, "User Already Exists"},
		{errors.New("database exploded"), http.StatusInternalServerError, "Internal Server Error"},
		{echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), http.StatusUnauthorized, "invalid token"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.code, rec.Code)
		}

		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%v: invalid JSON body: %v", tc.err, err)
		}
		if !body.Error {
			t.Fatalf("%v: expected error=true", tc.err)
		}
		if body.Message != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, body.Message)
		}
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = c.NoContent(http.StatusOK)
	handler(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response was overwritten: %d", rec.Code)
	}
}
