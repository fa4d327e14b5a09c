package handler

import "time"

// --- Request / Response types ---

type createAccountRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the public account projection; the password hash never
// leaves the service.
type userResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"createdOn"`
}

type createAccountResponse struct {
	Error       bool         `json:"error"`
	User        userResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
	Message     string       `json:"message"`
}

type loginResponse struct {
	Error       bool   `json:"error"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

type getUserResponse struct {
	Error   bool         `json:"error"`
	User    userResponse `json:"user"`
	Message string       `json:"message"`
}
