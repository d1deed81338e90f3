package http

import (
	"net/http"
	"time"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/service"
)

// AuthHandler serves sign-in and password-reset endpoints
type AuthHandler struct {
	accounts service.AccountService
}

func NewAuthHandler(accounts service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type loginResponse struct {
	UID          string       `json:"uid"`
	Email        string       `json:"email"`
	IDToken      string       `json:"idToken"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	User         *domain.User `json:"user,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, err)
		return
	}

	session, user, err := h.accounts.Login(r.Context(), fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		UID:          session.UID,
		Email:        session.Email,
		IDToken:      session.IDToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
		User:         user,
	})
}

func (h *AuthHandler) PasswordReset(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.accounts.SendPasswordReset(r.Context(), fields); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "reset email sent"})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
		return
	}

	user, err := h.accounts.Profile(r.Context(), caller.UID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
