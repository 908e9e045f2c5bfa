package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// The auth endpoints replicate the development backend the mobile app ships
// against: tokens are fabricated from the current timestamp and no
// credentials are verified. They exist so the bearer-token path through the
// client can be exercised end to end. This is NOT an authentication system;
// do not expose it beyond local development.

// User is the account shape returned by the auth endpoints.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles,omitempty"`
}

// AuthResponse is the login/register response body.
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. The display name is derived from the
// email's local part, matching the reference backend.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name, _, _ := strings.Cut(req.Email, "@")
	writeJSON(w, http.StatusOK, authResponse(User{
		ID:    "1",
		Name:  name,
		Email: req.Email,
		Roles: []string{"user"},
	}))
}

// Register handles POST /auth/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, authResponse(User{
		ID:    "1",
		Name:  req.Name,
		Email: req.Email,
		Roles: []string{"user"},
	}))
}

// authResponse fabricates a token pair for the given user.
func authResponse(u User) AuthResponse {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return AuthResponse{
		User:         u,
		AccessToken:  "mock_token_" + now,
		RefreshToken: "mock_refresh_" + now,
		ExpiresIn:    3600,
	}
}
