package client

import (
	"context"
	"net/http"
)

// User is the account shape returned by the auth endpoints.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles,omitempty"`
}

// AuthResponse is the login/register response. Hand AccessToken to a
// TokenSource to authenticate subsequent requests.
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

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// Register creates an account and returns a token pair.
func (c *Client) Register(ctx context.Context, name, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", registerRequest{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// StaticToken returns a TokenSource that always yields token.
// An empty token makes all requests anonymous.
func StaticToken(token string) TokenSource {
	return func(context.Context) (string, error) { return token, nil }
}
