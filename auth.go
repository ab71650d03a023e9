package petkeep

import (
	"context"
	"fmt"
)

// AuthService handles login, logout, and the current-user lookup.
//
// Session lifecycle: the only transition into an authenticated session is a
// successful Login, and the only transition out is Logout. There is no
// token-expiry detection or refresh; an expired token surfaces as an
// *APIError on the next authenticated call and the caller re-logs in.
type AuthService struct {
	client *Client
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the server's response to a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// Login authenticates with email and password. On success the returned
// token is persisted to the session store before the response is returned;
// on any failure the store is left untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := s.client.post(ctx, "/auth/login/", loginRequest{Email: email, Password: password}, false, &resp); err != nil {
		return nil, err
	}

	if err := s.client.sessions.SetToken(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("failed to persist session token: %w", err)
	}
	return &resp, nil
}

// Logout invalidates the session server-side and clears the local token.
// The server call's outcome is intentionally discarded: local clearing is
// unconditional and runs last, so the client never holds a stale credential
// after a logout attempt.
func (s *AuthService) Logout(ctx context.Context) error {
	_ = s.client.post(ctx, "/auth/logout/", nil, true, nil)
	return s.client.sessions.ClearToken(ctx)
}

// Me returns the currently authenticated user.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.get(ctx, "/auth/me/", true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
