package api

import (
	"context"
	"net/http"

	"eduforum/internal/client/session"
)

// Auth endpoint paths. Logout has no path: it is purely local (the caller
// clears the credential store, no server call is made).
const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
	profilePath  = "/api/users/profile"
)

// AuthSession is the server's answer to a successful login or register:
// the bearer token and the user it identifies.
type AuthSession struct {
	Token string               `json:"token"`
	User  session.UserSnapshot `json:"user"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token and user snapshot.
// Persisting them is the caller's job.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthSession, error) {
	var out AuthSession
	in := credentialsRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, loginPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and, like Login, returns a fresh session.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthSession, error) {
	var out AuthSession
	in := credentialsRequest{Username: username, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, registerPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the authenticated user's snapshot.
func (c *Client) Profile(ctx context.Context) (*session.UserSnapshot, error) {
	var out session.UserSnapshot
	if err := c.do(ctx, http.MethodGet, profilePath, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
