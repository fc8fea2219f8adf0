// Package services contains application services for the eduforum client.
// This file defines the authentication service: login, register, the purely
// local logout, and hydration of the auth state from the persisted
// credential at startup.
package services

import (
	"context"
	"fmt"
	"time"

	"eduforum/internal/client/api"
	"eduforum/internal/client/session"
	"eduforum/internal/logging"
)

// AuthAPI is the slice of the forum API the auth service needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*api.AuthSession, error)
	Register(ctx context.Context, username, email, password string) (*api.AuthSession, error)
}

// AuthService drives the session lifecycle.
//
// Contract:
//   - Login/Register: authenticate against the server, persist the bare
//     token with the user snapshot atomically, flip the auth state.
//   - Logout: purely local — clear the store and the state, no server call.
//   - Hydrate: restore the auth state from the persisted credential; ends
//     the state's loading phase either way.
//   - TokenExpiry: expiry of the stored token, when it can be determined.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*session.UserSnapshot, error)
	Register(ctx context.Context, username, email, password string) (*session.UserSnapshot, error)
	Logout(ctx context.Context) error
	Hydrate(ctx context.Context) error
	TokenExpiry(ctx context.Context) (time.Time, bool)
}

type authService struct {
	api   AuthAPI
	store session.Store
	state *session.State
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// credential store and auth state.
func NewAuthService(apiClient AuthAPI, store session.Store, state *session.State, log logging.Logger) AuthService {
	return &authService{api: apiClient, store: store, state: state, log: log}
}

func (a *authService) Login(ctx context.Context, username, password string) (*session.UserSnapshot, error) {
	sess, err := a.api.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return a.establish(ctx, sess)
}

func (a *authService) Register(ctx context.Context, username, email, password string) (*session.UserSnapshot, error) {
	sess, err := a.api.Register(ctx, username, email, password)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return a.establish(ctx, sess)
}

// establish persists a fresh server session and flips the auth state.
// The token is stored bare: at most one "Bearer " prefix is stripped.
func (a *authService) establish(ctx context.Context, sess *api.AuthSession) (*session.UserSnapshot, error) {
	bare := session.StripBearerOnce(sess.Token)
	user := sess.User
	if err := a.store.Set(ctx, bare, &user); err != nil {
		return nil, fmt.Errorf("credential saving error: %w", err)
	}
	a.state.SetAuthenticated(&user)
	a.log.Info(ctx, "session established", "user", user.Username, "role", user.Role)
	return &user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("credential clearing error: %w", err)
	}
	a.state.SetAnonymous()
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Hydrate(ctx context.Context) error {
	token, user, err := a.store.Get(ctx)
	if err != nil {
		a.state.SetAnonymous()
		return fmt.Errorf("credential loading error: %w", err)
	}
	if token == "" || user == nil {
		a.state.SetAnonymous()
		return nil
	}
	a.state.SetAuthenticated(user)
	a.log.Info(ctx, "session hydrated", "user", user.Username)
	return nil
}

func (a *authService) TokenExpiry(ctx context.Context) (time.Time, bool) {
	token, _, err := a.store.Get(ctx)
	if err != nil || token == "" {
		return time.Time{}, false
	}
	return session.TokenExpiry(token)
}
