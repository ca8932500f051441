package auth

import (
	"context"
	"errors"

	dom "sgc/internal/domain"
	"sgc/internal/service"

	"github.com/rs/zerolog/log"
)

// ErrAuthFailed is returned for unknown users and wrong passwords alike.
var ErrAuthFailed = errors.New("authentication failed")

// CredentialChecker validates a username/password pair.
type CredentialChecker interface {
	ValidateCredentials(ctx context.Context, username, password string) (dom.Usuario, error)
}

// Authenticator creates, resolves and ends authenticated sessions.
type Authenticator struct {
	sessions SessionStore
	users    CredentialChecker
}

func NewAuthenticator(sessions SessionStore, users CredentialChecker) *Authenticator {
	return &Authenticator{sessions: sessions, users: users}
}

// Authenticate checks the credentials and, on success, opens a new session
// bound to the usuario's identity. No session is created on failure.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (dom.Identity, string, error) {
	u, err := a.users.ValidateCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn().Str("username", username).Msg("login rejected")
			return dom.Identity{}, "", ErrAuthFailed
		}
		return dom.Identity{}, "", err
	}
	id := u.Identity()
	token, err := a.sessions.Create(ctx, id)
	if err != nil {
		return dom.Identity{}, "", err
	}
	log.Info().Str("username", id.Username).Msg("login")
	return id, token, nil
}

// CurrentIdentity returns the identity bound to token. An empty or unknown
// token yields false, which callers must treat as not authenticated.
func (a *Authenticator) CurrentIdentity(ctx context.Context, token string) (dom.Identity, bool, error) {
	if token == "" {
		return dom.Identity{}, false, nil
	}
	return a.sessions.Get(ctx, token)
}

// EndSession invalidates token. Ending an absent session is a no-op.
func (a *Authenticator) EndSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return a.sessions.Delete(ctx, token)
}
