// Package auth implements the back office's single-operator login: one
// credential pair checked against configuration and a persisted session
// flag, mirroring how the studio actually runs (one braider, one login).
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

// Verifier checks a credential pair.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticVerifier compares against the configured credential pair in
// constant time.
type StaticVerifier struct {
	username string
	password string
}

// NewStaticVerifier creates a verifier for the configured credentials.
func NewStaticVerifier(username, password string) *StaticVerifier {
	return &StaticVerifier{username: username, password: password}
}

func (v *StaticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return userOK && passOK
}

// Gate tracks whether the operator is signed in. The flag survives
// restarts through the snapshot store.
type Gate struct {
	verifier Verifier
	store    *studio.SnapshotStore
	logger   *logging.Logger
}

// NewGate creates the login gate.
func NewGate(verifier Verifier, store *studio.SnapshotStore, logger *logging.Logger) *Gate {
	if verifier == nil {
		panic("auth: verifier required")
	}
	if store == nil {
		panic("auth: snapshot store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Gate{verifier: verifier, store: store, logger: logger.Named("auth")}
}

// Login verifies the credentials and opens the gate. Wrong credentials
// return ErrInvalidCredentials and leave the gate untouched.
func (g *Gate) Login(ctx context.Context, username, password string) error {
	if !g.verifier.Verify(username, password) {
		g.logger.Warn("login rejected", "username", username)
		return ErrInvalidCredentials
	}
	if err := g.store.SetAuthFlag(ctx, true); err != nil {
		return fmt.Errorf("auth: persist login: %w", err)
	}
	g.logger.Info("login accepted", "username", username)
	return nil
}

// Logout closes the gate. Logging out while logged out is a no-op.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.store.SetAuthFlag(ctx, false); err != nil {
		return fmt.Errorf("auth: persist logout: %w", err)
	}
	g.logger.Info("logout")
	return nil
}

// Authenticated reports whether the gate is open. Store errors read as
// closed.
func (g *Gate) Authenticated(ctx context.Context) bool {
	open, err := g.store.AuthFlag(ctx)
	if err != nil {
		g.logger.Error("failed to read auth flag", "error", err)
		return false
	}
	return open
}
