package middleware

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// NewSessionHooks returns server hooks that log client session lifecycle.
func NewSessionHooks() *server.Hooks {
	hooks := &server.Hooks{}

	hooks.AddOnRegisterSession(func(ctx context.Context, sessionCli server.ClientSession) {
		logrus.WithField("session_id", sessionCli.SessionID()).Info("Session registered")
	})

	hooks.AddOnUnregisterSession(func(ctx context.Context, sessionCli server.ClientSession) {
		logrus.WithField("session_id", sessionCli.SessionID()).Info("Session unregistered")
	})

	return hooks
}
