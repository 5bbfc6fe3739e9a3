package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/credkit/pkg/logger"
	"github.com/dmitrymomot/credkit/svc/auth"
)

// auditHook logs an account event for user. Request id and client ip come
// from the context extractors configured on log.
func auditHook(log *slog.Logger, event string) func(context.Context, *auth.User) error {
	audit := log.With(logger.Component("audit"))
	return func(ctx context.Context, user *auth.User) error {
		audit.InfoContext(ctx, "account event", logger.Event(event), logger.UserID(user.ID))
		return nil
	}
}

func auditOptions(log *slog.Logger) []auth.ServiceOption {
	return []auth.ServiceOption{
		auth.WithAfterRegister(auditHook(log, "user_registered")),
		auth.WithAfterLogin(auditHook(log, "user_logged_in")),
	}
}
