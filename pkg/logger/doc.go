// Package logger builds *slog.Logger instances with consistent defaults and
// request-scoped attribute injection.
//
// New applies functional options on top of production-safe defaults (JSON,
// INFO, stdout). Environment presets switch to a readable text handler in
// development:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "credkit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Context extractors run on every record, so values stored on the request
// context (request id, client ip) appear on every line logged with
// InfoContext/ErrorContext without threading them through call sites.
//
// The attr helpers (Error, UserID, Component, Event, ...) keep attribute keys
// uniform across packages.
package logger
