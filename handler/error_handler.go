package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/credkit/pkg/binder"
	"github.com/dmitrymomot/credkit/pkg/logger"
	"github.com/dmitrymomot/credkit/pkg/validator"
)

// ErrorInfo is the classified, client-safe view of an error.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
}

// ErrorClassifier maps an error to its response. Returning ok=false defers to
// the next classifier.
type ErrorClassifier func(err error) (info ErrorInfo, ok bool)

// DefaultClassifier handles transport-level errors and falls back to 500.
func DefaultClassifier(err error) ErrorInfo {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return ErrorInfo{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       ErrUnprocessableEntity.Key,
			Message:    "request validation failed",
			Details:    verrs.Map(),
		}
	}

	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return infoFromHTTPError(ErrRequestTooLarge)
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return infoFromHTTPError(ErrUnsupportedMediaType)
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return ErrorInfo{StatusCode: http.StatusBadRequest, Code: ErrBadRequest.Key, Message: "malformed request body"}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return infoFromHTTPError(httpErr)
	}

	return infoFromHTTPError(ErrInternalServerError)
}

func infoFromHTTPError(e HTTPError) ErrorInfo {
	return ErrorInfo{StatusCode: e.Code, Code: e.Key, Message: http.StatusText(e.Code)}
}

type errorHandlerConfig struct {
	classifiers []ErrorClassifier
}

// ErrorHandlerOption configures NewErrorResponder and NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

// WithClassifier adds a classifier consulted before DefaultClassifier.
func WithClassifier(c ErrorClassifier) ErrorHandlerOption {
	return func(cfg *errorHandlerConfig) {
		if c != nil {
			cfg.classifiers = append(cfg.classifiers, c)
		}
	}
}

// ErrorResponder writes err to w as a JSON error envelope.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// NewErrorResponder builds the single place where errors become responses.
// Client errors log at warn, server errors at error; 5xx messages are always
// the generic status text.
func NewErrorResponder(log *slog.Logger, opts ...ErrorHandlerOption) ErrorResponder {
	if log == nil {
		log = slog.Default()
	}
	cfg := &errorHandlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	classify := func(err error) ErrorInfo {
		for _, c := range cfg.classifiers {
			if info, ok := c(err); ok {
				return info
			}
		}
		return DefaultClassifier(err)
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		info := classify(err)
		if info.StatusCode >= http.StatusInternalServerError {
			info.Message = http.StatusText(info.StatusCode)
			info.Details = nil
		}

		level := slog.LevelWarn
		if info.StatusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("code", info.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		body := JSONResponse{Error: &ErrorDetail{
			Code:    info.Code,
			Message: info.Message,
			Details: info.Details,
		}}
		if renderErr := writeJSON(w, info.StatusCode, body); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to write error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}

// NewErrorHandler adapts NewErrorResponder to Wrap's ErrorHandler.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler[Context] {
	respond := NewErrorResponder(log, opts...)
	return func(ctx Context, err error) {
		respond(ctx.ResponseWriter(), ctx.Request(), err)
	}
}
