package account

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/credkit/handler"
	"github.com/dmitrymomot/credkit/svc/auth"
)

// NewErrorResponder renders errors from the credential service and the auth
// gate as JSON error envelopes.
func NewErrorResponder(log *slog.Logger) handler.ErrorResponder {
	return handler.NewErrorResponder(log, handler.WithClassifier(classifyError))
}

// classifyError maps auth error kinds to responses. Validation and transport
// errors fall through to handler.DefaultClassifier.
func classifyError(err error) (handler.ErrorInfo, bool) {
	switch {
	case errors.Is(err, auth.ErrIdentityExists):
		return handler.ErrorInfo{
			StatusCode: http.StatusConflict,
			Code:       "identity_exists",
			Message:    "an account with this email already exists",
		}, true
	case errors.Is(err, auth.ErrInvalidCredentials):
		return handler.ErrorInfo{
			StatusCode: http.StatusUnauthorized,
			Code:       "invalid_credentials",
			Message:    "invalid email or password",
		}, true
	case errors.Is(err, auth.ErrUnauthenticated):
		return handler.ErrorInfo{
			StatusCode: http.StatusUnauthorized,
			Code:       handler.ErrUnauthorized.Key,
			Message:    "authentication required",
		}, true
	case errors.Is(err, auth.ErrOverloaded):
		return handler.ErrorInfo{
			StatusCode: http.StatusServiceUnavailable,
			Code:       handler.ErrServiceUnavailable.Key,
		}, true
	case errors.Is(err, auth.ErrStorageUnavailable), errors.Is(err, auth.ErrCorruptCredential):
		return handler.ErrorInfo{
			StatusCode: http.StatusInternalServerError,
			Code:       handler.ErrInternalServerError.Key,
		}, true
	}
	return handler.ErrorInfo{}, false
}
