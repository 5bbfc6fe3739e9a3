package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/credkit/pkg/jwt"
	"github.com/dmitrymomot/credkit/pkg/logger"
)

// TokenVerifier checks a session token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// Gate guards handlers behind a valid session token for an active user.
type Gate struct {
	verifier  TokenVerifier
	finder    UserFinder
	extractor jwt.TokenExtractorFunc
	respond   func(w http.ResponseWriter, r *http.Request, err error)
	logger    *slog.Logger
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithExtractor changes where the token is read from. Defaults to the
// Authorization bearer header.
func WithExtractor(fn jwt.TokenExtractorFunc) GateOption {
	return func(g *Gate) {
		if fn != nil {
			g.extractor = fn
		}
	}
}

// WithErrorResponder renders rejections. The error is ErrUnauthenticated or
// ErrStorageUnavailable.
func WithErrorResponder(fn func(w http.ResponseWriter, r *http.Request, err error)) GateOption {
	return func(g *Gate) {
		if fn != nil {
			g.respond = fn
		}
	}
}

// WithGateLogger sets the logger used for rejection reasons.
func WithGateLogger(l *slog.Logger) GateOption {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGate creates a Gate that verifies tokens with verifier and loads the
// subject through finder.
func NewGate(verifier TokenVerifier, finder UserFinder, opts ...GateOption) *Gate {
	g := &Gate{
		verifier:  verifier,
		finder:    finder,
		extractor: jwt.BearerTokenExtractor,
		respond:   defaultRespond,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(logger.Component("auth_gate"))
	return g
}

// Middleware rejects requests without a valid token and otherwise stores the
// user and raw token on the request context.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, token, err := g.Authenticate(r)
		if err != nil {
			g.respond(w, r, err)
			return
		}

		ctx := SetUserToContext(r.Context(), user)
		ctx = jwt.SetToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authenticate resolves the request's token to an active user. The specific
// reason for a rejection is logged, never returned.
func (g *Gate) Authenticate(r *http.Request) (*User, string, error) {
	ctx := r.Context()

	token, err := g.extractor(r)
	if err != nil {
		g.reject(r, rejectReason(err), err)
		return nil, "", ErrUnauthenticated
	}

	claims, err := g.verifier.Verify(token)
	if err != nil {
		g.reject(r, rejectReason(err), err)
		return nil, "", ErrUnauthenticated
	}

	rec, err := g.finder.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			g.reject(r, "unknown_subject", nil)
			return nil, "", ErrUnauthenticated
		}
		return nil, "", errors.Join(ErrStorageUnavailable, err)
	}
	if !rec.Active {
		g.reject(r, "inactive", nil)
		return nil, "", ErrUnauthenticated
	}

	return rec.ToUser(), token, nil
}

func (g *Gate) reject(r *http.Request, reason string, err error) {
	attrs := []slog.Attr{logger.Reason(reason), slog.String("path", r.URL.Path)}
	if err != nil {
		attrs = append(attrs, logger.Error(err))
	}
	g.logger.LogAttrs(r.Context(), slog.LevelInfo, "request rejected", attrs...)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrMissingToken):
		return "missing_token"
	case errors.Is(err, jwt.ErrExpiredToken):
		return "expired"
	case errors.Is(err, jwt.ErrInvalidSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}

func defaultRespond(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrUnauthenticated) {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
