package account

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/credkit/handler"
	"github.com/dmitrymomot/credkit/pkg/binder"
	"github.com/dmitrymomot/credkit/svc/auth"
)

// CredentialService is the subset of *auth.Service used by the routes.
type CredentialService interface {
	Create(ctx context.Context, in auth.CreateInput) (*auth.User, error)
	Register(ctx context.Context, in auth.CreateInput) (*auth.Session, error)
	Login(ctx context.Context, in auth.LoginInput) (*auth.Session, error)
	CheckToken(ctx context.Context, user *auth.User) (*auth.Session, error)
	List(ctx context.Context) ([]*auth.User, error)
}

// Credentials serves the /auth routes.
type Credentials struct {
	svc          CredentialService
	gate         func(http.Handler) http.Handler
	errorHandler handler.ErrorHandler[handler.Context]
	maxBodySize  int64
}

// CredentialsOption configures Credentials.
type CredentialsOption func(*Credentials)

// WithResponder replaces the error responder. Pass the same responder the
// gate uses so both render errors identically.
func WithResponder(respond handler.ErrorResponder) CredentialsOption {
	return func(c *Credentials) {
		if respond != nil {
			c.errorHandler = func(ctx handler.Context, err error) {
				respond(ctx.ResponseWriter(), ctx.Request(), err)
			}
		}
	}
}

// WithMaxBodySize limits JSON request bodies.
func WithMaxBodySize(n int64) CredentialsOption {
	return func(c *Credentials) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// NewCredentials wires svc behind gate. gate protects the list and
// check-token routes.
func NewCredentials(svc CredentialService, gate func(http.Handler) http.Handler, log *slog.Logger, opts ...CredentialsOption) *Credentials {
	c := &Credentials{
		svc:         svc,
		gate:        gate,
		maxBodySize: binder.DefaultMaxJSONSize,
	}
	WithResponder(NewErrorResponder(log))(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle returns the credential routes.
func (c *Credentials) Handle() http.Handler {
	r := chi.NewRouter()
	jsonBinder := binder.JSON(binder.WithMaxSize(c.maxBodySize))

	r.Post("/", handler.Wrap(c.create,
		handler.WithBinder[handler.Context, auth.CreateInput](jsonBinder),
		handler.WithErrorHandler[handler.Context, auth.CreateInput](c.errorHandler),
	))
	r.Post("/register", handler.Wrap(c.register,
		handler.WithBinder[handler.Context, auth.CreateInput](jsonBinder),
		handler.WithErrorHandler[handler.Context, auth.CreateInput](c.errorHandler),
	))
	r.Post("/login", handler.Wrap(c.login,
		handler.WithBinder[handler.Context, auth.LoginInput](jsonBinder),
		handler.WithErrorHandler[handler.Context, auth.LoginInput](c.errorHandler),
	))

	r.Group(func(r chi.Router) {
		r.Use(c.gate)
		r.Get("/", handler.Wrap(c.list,
			handler.WithErrorHandler[handler.Context, struct{}](c.errorHandler),
		))
		r.Get("/check-token", handler.Wrap(c.checkToken,
			handler.WithErrorHandler[handler.Context, struct{}](c.errorHandler),
		))
	})

	return r
}

func (c *Credentials) create(ctx handler.Context, in auth.CreateInput) handler.Response {
	user, err := c.svc.Create(ctx, in)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Created(user)
}

func (c *Credentials) register(ctx handler.Context, in auth.CreateInput) handler.Response {
	session, err := c.svc.Register(ctx, in)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Created(session)
}

func (c *Credentials) login(ctx handler.Context, in auth.LoginInput) handler.Response {
	session, err := c.svc.Login(ctx, in)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(session)
}

func (c *Credentials) list(ctx handler.Context, _ struct{}) handler.Response {
	users, err := c.svc.List(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(users)
}

func (c *Credentials) checkToken(ctx handler.Context, _ struct{}) handler.Response {
	session, err := c.svc.CheckToken(ctx, auth.GetUserFromContext(ctx))
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(session)
}
