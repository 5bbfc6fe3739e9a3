package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is a service that exposes its routes as an http.Handler.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions selects the services to mount. Nil services are skipped.
type RouterOptions struct {
	Credentials Mountable
}

// Router creates the account module router.
//
// Example:
//
//	respond := account.NewErrorResponder(log)
//	gate := auth.NewGate(issuer, store, auth.WithErrorResponder(respond))
//	creds := account.NewCredentials(svc, gate.Middleware, log, account.WithResponder(respond))
//
//	r := chi.NewRouter()
//	r.Mount("/", account.Router(account.RouterOptions{Credentials: creds}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Credentials != nil {
		r.Mount("/auth", opts.Credentials.Handle())
	}

	return r
}
