package main

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/dmitrymomot/credkit/modules/account"
	"github.com/dmitrymomot/credkit/pkg/clientip"
	"github.com/dmitrymomot/credkit/pkg/config"
	"github.com/dmitrymomot/credkit/pkg/httpserver"
	"github.com/dmitrymomot/credkit/pkg/jwt"
	"github.com/dmitrymomot/credkit/pkg/logger"
	"github.com/dmitrymomot/credkit/pkg/password"
	"github.com/dmitrymomot/credkit/pkg/requestid"
	"github.com/dmitrymomot/credkit/svc/auth"
)

func main() {
	var app appConfig
	var logCfg logger.Config
	config.MustLoad(&app)
	config.MustLoad(&logCfg)

	logOpts, err := logCfg.Options()
	if err != nil {
		slog.Error("invalid logger configuration", logger.Error(err))
		os.Exit(1)
	}
	log := logger.New(append([]logger.Option{
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}, logOpts...)...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), app, log); err != nil {
		log.Error("run failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, app appConfig, log *slog.Logger) error {
	log.Info("startup", slog.Int("GOMAXPROCS", runtime.GOMAXPROCS(0)), slog.String("user_store", app.UserStore))

	var (
		jwtCfg    jwt.Config
		passCfg   password.Config
		authCfg   auth.Config
		httpCfg   httpserver.Config
		clientCfg clientip.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&jwtCfg) },
		func() error { return config.Load(&passCfg) },
		func() error { return config.Load(&authCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&clientCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	issuer, err := jwt.New(jwtCfg)
	if err != nil {
		return err
	}
	hasher, err := password.New(passCfg)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, app.UserStore, log)
	if err != nil {
		return err
	}
	defer store.close()

	svcOpts := append(authCfg.Options(), auth.WithLogger(log))
	svc := auth.NewService(store, hasher, issuer, append(svcOpts, auditOptions(log)...)...)

	respond := account.NewErrorResponder(log)
	gate := auth.NewGate(issuer, store,
		auth.WithErrorResponder(respond),
		auth.WithGateLogger(log),
	)
	creds := account.NewCredentials(svc, gate.Middleware, log,
		account.WithResponder(respond),
		account.WithMaxBodySize(app.MaxBodySize),
	)

	router := newRouter(routerDeps{
		log:         log,
		clientIP:    clientip.New(clientCfg),
		account:     account.Router(account.RouterOptions{Credentials: creds}),
		ready:       []httpserver.Check{store.ready},
		readyWithin: app.ReadinessTimeout,
	})

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, router)
}
