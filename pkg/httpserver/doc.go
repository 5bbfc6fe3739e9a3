// Package httpserver runs an http.Handler with graceful shutdown and
// health-check handlers.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// drains in-flight requests within ShutdownTimeout. Errors wrap ErrStart or
// ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// LivenessHandler answers ALIVE unconditionally. ReadinessHandler runs its
// checks with the request context and answers READY or NOT_READY.
package httpserver
