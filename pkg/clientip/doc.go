// Package clientip resolves the originating client address of a request.
//
// By default only RemoteAddr is used. Proxy headers are honored only when
// listed in Config.TrustedHeaders, because any client can send them:
//
//	r := clientip.New(clientip.Config{TrustedHeaders: []string{"X-Forwarded-For"}})
//	router.Use(r.Middleware)
//
// The resolved address is stored on the request context and can be added to
// log records with LoggerExtractor.
package clientip
