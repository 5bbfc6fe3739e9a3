// Package requestid assigns every HTTP request a correlation id.
//
// Middleware reuses a well-formed inbound X-Request-ID header or generates a
// UUID, echoes it on the response and stores it on the request context.
// LoggerExtractor plugs the id into logger.WithContextExtractors so every
// context-aware log line carries it.
package requestid
