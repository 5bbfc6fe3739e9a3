// Package redis connects to Redis with go-redis/v9.
//
// Connect parses a redis:// URL, pings until the server answers and gives up
// after RetryAttempts or ConnectTimeout, whichever comes first. Healthcheck
// adapts a client to httpserver readiness checks.
package redis
