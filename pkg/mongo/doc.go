// Package mongo connects to MongoDB with the official v2 driver.
//
// Connect retries until the server answers a ping or the attempts run out,
// honoring context cancellation between attempts. Healthcheck adapts a client
// to httpserver readiness checks.
package mongo
