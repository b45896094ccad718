// Package middleware holds the Echo middleware shared by every route.
//
// It covers request ids, the request-scoped logger, New Relic and
// OpenTelemetry tracing, Prometheus metrics, CORS, panic recovery and the
// global error handler that turns every returned error into a response.
package middleware
