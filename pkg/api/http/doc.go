// Package http provides the HTTP API implementation.
//
// The HTTP server exposes endpoints for:
//   - GET / greeting with the host identity
//   - GET /health static health check
//   - GET /metrics Prometheus metrics (optional)
//
// Every other path is left to gin's default 404 handling.
package http
