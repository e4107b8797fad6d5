// Package grpc serves the standard grpc.health.v1.Health service so that
// orchestrators probing over gRPC see the same status as GET /health.
package grpc
