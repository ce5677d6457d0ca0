// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// TxHashServiceName is the service name reported by the health server.
const TxHashServiceName = "babylon.txhash.v1.TxHashService"

// NewHealthServer returns a gRPC health server reporting the tx hash service
// as serving.
func NewHealthServer() *health.Server {
	s := health.NewServer()
	s.SetServingStatus(TxHashServiceName, healthpb.HealthCheckResponse_SERVING)
	return s
}
