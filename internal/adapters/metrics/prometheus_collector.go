package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "colony"
	// Subsystem for planner metrics
	subsystem = "planner"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry
)

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}
