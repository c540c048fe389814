package interfaces

import "github.com/prometheus/client_golang/prometheus"

// Metrics defines a generic metrics collection interface.
type Metrics interface {
	GetRegistry() *prometheus.Registry
	RegisterCounter(name, help string)
	RegisterHistogram(name, help string, buckets []float64)
	IncCounter(name string)
	AddCounter(name string, value float64)
	ObserveHistogram(name string, value float64)
}
