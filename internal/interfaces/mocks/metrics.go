package mocks

import "github.com/prometheus/client_golang/prometheus"

// Metrics is a no-op implementation of interfaces.Metrics for tests.
type Metrics struct{}

func (m *Metrics) GetRegistry() *prometheus.Registry { return prometheus.NewRegistry() }

func (m *Metrics) RegisterCounter(name, help string) {}

func (m *Metrics) RegisterHistogram(name, help string, buckets []float64) {}

func (m *Metrics) IncCounter(name string) {}

func (m *Metrics) AddCounter(name string, value float64) {}

func (m *Metrics) ObserveHistogram(name string, value float64) {}
