/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records the client's view of every call it makes.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the client collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foody_client_requests_total",
				Help: "Requests issued against the Foody API by operation, method and status code.",
			},
			[]string{"operation", "method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "foody_client_request_duration_seconds",
				Help:    "Round trip time of Foody API requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "method"},
		),
	}

	reg.MustRegister(m.requests, m.duration)

	return m
}

// observe records one request. A zero status means the transport failed.
func (m *Metrics) observe(operation, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}

	code := "error"
	if status != 0 {
		code = strconv.Itoa(status)
	}

	m.requests.WithLabelValues(operation, method, code).Inc()
	m.duration.WithLabelValues(operation, method).Observe(duration.Seconds())
}

// Requests returns the counter, for inspection in tests and reports.
func (m *Metrics) Requests() *prometheus.CounterVec {
	return m.requests
}
