// Package metrics defines the custom Prometheus metrics for the clinic API.
// It is the single source of truth for metric names, labels, and help
// strings. Request-level metrics (latency, status codes) come from the
// echoprometheus middleware; these counters cover domain events only.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// PatientsCreatedTotal counts successfully registered patients.
var PatientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patients_created_total",
		Help:      "Total number of patients registered.",
	},
)

// ConsultationsCreatedTotal counts successfully registered consultations.
var ConsultationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "consultations_created_total",
		Help:      "Total number of consultations registered.",
	},
)

// LoginAttemptsTotal counts credential checks.
// Label:
//   - result: "accepted", "denied", or "invalid" (blank fields rejected
//     before reaching the store)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
