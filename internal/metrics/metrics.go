// Package metrics declares the site's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contact submission outcomes.
const (
	OutcomeAccepted    = "accepted"
	OutcomeInvalid     = "invalid"
	OutcomeFailed      = "failed"
	OutcomeRateLimited = "rate_limited"
)

var (
	// Lead capture metrics
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qura_contact_submissions_total",
		Help: "Contact form submissions by outcome",
	}, []string{"outcome"})

	ContactForwardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "qura_contact_forward_duration_seconds",
		Help:    "Time spent forwarding a submission to the form endpoint",
		Buckets: prometheus.DefBuckets,
	})

	// Server-side molecule rendering
	MoleculeRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qura_molecule_renders_total",
		Help: "Molecule images rendered, by format",
	}, []string{"format"})
)
