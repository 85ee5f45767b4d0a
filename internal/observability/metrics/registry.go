// Package metrics provides centralized Prometheus metrics for the registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry size gauges track how many entities of each kind have been constructed.
var (
	// AuthorsTotal tracks the number of registered authors
	AuthorsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_authors_total",
			Help: "Number of authors in the registry",
		},
	)

	// MagazinesTotal tracks the number of registered magazines
	MagazinesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_magazines_total",
			Help: "Number of magazines in the registry",
		},
	)

	// ArticlesTotal tracks the number of registered articles
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_articles_total",
			Help: "Number of articles in the registry",
		},
	)
)

// Operation metrics track constructor and mutator outcomes.
var (
	// ValidationFailuresTotal counts rejected inputs by entity kind and field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_validation_failures_total",
			Help: "Total number of inputs rejected by validation",
		},
		[]string{"entity", "field"},
	)

	// MutationsTotal counts successful constructions and mutations by operation
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_mutations_total",
			Help: "Total number of successful registry mutations",
		},
		[]string{"operation"},
	)
)
