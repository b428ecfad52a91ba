package cases

import (
	"github.com/aiharmwatch/harmwatch/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "harmwatch"

var (
	casesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cases",
			Name:      "created_total",
			Help:      "Total cases created by severity",
		},
		[]string{"severity"},
	)

	caseViews = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cases",
			Name:      "views_total",
			Help:      "Total case detail fetches that incremented a view counter",
		},
	)

	casesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cases",
			Name:      "total",
			Help:      "Number of cases held by the registry",
		},
	)
)

// otherSeverity labels severities outside the known set.
const otherSeverity = "other"

func recordCaseCreated(severity domain.Severity) {
	casesCreated.WithLabelValues(severityLabel(severity)).Inc()
}

// severityLabel keeps the label set bounded since severity is free-form input.
func severityLabel(severity domain.Severity) string {
	switch severity {
	case domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh, domain.SeverityCritical:
		return string(severity)
	default:
		return otherSeverity
	}
}

func recordCaseViewed() {
	caseViews.Inc()
}

// RecordRegistrySize updates the registry size gauge.
func RecordRegistrySize(n int) {
	casesTotal.Set(float64(n))
}
