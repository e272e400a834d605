package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the sizing counters on a private registry
type Collector struct {
	registry *prometheus.Registry

	dispatches        *prometheus.CounterVec
	evaluations       *prometheus.CounterVec
	ruleApplications  *prometheus.CounterVec
	failures          *prometheus.CounterVec
	evaluationSeconds prometheus.Histogram
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "printshop",
			Subsystem: "sizing",
			Name:      "strategy_dispatch_total",
			Help:      "Sizing strategy lookups by material family and outcome.",
		}, []string{"family", "result"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "printshop",
			Subsystem: "sizing",
			Name:      "evaluations_total",
			Help:      "Bounds evaluations by material family.",
		}, []string{"family"}),
		ruleApplications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "printshop",
			Subsystem: "sizing",
			Name:      "rule_applications_total",
			Help:      "Attribute rule applications by attribute.",
		}, []string{"attribute"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "printshop",
			Subsystem: "sizing",
			Name:      "failures_total",
			Help:      "Failed sizing operations by operation.",
		}, []string{"operation"}),
		evaluationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "printshop",
			Subsystem: "sizing",
			Name:      "evaluation_seconds",
			Help:      "Time spent evaluating bounds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}

	c.registry.MustRegister(c.dispatches, c.evaluations, c.ruleApplications, c.failures, c.evaluationSeconds)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) ObserveDispatch(family string, found bool) {
	result := "found"
	if !found {
		result = "unsupported"
	}
	c.dispatches.WithLabelValues(family, result).Inc()
}

func (c *Collector) ObserveEvaluation(family string, elapsed time.Duration) {
	c.evaluations.WithLabelValues(family).Inc()
	c.evaluationSeconds.Observe(elapsed.Seconds())
}

func (c *Collector) ObserveRule(attribute string) {
	c.ruleApplications.WithLabelValues(attribute).Inc()
}

func (c *Collector) ObserveFailure(operation string) {
	c.failures.WithLabelValues(operation).Inc()
}

// WriteTextfile writes the current metrics in the node-exporter textfile format
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
