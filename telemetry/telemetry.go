// Package telemetry instruments construction and inference with
// Prometheus metrics. It is optional:
// analysis.RunAnalysis works with no Recorder at all. destructure and
// beliefprop do not import this package, and analysis only ever sees the
// telemetry.Recorder interface, never the concrete Prometheus types, so
// swapping instrumentation backends never touches the core.
package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Recorder receives the counters one destructuring-plus-inference run
// produces. Implementations must be safe to call from a single
// goroutine at a time — matching the core's own single-threaded
// construction/inference contract, so no locking is required here
// either.
type Recorder interface {
	// ObserveDestructure records the stage's diagnostics: hypotheses
	// and factors created, typed blocks seen, and sub-trees silently
	// skipped.
	ObserveDestructure(blocksSeen, hypothesesCreated, factorsCreated, subtreesSkipped int)
	// ObserveInference records how an Infer call concluded.
	ObserveInference(iterations int, converged bool)
}

// Nop is a Recorder that discards everything. It is the zero value
// analysis.RunAnalysis uses when no Recorder option is supplied.
var Nop Recorder = nopRecorder{}

type nopRecorder struct{}

func (nopRecorder) ObserveDestructure(int, int, int, int) {}
func (nopRecorder) ObserveInference(int, bool)            {}

// PrometheusRecorder is the concrete Recorder wired into cmd/probmem
// serve. Register it against a *prometheus.Registry (or the default
// registerer) and pass it to analysis.WithRecorder.
type PrometheusRecorder struct {
	BlocksSeen          prometheus.Counter
	HypothesesCreated   prometheus.Counter
	FactorsCreated      prometheus.Counter
	SubtreesSkipped     prometheus.Counter
	InferenceRuns       prometheus.Counter
	InferenceConverged  prometheus.Counter
	InferenceIterations prometheus.Histogram
}

// NewPrometheusRecorder constructs and registers every metric against
// reg. Passing nil registers against prometheus.DefaultRegisterer.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &PrometheusRecorder{
		BlocksSeen: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "probmem", Subsystem: "destructure", Name: "blocks_seen_total",
			Help: "Typed blocks the destructuring walk was seeded from.",
		}),
		HypothesesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "probmem", Subsystem: "destructure", Name: "hypotheses_created_total",
			Help: "Hypotheses newly inserted into the builder's catalogue.",
		}),
		FactorsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "probmem", Subsystem: "destructure", Name: "factors_created_total",
			Help: "Factors newly inserted into the builder's catalogue.",
		}),
		SubtreesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "probmem", Subsystem: "destructure", Name: "subtrees_skipped_total",
			Help: "Sub-trees abandoned because of a silently swallowed construction error.",
		}),
		InferenceRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "probmem", Subsystem: "beliefprop", Name: "runs_total",
			Help: "Infer calls completed, converged or not.",
		}),
		InferenceConverged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "probmem", Subsystem: "beliefprop", Name: "converged_total",
			Help: "Infer calls that converged within the iteration cap.",
		}),
		InferenceIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "probmem", Subsystem: "beliefprop", Name: "iterations",
			Help:    "Iterations run per Infer call.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 .. 2048
		}),
	}

	reg.MustRegister(r.BlocksSeen, r.HypothesesCreated, r.FactorsCreated, r.SubtreesSkipped,
		r.InferenceRuns, r.InferenceConverged, r.InferenceIterations)

	return r
}

// ObserveDestructure implements Recorder.
func (r *PrometheusRecorder) ObserveDestructure(blocksSeen, hypothesesCreated, factorsCreated, subtreesSkipped int) {
	r.BlocksSeen.Add(float64(blocksSeen))
	r.HypothesesCreated.Add(float64(hypothesesCreated))
	r.FactorsCreated.Add(float64(factorsCreated))
	r.SubtreesSkipped.Add(float64(subtreesSkipped))
}

// ObserveInference implements Recorder.
func (r *PrometheusRecorder) ObserveInference(iterations int, converged bool) {
	r.InferenceRuns.Inc()
	r.InferenceIterations.Observe(float64(iterations))
	if converged {
		r.InferenceConverged.Inc()
	}
}
