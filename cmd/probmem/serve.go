package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nzeh/probmem/analysis"
	"github.com/nzeh/probmem/destructure"
	"github.com/nzeh/probmem/memsnapshot"
	"github.com/nzeh/probmem/telemetry"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an analysis endpoint with Prometheus metrics",
		Long: `serve accepts snapshot documents on POST /analyze and answers with a
JSON summary of the run. Prometheus metrics for every run are exposed
on GET /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := flags.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

			policy, err := flags.weightPolicy()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			recorder := telemetry.NewPrometheusRecorder(reg)

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			mux.Handle("/analyze", &analyzeHandler{
				logger:   logger,
				recorder: recorder,
				policy:   policy,
			})

			srv := &http.Server{
				Addr:              listen,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("probmem: serving", zap.String("listen", listen))

			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":8080", "address to listen on")

	return cmd
}

type analyzeHandler struct {
	logger   *zap.Logger
	recorder telemetry.Recorder
	policy   destructure.WeightPolicy
}

// analyzeResponse is the JSON summary returned for one POST /analyze.
type analyzeResponse struct {
	RunID      string `json:"run_id"`
	Vertices   int    `json:"vertices"`
	Edges      int    `json:"edges"`
	Iterations int    `json:"iterations"`
	Converged  bool   `json:"converged"`
}

func (h *analyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	doc, err := memsnapshot.Load(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	repo, state, err := memsnapshot.Build(doc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := analysis.RunAnalysis(repo, state,
		analysis.WithWeightPolicy(h.policy),
		analysis.WithRecorder(h.recorder),
		analysis.WithLogger(h.logger))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(analyzeResponse{
		RunID:      res.RunID.String(),
		Vertices:   res.Graph.NumVertices(),
		Edges:      res.Graph.NumEdges(),
		Iterations: res.BeliefProp.Iterations,
		Converged:  res.BeliefProp.Converged,
	}); err != nil {
		h.logger.Warn("probmem: encoding analyze response", zap.Error(err))
	}
}
