package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/servicecheck/internal/domain"
	"github.com/hamed0406/servicecheck/internal/health"
	"github.com/hamed0406/servicecheck/internal/repo"
)

// Server exposes the latest probe snapshot over HTTP for the serve mode.
type Server struct {
	Logger    *zap.Logger
	Results   repo.ResultStore
	Evaluator *health.Evaluator
	Targets   []domain.Target
}

func NewServer(l *zap.Logger, rs repo.ResultStore, e *health.Evaluator, targets []domain.Target) *Server {
	return &Server{Logger: l, Results: rs, Evaluator: e, Targets: targets}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/results", s.handleListResults)
	r.Post("/api/check", s.handleCheckNow)

	return r
}

type resultsPayload struct {
	Results []domain.Result `json:"results"`
	Healthy int             `json:"healthy"`
	Total   int             `json:"total"`
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	results, err := s.Results.Latest(r.Context())
	if err != nil {
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	s.writeResults(w, results)
}

// handleCheckNow runs a full pass synchronously and returns the fresh
// results. Targets are fixed at startup; the body is ignored.
func (s *Server) handleCheckNow(w http.ResponseWriter, r *http.Request) {
	results := s.Evaluator.EvaluateAll(r.Context(), s.Targets)
	for _, res := range results {
		if err := s.Results.Put(r.Context(), res); err != nil {
			s.Logger.Warn("store_error", zap.String("service", res.Target.Name), zap.Error(err))
		}
	}

	healthy, total := health.Summary(results)
	s.Logger.Info("on_demand_check",
		zap.Int("healthy", healthy),
		zap.Int("total", total),
	)
	s.writeResults(w, results)
}

func (s *Server) writeResults(w http.ResponseWriter, results []domain.Result) {
	healthy, total := health.Summary(results)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultsPayload{
		Results: results,
		Healthy: healthy,
		Total:   total,
	})
}
