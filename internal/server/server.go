// Package server implements the optional HTTP sidecar: a Prometheus
// metrics endpoint, a health check, and a small JSON evaluation API. It
// runs only when the metrics address is configured and never blocks the
// calculator itself.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/bigint"
	"github.com/agbru/bigint/internal/logging"
)

// Server is the HTTP sidecar.
type Server struct {
	addr     string
	logger   logging.Logger
	metrics  *Metrics
	security SecurityConfig
	backend  bigint.Backend
	httpSrv  *http.Server
}

// New constructs a sidecar listening on addr, evaluating API requests
// with the given backend.
func New(addr string, backend bigint.Backend, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		logger:   logger,
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
		backend:  backend,
	}
}

// Start runs the server until ctx is cancelled. It always returns a
// non-nil error; after a clean shutdown that error is http.ErrServerClosed.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.metricsMiddleware(s.metrics.WritePrometheus)))
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleHealth)))
	mux.HandleFunc("/api/v1/eval", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleEval)))

	s.httpSrv = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("sidecar shutdown", err)
		}
	}()

	s.logger.Info("metrics sidecar listening", logging.String("addr", s.addr))
	return s.httpSrv.ListenAndServe()
}

// statusRecorder captures the response code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware tracks in-flight, total and duration metrics around
// next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		start := time.Now()
		next(rec, r)
		s.metrics.RecordRequest(r.URL.Path, strconv.Itoa(rec.code), time.Since(start))
	}
}

// handleHealth answers liveness probes.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// evalRequest is the JSON body of an evaluation call.
type evalRequest struct {
	Op   string `json:"op"`              // add, sub, mul, quorem, gcd, modpow
	X    string `json:"x"`               // decimal operands
	Y    string `json:"y"`
	M    string `json:"m,omitempty"`     // modpow modulus
	Base int    `json:"base,omitempty"`  // operand radix, default 10
}

// evalResponse is the JSON result of an evaluation call.
type evalResponse struct {
	Result    string `json:"result,omitempty"`
	Remainder string `json:"remainder,omitempty"`
	Error     string `json:"error,omitempty"`
}

// handleEval evaluates one binary operation. Parsing and arithmetic
// failures come back as a 400 with the typed error's message; the
// endpoint never panics on hostile input.
func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req evalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, evalResponse{Error: "malformed request body"})
		return
	}
	if req.Base == 0 {
		req.Base = 10
	}

	resp, status := s.evaluate(req)
	writeJSON(w, status, resp)
}

// evaluate dispatches one request to the backend.
func (s *Server) evaluate(req evalRequest) (evalResponse, int) {
	x, err := bigint.ParseInt(req.X, req.Base)
	if err != nil {
		return evalResponse{Error: err.Error()}, http.StatusBadRequest
	}
	y, err := bigint.ParseInt(req.Y, req.Base)
	if err != nil {
		return evalResponse{Error: err.Error()}, http.StatusBadRequest
	}

	switch req.Op {
	case "add":
		return evalResponse{Result: s.backend.Add(x, y).Text(req.Base)}, http.StatusOK
	case "sub":
		return evalResponse{Result: s.backend.Sub(x, y).Text(req.Base)}, http.StatusOK
	case "mul":
		return evalResponse{Result: s.backend.Mul(x, y).Text(req.Base)}, http.StatusOK
	case "quorem":
		q, rem, err := s.backend.QuoRem(x, y)
		if err != nil {
			return evalResponse{Error: err.Error()}, http.StatusBadRequest
		}
		return evalResponse{Result: q.Text(req.Base), Remainder: rem.Text(req.Base)}, http.StatusOK
	case "gcd":
		return evalResponse{Result: s.backend.GCD(x, y).Text(req.Base)}, http.StatusOK
	case "modpow":
		m, err := bigint.ParseInt(req.M, req.Base)
		if err != nil {
			return evalResponse{Error: err.Error()}, http.StatusBadRequest
		}
		p, err := s.backend.ModPow(x, y, m)
		if err != nil {
			return evalResponse{Error: err.Error()}, http.StatusBadRequest
		}
		return evalResponse{Result: p.Text(req.Base)}, http.StatusOK
	}
	return evalResponse{Error: "unknown op " + strconv.Quote(req.Op)}, http.StatusBadRequest
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
