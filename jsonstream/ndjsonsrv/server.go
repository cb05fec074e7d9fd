// Package ndjsonsrv exposes jsonstream's lazy decoder as an HTTP
// ingestion service: clients POST newline-delimited JSON and each record
// is decoded, materialized, re-encoded, and counted, without ever buffering
// the whole request body at once; each request ends with one summary log
// line. The ambient stack (structured logging,
// request correlation IDs, Prometheus metrics, optional TOML config) is
// what a teacher-style production service carries regardless of the
// domain it's parsing.
package ndjsonsrv

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	jsonstream "github.com/streampkg/jsonstream"
	"github.com/streampkg/jsonstream/jsonstream/encoding"
)

// Server is an http.Handler that ingests NDJSON request bodies.
type Server struct {
	cfg     Config
	log     *zap.Logger
	metrics *metrics
	encoder encoding.Encoder
	mux     *http.ServeMux
}

// New builds a Server. logger may be nil, in which case a production zap
// logger is built from cfg.LogLevel.
func New(cfg Config, logger *zap.Logger) (*Server, error) {
	cfg.ApplyDefaults()
	if logger == nil {
		var err error
		logger, err = newLogger(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:     cfg,
		log:     logger,
		metrics: newMetrics(reg),
		encoder: encoding.ParseBackend(cfg.Encoder),
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("/ingest", s.handleIngest)
	s.mux.HandleFunc("/healthz", s.handleHealthz)
	s.mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return s, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleIngest decodes the request body as a sequence of JSON values
// (spec.md's LoadMany shape) and logs one structured summary line per
// request, plus a warning for each record that fails. The body is never
// read into a single []byte: jsonstream.LoadMany pulls directly from r.Body.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	reqID := r.Header.Get("X-Request-Id")
	if reqID == "" {
		reqID = uuid.NewString()
	}
	log := s.log.With(zap.String("request_id", reqID))

	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxRecordBytes)
	defer r.Body.Close()

	var ingested, failed int
	for result := range jsonstream.LoadMany(body) {
		start := time.Now()
		if result.Err != nil {
			failed++
			s.metrics.recordsTotal.WithLabelValues("error").Inc()
			log.Warn("failed to decode record", zap.Error(result.Err), zap.Int("ingested_so_far", ingested))
			break
		}

		value := jsonstream.ToStandardTypes(result.Value)
		encoded, err := s.encoder.Marshal(value)
		if err != nil {
			failed++
			s.metrics.recordsTotal.WithLabelValues("encode_error").Inc()
			log.Warn("failed to re-encode record", zap.Error(err))
			continue
		}

		ingested++
		s.metrics.recordsTotal.WithLabelValues("ok").Inc()
		s.metrics.recordBytes.Observe(float64(len(encoded)))
		s.metrics.decodeDuration.Observe(time.Since(start).Seconds())
	}

	log.Info("ingest request complete", zap.Int("ingested", ingested), zap.Int("failed", failed))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"request_id": reqID,
		"ingested":   ingested,
		"failed":     failed,
	})
}

// ListenAndServe starts the HTTP server on cfg.Addr.
func (s *Server) ListenAndServe() error {
	s.log.Info("ndjsonsrv listening", zap.String("addr", s.cfg.Addr))
	return http.ListenAndServe(s.cfg.Addr, s)
}
