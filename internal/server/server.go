package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/boiler-fuel/internal/calculator"
	"github.com/iwvelando/boiler-fuel/internal/config"
	"github.com/iwvelando/boiler-fuel/internal/metrics"
	"github.com/iwvelando/boiler-fuel/pkg/constants"
	"github.com/iwvelando/boiler-fuel/pkg/density"
	"github.com/iwvelando/boiler-fuel/pkg/eos"
	"github.com/iwvelando/boiler-fuel/pkg/fuels"
	"github.com/iwvelando/boiler-fuel/pkg/output"
	"github.com/iwvelando/boiler-fuel/pkg/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type handler struct {
	logger       *zap.Logger
	oracle       density.Oracle
	metrics      *metrics.Metrics
	maxBodySize  int64
	version      string
	airReference density.Condition
}

// Option customizes the handler built by NewHandler.
type Option func(*handler)

// WithAirReference sets the condition /api/oracle/air uses when the request
// does not name one.
func WithAirReference(cond density.Condition) Option {
	return func(h *handler) {
		h.airReference = cond
	}
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// calculation API. A nil oracle uses the built-in equation of state and nil
// metrics creates a private registry.
func NewHandler(logger *zap.Logger, oracle density.Oracle, m *metrics.Metrics, maxBodySize int64, version string, opts ...Option) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if oracle == nil {
		oracle = eos.New()
	}
	if m == nil {
		m = metrics.New()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:       logger,
		oracle:       oracle,
		metrics:      m,
		maxBodySize:  maxBodySize,
		version:      trimmedVersion,
		airReference: density.Normal,
	}
	for _, opt := range opts {
		opt(h)
	}

	mux := http.NewServeMux()

	mux.Handle("/api/calculate", h.instrument("/api/calculate", h.handleCalculate))
	mux.Handle("/api/fuels", h.instrument("/api/fuels", h.handleFuels))
	mux.Handle("/api/oracle/air", h.instrument("/api/oracle/air", h.handleAirDensity))
	mux.Handle("/api/version", h.instrument("/api/version", h.handleVersion))
	mux.Handle("/metrics", m.Handler())

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

type calculateResponse struct {
	output.Report
	FailureNote string   `json:"failureNote,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Duration    string   `json:"duration"`
	RequestID   string   `json:"requestId"`
}

type fuelsResponse struct {
	Fuels      []fuels.Profile     `json:"fuels"`
	References []density.Condition `json:"references"`
	Units      []string            `json:"units"`
	Fluids     []string            `json:"fluids"`
}

type airResponse struct {
	Condition density.Condition `json:"condition"`
	Density   float64           `json:"density"`
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// instrument assigns a request id and records the request latency.
func (h *handler) instrument(route string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(RequestIDHeader, requestID)
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		elapsed := time.Since(start)
		h.metrics.ObserveRequest(route, rec.status, elapsed)
		h.logger.Debug("request served",
			zap.String("op", "server.instrument"),
			zap.String("route", route),
			zap.String("requestId", requestID),
			zap.Int("status", rec.status),
			zap.Duration("duration", elapsed),
		)
	})
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	requestID := r.Header.Get(RequestIDHeader)
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	configBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()
	inputs, err := cfg.ToInputs()
	if err != nil {
		var boundsErr *validation.OutOfBoundsError
		if errors.As(err, &boundsErr) {
			h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("input out of bounds: %v", err), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	res := calculator.Calculate(h.logger.With(zap.String("requestId", requestID)), h.oracle, inputs)
	h.metrics.ObserveCalculation(inputs.Fuel.ID, res)

	response := calculateResponse{
		Report:    output.NewReport(inputs, res),
		Warnings:  warnings,
		Duration:  time.Since(start).String(),
		RequestID: requestID,
	}
	if res.Failed() {
		response.FailureNote = calculator.LookupFailureNote
	}

	h.logger.Info("calculation served",
		zap.String("op", op),
		zap.String("requestId", requestID),
		zap.String("fuel", inputs.Fuel.ID),
		zap.Float64("hourlyVolume", res.HourlyVolume),
		zap.Bool("lookupFailed", res.Failed()),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleFuels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, fuelsResponse{
		Fuels:      fuels.Catalog(),
		References: []density.Condition{density.Normal, density.Standard},
		Units:      []string{"kcal/h", "kW"},
		Fluids:     eos.FluidNames(),
	})
}

func (h *handler) handleAirDensity(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAirDensity"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	cond := h.airReference
	if name := r.URL.Query().Get("reference"); name != "" {
		parsed, err := density.ParseReference(name)
		if err != nil {
			h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
			return
		}
		cond = parsed
	}

	rho, err := density.AirDensity(h.oracle, cond)
	if err != nil {
		h.respondError(w, r, http.StatusBadGateway, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, airResponse{Condition: cond, Density: rho})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.String("requestId", r.Header.Get(RequestIDHeader)),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
