// Package server exposes the tokenizer pipeline and the sentiment analyzer
// over HTTP. The pipeline holds no mutable shared state, so requests run
// concurrently without coordination.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/example/go-sanskrit-tokenizer/internal/pipeline"
	"github.com/example/go-sanskrit-tokenizer/internal/sentiment"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes int
	defaults     pipeline.Options
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		maxTextBytes: 1 << 20,
		defaults:     pipeline.DefaultOptions(),
		logger:       slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes per request.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithDefaultOptions sets the pipeline options used when a request leaves
// a field unset.
func WithDefaultOptions(p pipeline.Options) Option {
	return func(o *options) { o.defaults = p }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

// handler holds the dependencies needed to serve HTTP requests. The
// analyzer may be nil; /sentiment then reports the dependency as
// unavailable while tokenization keeps working.
type handler struct {
	pipe     pipeline.Pipeline
	analyzer *sentiment.Analyzer
	opts     options
	log      *slog.Logger
}

// NewHandler returns an http.Handler serving /health, POST /tokenize, and
// POST /sentiment.
func NewHandler(pipe pipeline.Pipeline, analyzer *sentiment.Analyzer, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		pipe:     pipe,
		analyzer: analyzer,
		opts:     opts,
		log:      opts.logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/tokenize", h.handleTokenize)
	mux.HandleFunc("/sentiment", h.handleSentiment)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type tokenizeRequest struct {
	Text            string `json:"text"`
	Normalize       *bool  `json:"normalize"`
	StripDiacritics *bool  `json:"strip_diacritics"`
	ASCIIMap        *bool  `json:"ascii_map"`
	SandhiSplit     *bool  `json:"sandhi_split"`
	MinPartLen      *int   `json:"min_part_len"`
}

// options merges the request's explicit fields over the handler defaults.
func (req tokenizeRequest) options(defaults pipeline.Options) pipeline.Options {
	opts := defaults
	if req.Normalize != nil {
		opts.Normalize = *req.Normalize
	}
	if req.StripDiacritics != nil {
		opts.StripDiacritics = *req.StripDiacritics
	}
	if req.ASCIIMap != nil {
		opts.ASCIIMap = *req.ASCIIMap
	}
	if req.SandhiSplit != nil {
		opts.SandhiSplit = *req.SandhiSplit
	}
	if req.MinPartLen != nil {
		opts.MinPartLen = *req.MinPartLen
	}
	return opts
}

func (h *handler) handleTokenize(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	opts := req.options(h.opts.defaults)
	tokens := h.pipe.Run(req.Text, opts)

	h.log.InfoContext(r.Context(), "tokenize complete",
		slog.Int("text_len", len(req.Text)),
		slog.Int("tokens", len(tokens)),
		slog.Bool("sandhi_split", opts.SandhiSplit),
	)

	if tokens == nil {
		tokens = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"tokens": tokens})
}

func (h *handler) handleSentiment(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	if h.analyzer == nil {
		writeError(w, http.StatusServiceUnavailable, sentiment.ErrUnavailable.Error())
		return
	}

	tokens := h.pipe.Run(req.Text, req.options(h.opts.defaults))
	result := h.analyzer.Score(tokens)

	h.log.InfoContext(r.Context(), "sentiment scored",
		slog.Int("text_len", len(req.Text)),
		slog.String("label", string(result.Label)),
		slog.Int("hits", result.Hits),
	)

	writeJSON(w, http.StatusOK, result)
}

// decodeText validates the method and body shared by both POST endpoints.
func (h *handler) decodeText(w http.ResponseWriter, r *http.Request) (tokenizeRequest, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return tokenizeRequest{}, false
	}
	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return tokenizeRequest{}, false
	}

	var req tokenizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return tokenizeRequest{}, false
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text field is required")
		return tokenizeRequest{}, false
	}
	if len(req.Text) > h.opts.maxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return tokenizeRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server — wires handler into net/http.Server with graceful shutdown
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful shutdown.
type Server struct {
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration
}

// New returns a Server listening on addr with the given handler.
func New(addr string, h http.Handler) *Server {
	return &Server{
		addr:            addr,
		handler:         h,
		shutdownTimeout: 10 * time.Second,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}
