// Package httpapi exposes the transliteration pipeline over HTTP: a
// multipart upload endpoint mirroring the original web tool and a JSON
// endpoint for programmatic callers.
package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/akshara/lipi/archive"
	"github.com/akshara/lipi/ingest"
	"github.com/akshara/lipi/observability"
	"github.com/akshara/lipi/ocr"
	"github.com/akshara/lipi/pipeline"
	"github.com/akshara/lipi/scheme"
)

// maxUploadBytes bounds multipart uploads; scanned PDFs run large.
const maxUploadBytes = 64 << 20

// Server wires the ingestion and conversion layers behind HTTP handlers.
type Server struct {
	logger       observability.Logger
	engine       ocr.Engine
	rasterizer   ingest.Rasterizer
	ocrLanguages []string
	workers      int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger attaches a request and pipeline logger.
func WithLogger(l observability.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEngine selects the OCR engine for image and PDF uploads.
func WithEngine(engine ocr.Engine) Option {
	return func(s *Server) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithRasterizer replaces the PDF rasterizer.
func WithRasterizer(r ingest.Rasterizer) Option {
	return func(s *Server) {
		if r != nil {
			s.rasterizer = r
		}
	}
}

// WithOCRLanguages sets the default traineddata hints; the ocr_lang form
// field overrides them per request.
func WithOCRLanguages(langs ...string) Option {
	return func(s *Server) { s.ocrLanguages = append([]string(nil), langs...) }
}

// WithWorkers bounds pipeline parallelism for batch conversion.
func WithWorkers(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New builds a Server with the default OCR engine and a nop logger.
func New(opts ...Option) *Server {
	s := &Server{
		logger:     observability.NopLogger{},
		engine:     ocr.DefaultEngine(),
		rasterizer: ingest.FitzRasterizer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router assembles the chi router with request-ID and logging
// middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/transliterate", s.handleUpload)
	r.Post("/api/transliterate", s.handleJSON)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload accepts a multipart form with a "file" part, one or more
// "tgt" scheme names, an optional "src" scheme, and an optional
// "ocr_lang" hint. A single target returns plain text; several targets
// return a zip with one entry per target.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parse form: %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing file part: %w", err))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read upload: %w", err))
		return
	}

	targets, err := parseTargets(r.Form["tgt"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	source, err := parseSource(r.FormValue("src"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	langs := s.ocrLanguages
	if v := strings.TrimSpace(r.FormValue("ocr_lang")); v != "" {
		langs = strings.Split(v, "+")
	}

	doc, err := ingest.Extract(r.Context(), header.Filename, data,
		ingest.WithEngine(s.engine),
		ingest.WithRasterizer(s.rasterizer),
		ingest.WithLanguages(langs...),
		ingest.WithLogger(s.logger))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	units := make([]pipeline.TextUnit, len(targets))
	for i, tgt := range targets {
		units[i] = pipeline.TextUnit{
			Source:       header.Filename,
			Text:         doc.Text,
			Target:       tgt,
			SourceScheme: source,
		}
	}
	outputs, err := pipeline.ProcessBatch(r.Context(), units, s.pipelineOptions()...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if len(outputs) == 1 {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, outputs[0].Text)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="transliterated.zip"`)
	if err := archive.Write(w, outputs, targets); err != nil {
		s.logger.Error("write archive", observability.Error("error", err))
	}
}

// ConvertRequest is the JSON endpoint's payload.
type ConvertRequest struct {
	Text    string   `json:"text"`
	Source  string   `json:"source,omitempty"`
	Targets []string `json:"targets"`
}

// ConvertResponse carries one output per requested target.
type ConvertResponse struct {
	Outputs []pipeline.Output `json:"outputs"`
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return
	}
	var req ConvertRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	targets, err := parseTargets(req.Targets)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	source, err := parseSource(req.Source)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	units := make([]pipeline.TextUnit, len(targets))
	for i, tgt := range targets {
		units[i] = pipeline.TextUnit{
			Source:       "request",
			Text:         req.Text,
			Target:       tgt,
			SourceScheme: source,
		}
	}
	outputs, err := pipeline.ProcessBatch(r.Context(), units, s.pipelineOptions()...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, ConvertResponse{Outputs: outputs})
}

func (s *Server) pipelineOptions() []pipeline.Option {
	opts := []pipeline.Option{pipeline.WithLogger(s.logger)}
	if s.workers > 0 {
		opts = append(opts, pipeline.WithWorkers(s.workers))
	}
	return opts
}

func parseTargets(names []string) ([]scheme.Scheme, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one target scheme is required")
	}
	targets := make([]scheme.Scheme, 0, len(names))
	for _, name := range names {
		tgt, err := scheme.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", name, err)
		}
		targets = append(targets, tgt)
	}
	return targets, nil
}

func parseSource(name string) (scheme.Scheme, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "auto") {
		return scheme.Unknown, nil
	}
	src, err := scheme.Parse(name)
	if err != nil {
		return scheme.Unknown, fmt.Errorf("source %q: %w", name, err)
	}
	return src, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
