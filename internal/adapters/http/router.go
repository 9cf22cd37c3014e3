package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/config"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/domain"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/ports"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/observability/metrics"
)

const serviceName = "cybercrime-api"

type Router struct {
	cfg      config.Config
	analyzer ports.DocumentAnalyzer
	metrics  *metrics.HTTPServerMetrics
}

func NewRouter(cfg config.Config, analyzer ports.DocumentAnalyzer, m *metrics.HTTPServerMetrics) *Router {
	return &Router{cfg: cfg, analyzer: analyzer, metrics: m}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", rt.health)
	mux.HandleFunc("/analyze", rt.analyze)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = trafficControlMiddleware(mux, rt.cfg)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = corsMiddleware(handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if rt.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	start := time.Now()
	contentType := header.Header.Get("Content-Type")
	kind, _ := domain.DetectMediaKind(contentType, header.Filename)

	analysis, err := rt.analyzer.Analyze(r.Context(), header.Filename, contentType, file)
	if err != nil {
		rt.recordAnalysis(string(kind), "error", time.Since(start))
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	rt.recordAnalysis(string(kind), "ok", time.Since(start))
	rt.recordVerdict(analysis)
	writeJSON(w, http.StatusOK, analysis)
}

func (rt *Router) recordAnalysis(kind, status string, duration time.Duration) {
	if rt.metrics != nil {
		rt.metrics.RecordAnalysis(serviceName, kind, status, duration)
	}
}

func (rt *Router) recordVerdict(analysis *domain.Analysis) {
	if rt.metrics == nil {
		return
	}
	resolved := 0
	for _, field := range []*string{
		analysis.Entities.Name,
		analysis.Entities.Location,
		analysis.Entities.Date,
		analysis.Entities.Organization,
	} {
		if field != nil {
			resolved++
		}
	}
	rt.metrics.RecordVerdict(serviceName, analysis.CrimeType, analysis.Severity, resolved)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
