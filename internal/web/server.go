package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"stalens/internal/config"
	"stalens/internal/fetch"
	"stalens/internal/model"
	"stalens/internal/timing"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// maxReportBytes caps pasted report bodies. Real path reports are a few KB;
// 4MB leaves room for multi-path dumps without letting a client exhaust us.
const maxReportBytes = 4 << 20

// Server wires the analyzer and fetcher behind the HTTP API.
type Server struct {
	analyzer *timing.Analyzer
	fetcher  *fetch.Fetcher
	port     string
}

// NewServer builds a Server from the loaded configuration.
func NewServer(cfg config.Config) *Server {
	return &Server{
		analyzer: timing.NewAnalyzer(),
		fetcher:  fetch.New(cfg.Upstream),
		port:     cfg.Web.Port,
	}
}

// Start runs the web server. Blocks until the listener fails.
func (s *Server) Start() {
	mux := s.Handler()

	fmt.Printf("Starting stalens web server at http://localhost:%s\n", s.port)
	fmt.Printf("Go to http://localhost:%s in your browser.\n", s.port)

	if err := http.ListenAndServe(":"+s.port, mux); err != nil {
		log.Fatal(err)
	}
}

// Handler returns the route table. Split out from Start for tests.
func (s *Server) Handler() *http.ServeMux {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/report", s.handleReport)
	mux.HandleFunc("/api/example", s.handleExample)
	mux.HandleFunc("/api/congestion", handleNotImplemented("Congestion analysis"))
	mux.HandleFunc("/api/logs", handleNotImplemented("Log analysis"))
	mux.HandleFunc("/api/help", handleHelp)

	return mux
}

// analyzeResponse is what the front-end renders: the structured result plus
// pre-rendered text reports so the page doesn't re-implement formatting.
type analyzeResponse struct {
	model.AnalysisResult
	Report        string `json:"Report"`
	VerboseReport string `json:"VerboseReport"`
	Version       string `json:"Version"`
	SampleData    bool   `json:"SampleData"`
}

func (s *Server) respond(w http.ResponseWriter, raw string, sample bool) {
	result := s.analyzer.Analyze(raw)

	response := analyzeResponse{
		AnalysisResult: result,
		Report:         timing.GenerateReport(result, false),
		VerboseReport:  timing.GenerateReport(result, true),
		Version:        model.Version,
		SampleData:     sample,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleAnalyze analyzes report text posted in the request body.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxReportBytes))
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	s.respond(w, string(body), false)
}

// handleReport proxies the authenticated upstream fetch, then analyzes.
// The browser cannot reach the upstream API itself (CORS + bearer auth),
// which is the whole reason this route exists. Upstream failures fall back
// to the sample report so the page always renders something.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", 400)
		return
	}

	text, ok := s.fetcher.FetchOrSample(r.Context(), path)
	s.respond(w, text, !ok)
}

// handleExample returns the embedded sample report text for the
// "load example" button.
func (s *Server) handleExample(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(model.SampleReport))
}

// handleNotImplemented marks the analysis areas that only exist as tabs in
// the UI so far.
func handleNotImplemented(area string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotImplemented)
		json.NewEncoder(w).Encode(map[string]string{
			"error": area + " is not implemented yet",
		})
	}
}

func handleHelp(w http.ResponseWriter, r *http.Request) {
	// Use the embedded help content
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}
