// Package bridge exposes the shell operations over a loopback HTTP
// endpoint. Failures are reported as {"error": "<message>"} payloads;
// the message text is the whole contract.
package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kyudori/appbridge/api/command"
	"github.com/kyudori/appbridge/internal/apperr"
	"github.com/kyudori/appbridge/internal/misc"
	"github.com/kyudori/appbridge/internal/version"
)

var log = misc.NewLogger("Bridge", 2)

// Server is the HTTP bridge between the desktop shell and the operations.
type Server struct {
	addr       string
	router     *mux.Router
	httpServer *http.Server
}

func NewServer(addr string) *Server {
	s := &Server{addr: addr}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/api/version", s.handleVersion).Methods("GET")
	s.router.HandleFunc("/api/download", s.handleDownload).Methods("POST")
	s.router.HandleFunc("/api/open-folder", s.handleOpenFolder).Methods("POST")
	s.router.HandleFunc("/api/file/save", s.handleFileSave).Methods("POST")
	s.router.HandleFunc("/api/file/read", s.handleFileRead).Methods("POST")

	s.router.Use(s.loggingMiddleware)
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start blocks serving the bridge until Stop or a listener error.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:        s.addr,
		Handler:     s.router,
		ReadTimeout: 30 * time.Second,
		// Downloads buffer the whole upstream body inside the handler,
		// so the write timeout has to outlast slow transfers.
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	log.Info("Listening on %s.", s.addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts the bridge down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

type downloadRequest struct {
	URL      string `json:"url"`
	Method   string `json:"method"`
	FileIDs  []int  `json:"file_ids"`
	SavePath string `json:"save_path"`
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	saved, err := command.DownloadAndSaveFile(r.Context(), req.URL, req.SavePath, req.FileIDs, req.Method)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}
	s.writeJSONResponse(w, map[string]string{"saved_path": saved})
}

type pathRequest struct {
	Path string `json:"path"`
}

func (s *Server) handleOpenFolder(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	if err := command.OpenFolder(req.Path); err != nil {
		s.writeOperationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type saveContentRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (s *Server) handleFileSave(w http.ResponseWriter, r *http.Request) {
	var req saveContentRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	if err := command.SaveFileContent(req.Path, req.Content); err != nil {
		s.writeOperationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFileRead(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	content, err := command.ReadFileContent(req.Path)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}
	s.writeJSONResponse(w, map[string]string{"content": content})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, map[string]string{"version": command.GetVersion()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, map[string]any{
		"status":    "healthy",
		"version":   version.Get(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// writeOperationError maps the error kind to an HTTP status and ships
// the message string to the shell.
func (s *Server) writeOperationError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindTransport, apperr.KindStatus:
		status = http.StatusBadGateway
	}
	s.writeErrorResponse(w, status, err.Error())
}

func (s *Server) writeJSONResponse(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Encode response failed: %v.", err)
	}
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Error("Encode error response failed: %v.", err)
	}
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Trace("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
