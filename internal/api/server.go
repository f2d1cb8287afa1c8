// File path: internal/api/server.go
package api

import (
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/Artzzx/lootforge/internal/common"
	"github.com/Artzzx/lootforge/internal/compiler"
	"github.com/Artzzx/lootforge/internal/kb"
	"github.com/Artzzx/lootforge/internal/sqlite"
)

// Server exposes the filter compiler over HTTP. The catalog is optional;
// with a nil catalog the save and history endpoints report unavailability
// and compilation still works.
type Server struct {
	router   chi.Router
	compiler *compiler.Compiler
	kbStore  *kb.Store
	catalog  *sqlite.Store
}

func NewServer(comp *compiler.Compiler, kbStore *kb.Store, catalog *sqlite.Store) (*Server, error) {
	if comp == nil {
		return nil, fmt.Errorf("compiler required")
	}
	if kbStore == nil {
		return nil, fmt.Errorf("knowledge store required")
	}
	srv := &Server{
		router:   chi.NewRouter(),
		compiler: comp,
		kbStore:  kbStore,
		catalog:  catalog,
	}
	srv.routes()
	common.Logger().Info("api: server ready", "catalog", catalog != nil)
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/api/filter/generate", s.handleGenerate)
	s.router.Post("/api/filter/generate/json", s.handleGenerateJSON)
	s.router.Post("/api/filter/preview", s.handlePreview)
	s.router.Post("/api/analyze-build", s.handleAnalyzeBuild)

	s.router.Get("/api/strictness-levels", s.handleStrictnessLevels)
	s.router.Get("/api/classes", s.handleClasses)
	s.router.Get("/api/damage-types", s.handleDamageTypes)
	s.router.Get("/api/masteries", s.handleMasteries)

	s.router.Get("/api/filters/recent", s.handleRecentFilters)
	s.router.Get("/api/filters/{id}", s.handleFilterByID)
	s.router.Get("/api/builds/popular", s.handlePopularBuilds)

	s.router.Get("/v1/logs", s.handleLogs)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": common.LogEntries()})
}
