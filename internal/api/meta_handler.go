// File path: internal/api/meta_handler.go
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Artzzx/lootforge/internal/filter"
)

func (s *Server) handleStrictnessLevels(w http.ResponseWriter, r *http.Request) {
	tiers := filter.StrictnessTiers()
	out := make([]strictnessLevel, 0, len(tiers))
	for _, tier := range tiers {
		out = append(out, strictnessLevel{
			ID:          tier.ID,
			Name:        tier.Name,
			Description: tier.Description,
			Order:       tier.Order,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"levels": out, "default": filter.DefaultStrictnessID})
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	classes := make([]string, 0, 5)
	for _, c := range filter.BaseClasses() {
		classes = append(classes, string(c))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"classes": classes})
}

func (s *Server) handleDamageTypes(w http.ResponseWriter, r *http.Request) {
	types := make([]string, 0, 7)
	for _, d := range filter.DamageTypes() {
		types = append(types, string(d))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"damage_types": types})
}

func (s *Server) handleMasteries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"masteries": filter.Masteries()})
}

func (s *Server) handleRecentFilters(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("filter catalog not configured"))
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	filters, err := s.catalog.RecentFilters(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"filters": filters})
}

func (s *Server) handlePopularBuilds(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("filter catalog not configured"))
		return
	}
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	builds, err := s.catalog.PopularBuilds(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"builds": builds})
}
