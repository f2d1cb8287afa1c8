// File path: internal/api/filter_handler.go
package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	chi "github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/Artzzx/lootforge/internal/common"
	"github.com/Artzzx/lootforge/internal/compiler"
	"github.com/Artzzx/lootforge/internal/export"
	"github.com/Artzzx/lootforge/internal/graph"
	"github.com/Artzzx/lootforge/internal/kb"
	"github.com/Artzzx/lootforge/internal/sqlite"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	input, result, doc, err := s.compileRequest(w, r)
	if err != nil {
		return
	}
	payload, err := export.Marshal(doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.persist(r, input, result, string(payload))

	filename := exportFilename(result.FilterName)
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (s *Server) handleGenerateJSON(w http.ResponseWriter, r *http.Request) {
	input, result, doc, err := s.compileRequest(w, r)
	if err != nil {
		return
	}
	payload, err := export.Marshal(doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.persist(r, input, result, string(payload))
	writeJSON(w, http.StatusOK, generateResponse{Result: result, XML: string(payload)})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	_, result, _, err := s.compileRequest(w, r)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAnalyzeBuild(w http.ResponseWriter, r *http.Request) {
	var input compiler.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	ctx, err := compiler.Resolve(input)
	if err != nil {
		writeError(w, statusForCompileError(err), err)
		return
	}
	profile, err := s.kbStore.Resolve(kb.Query{
		Mastery:     ctx.Mastery,
		BaseClass:   ctx.BaseClass,
		DamageTypes: ctx.DamageTypes,
		Phase:       ctx.Phase,
		Archetype:   string(ctx.Archetype),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	counts := map[string]int{}
	for _, aw := range profile.Affixes {
		counts[string(aw.Category)]++
	}
	writeJSON(w, http.StatusOK, analyzeResponse{
		Mastery:        ctx.Mastery,
		BaseClass:      string(ctx.BaseClass),
		Phase:          string(ctx.Phase),
		Strictness:     ctx.Strictness.ID,
		AttackType:     string(ctx.AttackType),
		UsesMinions:    ctx.UsesMinions,
		Specificity:    profile.Specificity,
		Confidence:     string(profile.Confidence),
		MatchedBuilds:  profile.MatchedBuilds,
		AffixCount:     len(profile.Affixes),
		TopAffixes:     topAffixes(profile.Affixes),
		CategoryCounts: counts,
		Uniques:        len(profile.Uniques),
		Bases:          len(profile.Bases),
		Idols:          len(profile.Idols),
	})
}

// maxTopAffixes caps the named-affix list in the analyze response.
const maxTopAffixes = 10

// topAffixes summarizes the highest-weighted affixes with catalog names. The
// profile list arrives weight-sorted, so the first positive entries win.
func topAffixes(affixes []kb.AffixWeight) []affixSummary {
	out := make([]affixSummary, 0, maxTopAffixes)
	for _, aw := range affixes {
		if len(out) == maxTopAffixes {
			break
		}
		if aw.Weight <= 0 {
			continue
		}
		summary := affixSummary{ID: aw.AffixID, Weight: aw.Weight, Category: string(aw.Category)}
		if info, ok := graph.Lookup(aw.AffixID); ok {
			summary.Name = info.Name
		}
		out = append(out, summary)
	}
	return out
}

func (s *Server) handleFilterByID(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("filter catalog not configured"))
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid filter id"))
		return
	}
	saved, err := s.catalog.FilterByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, fmt.Errorf("filter %d not found", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// compileRequest decodes the request body, runs the compiler, and adapts the
// outcome into an export document. Errors have already been written when the
// returned error is non-nil.
func (s *Server) compileRequest(w http.ResponseWriter, r *http.Request) (compiler.UserInput, *compiler.Result, *export.ItemFilter, error) {
	var input compiler.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		err = fmt.Errorf("decode request: %w", err)
		writeError(w, http.StatusBadRequest, err)
		return input, nil, nil, err
	}
	result, err := s.compiler.Compile(input)
	if err != nil {
		writeError(w, statusForCompileError(err), err)
		return input, nil, nil, err
	}
	doc := export.Build(result.FilterName, result.Description, result.Rules)
	return input, result, doc, nil
}

func statusForCompileError(err error) int {
	var unknown *compiler.UnknownMasteryError
	if errors.As(err, &unknown) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// persist records the compile in the catalog when one is configured.
// Persistence failures are logged, never surfaced to the client.
func (s *Server) persist(r *http.Request, input compiler.UserInput, result *compiler.Result, xml string) {
	if s.catalog == nil {
		return
	}
	logger := common.Logger()
	mastery := strings.ToLower(strings.TrimSpace(input.Mastery))
	baseClass := ""
	if ctx, err := compiler.Resolve(input); err == nil {
		baseClass = string(ctx.BaseClass)
	}

	saved := sqlite.SavedFilter{
		Name:           result.FilterName,
		Mastery:        mastery,
		BaseClass:      baseClass,
		DamageTypes:    strings.Join(input.DamageTypes, ","),
		Progress:       input.Progress,
		Strictness:     result.Strictness,
		Specificity:    result.Specificity,
		Confidence:     string(result.Confidence),
		RuleCount:      result.RulesGenerated,
		AffixesDropped: result.AffixesDropped,
		Warnings:       strings.Join(result.Warnings, "; "),
		XML:            xml,
	}
	if _, err := s.catalog.SaveFilter(r.Context(), saved); err != nil {
		logger.Error("api: save filter failed", "error", err)
	}
	if err := s.catalog.RecordBuildUsage(r.Context(), saved.Mastery, result.Strictness); err != nil {
		logger.Error("api: record usage failed", "error", err)
	}
}

func exportFilename(filterName string) string {
	name := strings.ToLower(filterName)
	name = strings.ReplaceAll(name, " - ", "-")
	name = strings.ReplaceAll(name, " ", "-")
	return name + ".xml"
}
