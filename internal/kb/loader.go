// File path: internal/kb/loader.go
package kb

import (
	"errors"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/Artzzx/lootforge/internal/common"
)

// LoadKnowledgeBase reads and validates the mandatory build-profile dataset.
// Malformed JSON and missing required fields are fatal; an empty builds map
// is legal but logged, since it forces every compile onto the structural
// fallback path.
func LoadKnowledgeBase(path string) (*KnowledgeBase, error) {
	logger := common.Logger()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base %s: %w", path, err)
	}
	var doc KnowledgeBase
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse knowledge base %s: %w", path, err)
	}
	if strings.TrimSpace(doc.Version) == "" {
		return nil, fmt.Errorf("knowledge base %s: missing required field \"version\"", path)
	}
	if strings.TrimSpace(doc.GeneratedAt) == "" {
		return nil, fmt.Errorf("knowledge base %s: missing required field \"generated_at\"", path)
	}
	if doc.Builds == nil {
		return nil, fmt.Errorf("knowledge base %s: missing required field \"builds\"", path)
	}
	if len(doc.Builds) == 0 {
		logger.Warn("kb: knowledge base has no builds, compiles will use fallback data", "path", path)
	}
	logger.Info("kb: knowledge base loaded", "path", path, "version", doc.Version, "builds", len(doc.Builds))
	return &doc, nil
}

// LoadRecommendations reads the optional uniques/bases/idols dataset. Any
// failure degrades to an empty document with a warning: the compiler then
// simply emits no recommendation rules.
func LoadRecommendations(path string) *Recommendations {
	logger := common.Logger()
	empty := &Recommendations{Builds: map[string]RecBuild{}}
	if strings.TrimSpace(path) == "" {
		return empty
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("kb: recommendation file unreadable, continuing without", "path", path, "error", err)
		} else {
			logger.Warn("kb: recommendation file missing, continuing without", "path", path)
		}
		return empty
	}
	var doc Recommendations
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn("kb: recommendation file malformed, continuing without", "path", path, "error", err)
		return empty
	}
	if doc.Builds == nil {
		doc.Builds = map[string]RecBuild{}
	}
	logger.Info("kb: recommendations loaded", "path", path, "builds", len(doc.Builds))
	return &doc
}
