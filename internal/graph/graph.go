// File path: internal/graph/graph.go
package graph

import (
	"sync"

	"github.com/Artzzx/lootforge/internal/common"
)

// EdgeKind distinguishes the two relationship types in the affix graph.
type EdgeKind string

const (
	// EdgeSynergy is a soft weight-boosting relationship.
	EdgeSynergy EdgeKind = "SYNERGY"
	// EdgePrerequisite is a hard gate: the from-affix only keeps its weight
	// when the attached condition holds for the build.
	EdgePrerequisite EdgeKind = "PREREQUISITE"
)

// Edge is one directed relationship between two affix ids. Strength is only
// meaningful for SYNERGY edges and is always 1 for prerequisites. Condition
// is the compiled gate for PREREQUISITE edges; nil means unconditional.
// The graph never models mutual exclusivity: affixes that cannot co-roll
// simply never appear on the same item, so no conflict edges exist.
type Edge struct {
	From          int
	To            int
	Kind          EdgeKind
	Strength      float64
	Condition     Expr
	ConditionSrc  string
	Justification string
}

// Graph is a static directed graph of affix relationships. Instances are
// immutable after construction and safe for concurrent readers.
type Graph struct {
	out map[int][]Edge
}

// New builds a Graph from an edge list, compiling condition strings once.
func New(specs []EdgeSpec) *Graph {
	g := &Graph{out: make(map[int][]Edge, len(specs))}
	for _, spec := range specs {
		edge := Edge{
			From:          spec.From,
			To:            spec.To,
			Kind:          spec.Kind,
			Strength:      spec.Strength,
			ConditionSrc:  spec.Condition,
			Justification: spec.Justification,
		}
		if spec.Kind == EdgePrerequisite {
			edge.Strength = 1
			edge.Condition = ParseCondition(spec.Condition)
		}
		g.out[edge.From] = append(g.out[edge.From], edge)
	}
	return g
}

// EdgeSpec is the raw form of an edge before condition compilation.
type EdgeSpec struct {
	From          int
	To            int
	Kind          EdgeKind
	Strength      float64
	Condition     string
	Justification string
}

// SynergiesOf returns all outgoing SYNERGY edges for an affix.
func (g *Graph) SynergiesOf(affixID int) []Edge {
	return g.edgesOf(affixID, EdgeSynergy)
}

// PrerequisitesOf returns all outgoing PREREQUISITE edges for an affix.
func (g *Graph) PrerequisitesOf(affixID int) []Edge {
	return g.edgesOf(affixID, EdgePrerequisite)
}

func (g *Graph) edgesOf(affixID int, kind EdgeKind) []Edge {
	var out []Edge
	for _, e := range g.out[affixID] {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Affixes returns the ids with at least one outgoing edge.
func (g *Graph) Affixes() []int {
	out := make([]int, 0, len(g.out))
	for id := range g.out {
		out = append(out, id)
	}
	return out
}

const (
	synergyTrigger  = 60.0
	synergyBoostPer = 15.0
	weightCeiling   = 100.0
)

// PropagateSynergies runs one additive boost pass over the weight map: every
// affix scoring above the trigger pushes strength-scaled weight onto its
// SYNERGY neighbours, capped at the ceiling. The pass enriches data-backed
// weights, it never replaces them. Returns a new map.
func (g *Graph) PropagateSynergies(weights map[int]float64) map[int]float64 {
	logger := common.Logger()
	result := make(map[int]float64, len(weights))
	for id, w := range weights {
		result[id] = w
	}
	for id, w := range weights {
		if w <= synergyTrigger {
			continue
		}
		for _, e := range g.out[id] {
			if e.Kind != EdgeSynergy {
				continue
			}
			boost := e.Strength * synergyBoostPer
			current := result[e.To]
			next := current + boost
			if next > weightCeiling {
				next = weightCeiling
			}
			result[e.To] = next
			logger.Debug("graph: synergy boost", "from", id, "to", e.To, "boost", boost)
		}
	}
	return result
}

var (
	defaultGraph     *Graph
	defaultGraphOnce sync.Once
)

// Default returns the process-wide graph built from the static edge table.
func Default() *Graph {
	defaultGraphOnce.Do(func() {
		defaultGraph = New(defaultEdges)
	})
	return defaultGraph
}
