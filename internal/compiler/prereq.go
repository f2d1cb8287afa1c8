// File path: internal/compiler/prereq.go
package compiler

import (
	"github.com/Artzzx/lootforge/internal/graph"
	"github.com/Artzzx/lootforge/internal/kb"
)

// ApplyPrerequisites neutralizes affixes whose graph-declared prerequisites
// fail for the context, or whose class gating excludes the resolved base
// class. Zeroed affixes keep their slot in the list (weight forced to 0,
// category and confidence untouched) so downstream budget accounting always
// sees the full weight-sorted list. The input slice is never mutated, and
// the operation is idempotent.
func ApplyPrerequisites(affixes []kb.AffixWeight, ctx *BuildContext, g *graph.Graph) []kb.AffixWeight {
	facts := ctx.Facts()
	zero := make(map[int]bool)

	for _, aw := range affixes {
		for _, edge := range g.PrerequisitesOf(aw.AffixID) {
			// Edges without a condition are unconditional and never zero.
			if edge.Condition == nil {
				continue
			}
			if !edge.Condition.Eval(facts) {
				zero[aw.AffixID] = true
				break
			}
		}
	}

	for _, aw := range affixes {
		if !graph.ClassAllowed(aw.AffixID, ctx.BaseClass) {
			zero[aw.AffixID] = true
		}
	}

	out := make([]kb.AffixWeight, len(affixes))
	copy(out, affixes)
	for i := range out {
		if zero[out[i].AffixID] {
			out[i].Weight = 0
		}
	}
	return out
}
