// File path: internal/graph/condition.go
package graph

import (
	"strings"

	"github.com/Artzzx/lootforge/internal/common"
)

// Facts exposes the build-context predicates a prerequisite condition can
// test. Keys are dotted paths ("build.attackType"); a key may carry several
// values (damage types), in which case equality means membership. A missing
// key means the predicate is unmodeled for this build.
type Facts map[string][]string

// Expr is a compiled prerequisite condition. Conditions are parsed once when
// the edge table is built, never re-parsed at evaluation time.
type Expr interface {
	Eval(f Facts) bool
}

// Equals tests a single dotted path against an expected value.
type Equals struct {
	Field string
	Value string
}

// Eval resolves the field in the facts. An unknown field evaluates to true:
// the filter must never hide an affix because of a predicate the current
// context does not model.
func (e Equals) Eval(f Facts) bool {
	values, ok := f[e.Field]
	if !ok {
		return true
	}
	for _, v := range values {
		if strings.EqualFold(v, e.Value) {
			return true
		}
	}
	return false
}

// And requires every sub-expression to hold.
type And struct {
	Parts []Expr
}

func (a And) Eval(f Facts) bool {
	for _, p := range a.Parts {
		if !p.Eval(f) {
			return false
		}
	}
	return true
}

// Or requires any sub-expression to hold.
type Or struct {
	Parts []Expr
}

func (o Or) Eval(f Facts) bool {
	for _, p := range o.Parts {
		if p.Eval(f) {
			return true
		}
	}
	return len(o.Parts) == 0
}

// alwaysTrue stands in for conditions the parser cannot understand. Same
// safe default as unknown predicates.
type alwaysTrue struct{}

func (alwaysTrue) Eval(Facts) bool { return true }

// ParseCondition compiles a condition string into an Expr. The language is
// deliberately tiny: equality tests against dotted context paths, joined by
// either "&&" or "||" (the edge table never mixes the two in one condition).
// An empty condition compiles to nil, meaning unconditional.
func ParseCondition(raw string) Expr {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.Contains(raw, "||") {
		parts := splitParts(raw, "||")
		return Or{Parts: parts}
	}
	if strings.Contains(raw, "&&") {
		parts := splitParts(raw, "&&")
		return And{Parts: parts}
	}
	return parseEquality(raw)
}

func splitParts(raw, sep string) []Expr {
	pieces := strings.Split(raw, sep)
	parts := make([]Expr, 0, len(pieces))
	for _, piece := range pieces {
		parts = append(parts, parseEquality(strings.TrimSpace(piece)))
	}
	return parts
}

func parseEquality(raw string) Expr {
	op := "==="
	idx := strings.Index(raw, op)
	if idx < 0 {
		op = "=="
		idx = strings.Index(raw, op)
	}
	if idx < 0 {
		common.Logger().Warn("graph: unparseable prerequisite condition", "condition", raw)
		return alwaysTrue{}
	}
	field := strings.TrimSpace(raw[:idx])
	value := strings.TrimSpace(raw[idx+len(op):])
	value = strings.Trim(value, `"'`)
	if field == "" || value == "" {
		common.Logger().Warn("graph: incomplete prerequisite condition", "condition", raw)
		return alwaysTrue{}
	}
	return Equals{Field: field, Value: strings.ToLower(value)}
}
