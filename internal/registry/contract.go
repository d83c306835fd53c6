// Package registry holds the authoritative catalog of pattern and metric
// analyzers keyed by stable codes, parameterized-variant construction, and
// the selection logic that turns a caller request into an ordered working set.
package registry

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// Pattern is the capability contract for smell detectors. Any type with a
// conforming Evaluate method qualifies; no common base type is required.
type Pattern interface {
	// Evaluate returns the 1-based source lines exhibiting the smell, in
	// ascending order. An AST with no findings yields an empty result, never
	// an error. The AST must not be mutated.
	Evaluate(root *node.Node) []int
}

// Metric is the capability contract for structural score analyzers.
type Metric interface {
	// Evaluate returns a single integer score for the compilation unit.
	// Score range and meaning are analyzer-specific. The AST must not be
	// mutated.
	Evaluate(root *node.Node) int
}
