package metrics

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// CyclomaticComplexity scores the number of independent paths through the
// unit: one plus the number of decision points.
type CyclomaticComplexity struct{}

// NewCyclomaticComplexity creates the M11 metric.
func NewCyclomaticComplexity() *CyclomaticComplexity { return &CyclomaticComplexity{} }

// Evaluate returns the cyclomatic complexity of the whole unit.
func (*CyclomaticComplexity) Evaluate(root *node.Node) int {
	decisions := 0

	root.VisitPreOrder(func(current *node.Node) {
		if isDecisionPoint(current) {
			decisions++
		}
	})

	return 1 + decisions
}
