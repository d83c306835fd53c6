package metrics

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// CognitiveComplexity scores how hard the unit is to read: each control
// structure costs one plus its nesting level, each boolean operator costs
// one.
type CognitiveComplexity struct{}

// NewCognitiveComplexity creates the M4 metric.
func NewCognitiveComplexity() *CognitiveComplexity { return &CognitiveComplexity{} }

// Evaluate returns the cognitive complexity of the whole unit.
func (*CognitiveComplexity) Evaluate(root *node.Node) int {
	score := 0
	nesting := 0

	root.Walk(
		func(current *node.Node) {
			if isBooleanOperator(current) {
				score++

				return
			}

			if isNestingStructure(current) {
				score += 1 + nesting
				nesting++
			}
		},
		func(current *node.Node) {
			if isNestingStructure(current) {
				nesting--
			}
		},
	)

	return score
}

func isNestingStructure(current *node.Node) bool {
	switch current.Type {
	case node.UASTIf, node.UASTLoop, node.UASTSwitch, node.UASTCatch, node.UASTTernary:
		return true
	default:
		return false
	}
}

func isBooleanOperator(current *node.Node) bool {
	return current.Type == node.UASTBinaryOp &&
		(current.Token == "&&" || current.Token == "||")
}
