package metrics

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// NumVars counts variable declarations.
type NumVars struct{}

// NewNumVars creates the M7 metric.
func NewNumVars() *NumVars { return &NumVars{} }

// Evaluate returns the number of declared variables.
func (*NumVars) Evaluate(root *node.Node) int {
	return root.CountByType(node.UASTVariable)
}
