package metrics

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// NumMethods counts method declarations.
type NumMethods struct{}

// NewNumMethods creates the M8 metric.
func NewNumMethods() *NumMethods { return &NumMethods{} }

// Evaluate returns the number of declared methods.
func (*NumMethods) Evaluate(root *node.Node) int {
	return root.CountByType(node.UASTMethod)
}
