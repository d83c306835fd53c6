// Package metrics implements the structural score analyzers referenced by
// the catalog. Each metric reduces a UAST to a single integer; range and
// meaning are metric-specific. Metrics are stateless across Evaluate calls
// and never mutate the tree.
package metrics

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// isDecisionPoint reports whether a node forks control flow.
func isDecisionPoint(current *node.Node) bool {
	switch current.Type {
	case node.UASTIf, node.UASTLoop, node.UASTCase, node.UASTCatch, node.UASTTernary:
		return true
	case node.UASTBinaryOp:
		return current.Token == "&&" || current.Token == "||"
	default:
		return false
	}
}
