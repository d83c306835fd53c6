package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// MultipleTry flags methods containing more than one try statement; each
// method should deal with at most one failure scope.
type MultipleTry struct{}

// NewMultipleTry creates the P11 detector.
func NewMultipleTry() *MultipleTry { return &MultipleTry{} }

// Evaluate returns the lines of methods with several try statements.
func (*MultipleTry) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, method := range root.FindByType(node.UASTMethod, node.UASTConstructor) {
		if method.CountByType(node.UASTTry) > 1 {
			found = append(found, method)
		}
	}

	return sortedLines(found)
}
