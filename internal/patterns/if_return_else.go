package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// IfReturnElse flags if statements that return from the then branch and
// still carry an else branch; the else is redundant after the early return.
type IfReturnElse struct{}

// NewIfReturnElse creates the P6 detector.
func NewIfReturnElse() *IfReturnElse { return &IfReturnElse{} }

// Evaluate returns the lines of if statements with a redundant else.
func (*IfReturnElse) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, ifNode := range root.FindByType(node.UASTIf) {
		if hasRedundantElse(ifNode) {
			found = append(found, ifNode)
		}
	}

	return sortedLines(found)
}

func hasRedundantElse(ifNode *node.Node) bool {
	elseBranch := ifNode.FirstChildWithRole(node.RoleElse)
	if elseBranch == nil {
		return false
	}

	thenBranch := ifNode.FirstChildWithRole(node.RoleBody)
	if thenBranch == nil {
		return false
	}

	return thenBranch.CountByType(node.UASTReturn) > 0
}
