package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// JoinedValidation flags validation branches that join several checks with
// || before throwing; the combined condition hides which check failed.
type JoinedValidation struct{}

// NewJoinedValidation creates the P23 detector.
func NewJoinedValidation() *JoinedValidation { return &JoinedValidation{} }

// Evaluate returns the lines of joined validation if statements.
func (*JoinedValidation) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, ifNode := range root.FindByType(node.UASTIf) {
		if isJoinedValidation(ifNode) {
			found = append(found, ifNode)
		}
	}

	return sortedLines(found)
}

func isJoinedValidation(ifNode *node.Node) bool {
	condition := ifNode.FirstChildWithRole(node.RoleCondition)
	if condition == nil || !containsOr(condition) {
		return false
	}

	body := ifNode.FirstChildWithRole(node.RoleBody)

	return body != nil && body.CountByType(node.UASTThrow) > 0
}

func containsOr(condition *node.Node) bool {
	joined := false

	condition.VisitPreOrder(func(current *node.Node) {
		if current.Type == node.UASTBinaryOp && current.Token == "||" {
			joined = true
		}
	})

	return joined
}
