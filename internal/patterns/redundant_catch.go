package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// RedundantCatch flags catch clauses for exception types the enclosing
// method already declares in its throws clause.
type RedundantCatch struct{}

// NewRedundantCatch creates the P15 detector.
func NewRedundantCatch() *RedundantCatch { return &RedundantCatch{} }

// Evaluate returns the lines of redundant catch clauses.
func (*RedundantCatch) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, method := range root.FindByType(node.UASTMethod, node.UASTConstructor) {
		declared := method.PropList(node.PropThrows)
		if len(declared) == 0 {
			continue
		}

		declaredSet := make(map[string]struct{}, len(declared))
		for _, thrown := range declared {
			declaredSet[thrown] = struct{}{}
		}

		for _, catch := range method.FindByType(node.UASTCatch) {
			if catchesDeclared(catch, declaredSet) {
				found = append(found, catch)
			}
		}
	}

	return sortedLines(found)
}

func catchesDeclared(catch *node.Node, declared map[string]struct{}) bool {
	for _, child := range catch.Children {
		if child.Type != node.UASTParameter {
			continue
		}

		if _, exists := declared[child.Prop(node.PropType)]; exists {
			return true
		}
	}

	return false
}
