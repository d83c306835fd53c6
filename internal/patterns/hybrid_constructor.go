package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

const thisKeyword = "this"

// HybridConstructor flags constructors that mix this(...) delegation with
// additional statements of their own.
type HybridConstructor struct{}

// NewHybridConstructor creates the P19 detector.
func NewHybridConstructor() *HybridConstructor { return &HybridConstructor{} }

// Evaluate returns the lines of hybrid constructors.
func (*HybridConstructor) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, ctor := range root.FindByType(node.UASTConstructor) {
		body := methodBody(ctor)
		if body == nil || len(body.Children) < 2 {
			continue
		}

		if delegatesToThis(body.Children[0]) {
			found = append(found, ctor)
		}
	}

	return sortedLines(found)
}

func delegatesToThis(statement *node.Node) bool {
	if statement.Type == node.UASTCall && statement.Token == thisKeyword {
		return true
	}

	for _, child := range statement.Children {
		if child.Type == node.UASTCall && child.Token == thisKeyword {
			return true
		}
	}

	return false
}
