package patterns

import (
	"strings"

	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// ArrayAsArgument flags methods taking a raw array parameter; a collection
// or a dedicated type expresses intent better.
type ArrayAsArgument struct{}

// NewArrayAsArgument creates the P22 detector.
func NewArrayAsArgument() *ArrayAsArgument { return &ArrayAsArgument{} }

// Evaluate returns the lines of methods with array parameters.
func (*ArrayAsArgument) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, method := range root.FindByType(node.UASTMethod, node.UASTConstructor) {
		if hasArrayParameter(method) {
			found = append(found, method)
		}
	}

	return sortedLines(found)
}

func hasArrayParameter(method *node.Node) bool {
	for _, child := range method.Children {
		if child.Type == node.UASTParameter && strings.Contains(child.Prop(node.PropType), "[]") {
			return true
		}
	}

	return false
}
