package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// SendNull flags calls passing the null literal as an argument.
type SendNull struct{}

// NewSendNull creates the P31 detector.
func NewSendNull() *SendNull { return &SendNull{} }

// Evaluate returns the lines of calls with a null argument.
func (*SendNull) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		if current.Type != node.UASTCall {
			return false
		}

		for _, child := range current.Children {
			if child.HasAnyRole(node.RoleArgument) && containsNullLiteral(child) {
				return true
			}
		}

		return false
	})

	return sortedLines(found)
}
