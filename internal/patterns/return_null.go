package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// ReturnNull flags return statements yielding the null literal; callers are
// forced into null checks the type system cannot verify.
type ReturnNull struct{}

// NewReturnNull creates the P16 detector.
func NewReturnNull() *ReturnNull { return &ReturnNull{} }

// Evaluate returns the lines of return null statements.
func (*ReturnNull) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		if current.Type != node.UASTReturn {
			return false
		}

		for _, value := range current.Children {
			if isNullLiteral(value) {
				return true
			}
		}

		return false
	})

	return sortedLines(found)
}
