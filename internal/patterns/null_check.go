package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// NullCheck flags equality comparisons against the null literal.
type NullCheck struct{}

// NewNullCheck creates the P13 detector.
func NewNullCheck() *NullCheck { return &NullCheck{} }

// Evaluate returns the lines of == null and != null comparisons.
func (*NullCheck) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		if current.Type != node.UASTBinaryOp {
			return false
		}

		if current.Token != "==" && current.Token != "!=" {
			return false
		}

		for _, operand := range current.Children {
			if isNullLiteral(operand) {
				return true
			}
		}

		return false
	})

	return sortedLines(found)
}
