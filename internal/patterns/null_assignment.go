package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// NullAssignment flags assignments of the null literal.
type NullAssignment struct{}

// NewNullAssignment creates the P28 detector.
func NewNullAssignment() *NullAssignment { return &NullAssignment{} }

// Evaluate returns the lines of x = null assignments.
func (*NullAssignment) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		if current.Type != node.UASTAssignment {
			return false
		}

		if right := current.FirstChildWithRole(node.RoleRight); right != nil {
			return isNullLiteral(right)
		}

		// Fall back to the last operand when sides are not role-tagged.
		if len(current.Children) == 0 {
			return false
		}

		return isNullLiteral(current.Children[len(current.Children)-1])
	})

	return sortedLines(found)
}
