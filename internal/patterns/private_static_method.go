package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// PrivateStaticMethod flags private static methods; static helpers are
// procedural code hiding inside a class.
type PrivateStaticMethod struct{}

// NewPrivateStaticMethod creates the P25 detector.
func NewPrivateStaticMethod() *PrivateStaticMethod { return &PrivateStaticMethod{} }

// Evaluate returns the lines of private static method declarations.
func (*PrivateStaticMethod) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		return current.Type == node.UASTMethod &&
			current.HasAllRoles(node.RolePrivate, node.RoleStatic)
	})

	return sortedLines(found)
}
