package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// PublicStaticMethod flags public static methods.
type PublicStaticMethod struct{}

// NewPublicStaticMethod creates the P26 detector.
func NewPublicStaticMethod() *PublicStaticMethod { return &PublicStaticMethod{} }

// Evaluate returns the lines of public static method declarations.
func (*PublicStaticMethod) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		return current.Type == node.UASTMethod &&
			current.HasAllRoles(node.RolePublic, node.RoleStatic)
	})

	return sortedLines(found)
}
