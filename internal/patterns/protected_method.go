package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// ProtectedMethod flags protected methods; the protected modifier exposes
// internals to an unbounded set of subclasses.
type ProtectedMethod struct{}

// NewProtectedMethod creates the P30 detector.
func NewProtectedMethod() *ProtectedMethod { return &ProtectedMethod{} }

// Evaluate returns the lines of protected method declarations.
func (*ProtectedMethod) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		return current.Type == node.UASTMethod && current.HasAnyRole(node.RoleProtected)
	})

	return sortedLines(found)
}
