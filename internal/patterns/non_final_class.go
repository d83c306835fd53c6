package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// NonFinalClass flags classes open for extension without being designed for
// it: neither final nor abstract.
type NonFinalClass struct{}

// NewNonFinalClass creates the P24 detector.
func NewNonFinalClass() *NonFinalClass { return &NonFinalClass{} }

// Evaluate returns the lines of non-final, non-abstract class declarations.
func (*NonFinalClass) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		return current.Type == node.UASTClass &&
			!current.HasAnyRole(node.RoleFinal, node.RoleAbstract)
	})

	return sortedLines(found)
}
