package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// NonFinalAttribute flags mutable instance fields: every field not declared
// final.
type NonFinalAttribute struct{}

// NewNonFinalAttribute creates the P12 detector.
func NewNonFinalAttribute() *NonFinalAttribute { return &NonFinalAttribute{} }

// Evaluate returns the lines of non-final field declarations.
func (*NonFinalAttribute) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		return current.Type == node.UASTField && !current.HasAnyRole(node.RoleFinal)
	})

	return sortedLines(found)
}
