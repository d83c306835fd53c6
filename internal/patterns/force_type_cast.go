package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// ForceTypeCast flags explicit downcast expressions; they defeat the type
// system and usually indicate a design hole.
type ForceTypeCast struct{}

// NewForceTypeCast creates the P5 detector.
func NewForceTypeCast() *ForceTypeCast { return &ForceTypeCast{} }

// Evaluate returns the lines of all cast expressions.
func (*ForceTypeCast) Evaluate(root *node.Node) []int {
	return sortedLines(root.FindByType(node.UASTCast))
}
