package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// Asserts flags assert statements. Production code should report failures
// through exceptions; asserts are stripped at runtime unless -ea is set.
type Asserts struct{}

// NewAsserts creates the P1 detector.
func NewAsserts() *Asserts { return &Asserts{} }

// Evaluate returns the lines of all assert statements.
func (*Asserts) Evaluate(root *node.Node) []int {
	return sortedLines(root.FindByType(node.UASTAssert))
}
