package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// MethodChaining flags call expressions whose receiver is itself a call,
// i.e. a().b() chains.
type MethodChaining struct{}

// NewMethodChaining creates the P10 detector.
func NewMethodChaining() *MethodChaining { return &MethodChaining{} }

// Evaluate returns the lines of chained method invocations.
func (*MethodChaining) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		if current.Type != node.UASTCall {
			return false
		}

		receiver := current.FirstChildWithRole(node.RoleReceiver)

		return receiver != nil && receiver.Type == node.UASTCall
	})

	return sortedLines(found)
}
