package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

const instanceOfOperator = "instanceof"

const isInstanceMethod = "isInstance"

// InstanceOf flags runtime type probing, either through the instanceof
// operator or reflective Class.isInstance calls.
type InstanceOf struct{}

// NewInstanceOf creates the P8 detector.
func NewInstanceOf() *InstanceOf { return &InstanceOf{} }

// Evaluate returns the lines of instanceof checks.
func (*InstanceOf) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		switch current.Type {
		case node.UASTBinaryOp:
			return current.Token == instanceOfOperator
		case node.UASTCall:
			return current.Token == isInstanceMethod
		default:
			return false
		}
	})

	return sortedLines(found)
}
