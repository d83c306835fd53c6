package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

const superKeyword = "super"

// SuperMethod flags super.method() invocations; leaning on the parent
// implementation couples the subclass to it.
type SuperMethod struct{}

// NewSuperMethod creates the P18 detector.
func NewSuperMethod() *SuperMethod { return &SuperMethod{} }

// Evaluate returns the lines of super-qualified method calls. Constructor
// delegation via super(...) is not counted.
func (*SuperMethod) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		if current.Type != node.UASTCall || current.Token == superKeyword {
			return false
		}

		receiver := current.FirstChildWithRole(node.RoleReceiver)

		return receiver != nil && receiver.Type == node.UASTIdentifier && receiver.Token == superKeyword
	})

	return sortedLines(found)
}
