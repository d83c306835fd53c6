package metrics

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// FanOut counts the distinct foreign classes the unit dispatches calls to,
// recognized as type-cased call receivers.
type FanOut struct{}

// NewFanOut creates the M10 metric.
func NewFanOut() *FanOut { return &FanOut{} }

// Evaluate returns the distinct count of called foreign classes.
func (*FanOut) Evaluate(root *node.Node) int {
	foreign := make(map[string]struct{})

	root.VisitPreOrder(func(current *node.Node) {
		if current.Type != node.UASTCall {
			return
		}

		receiver := current.FirstChildWithRole(node.RoleReceiver)
		if receiver == nil || receiver.Type != node.UASTIdentifier {
			return
		}

		if isTypeCased(receiver.Token) {
			foreign[receiver.Token] = struct{}{}
		}
	})

	return len(foreign)
}

func isTypeCased(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}
