package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// PartialSynchronized flags synchronized blocks that guard only part of a
// method body; the unguarded remainder is a data-race invitation.
type PartialSynchronized struct{}

// NewPartialSynchronized creates the P14 detector.
func NewPartialSynchronized() *PartialSynchronized { return &PartialSynchronized{} }

// Evaluate returns the lines of partially covering synchronized blocks.
func (*PartialSynchronized) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, method := range root.FindByType(node.UASTMethod) {
		if method.HasAnyRole(node.RoleSync) {
			continue
		}

		body := methodBody(method)
		if body == nil || len(body.Children) < 2 {
			continue
		}

		for _, statement := range body.Children {
			if statement.Type == node.UASTSynchronized {
				found = append(found, statement)
			}
		}
	}

	return sortedLines(found)
}
