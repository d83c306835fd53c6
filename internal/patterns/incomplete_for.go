package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// forParts are the header parts a complete for loop declares.
//
//nolint:gochecknoglobals // Static detector vocabulary.
var forParts = []string{"init", "condition", "update"}

// IncompleteFor flags classic for loops missing one of the three header
// parts; an incomplete for is a while loop in disguise.
type IncompleteFor struct{}

// NewIncompleteFor creates the P33 detector.
func NewIncompleteFor() *IncompleteFor { return &IncompleteFor{} }

// Evaluate returns the lines of incomplete for loops.
func (*IncompleteFor) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, loop := range root.FindByType(node.UASTLoop) {
		if loop.Prop(node.PropKind) != node.KindFor {
			continue
		}

		if missingForPart(loop) {
			found = append(found, loop)
		}
	}

	return sortedLines(found)
}

func missingForPart(loop *node.Node) bool {
	declared := make(map[string]struct{}, len(forParts))

	for _, child := range loop.Children {
		if part := child.Prop(node.PropPart); part != "" {
			declared[part] = struct{}{}
		}
	}

	for _, part := range forParts {
		if _, exists := declared[part]; !exists {
			return true
		}
	}

	return false
}
