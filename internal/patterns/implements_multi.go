package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// ImplementsMulti flags classes implementing more than one interface.
type ImplementsMulti struct{}

// NewImplementsMulti creates the P7 detector.
func NewImplementsMulti() *ImplementsMulti { return &ImplementsMulti{} }

// Evaluate returns the lines of classes with multiple implements clauses.
func (*ImplementsMulti) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, class := range root.FindByType(node.UASTClass) {
		if len(class.PropList(node.PropImplements)) > 1 {
			found = append(found, class)
		}
	}

	return sortedLines(found)
}
