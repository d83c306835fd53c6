package metrics

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// MaxDiameter scores the longest path between any two nodes of the AST,
// measured in edges. Deep, stringy trees signal convoluted expressions.
type MaxDiameter struct{}

// NewMaxDiameter creates the M6 metric.
func NewMaxDiameter() *MaxDiameter { return &MaxDiameter{} }

// Evaluate returns the tree diameter.
func (*MaxDiameter) Evaluate(root *node.Node) int {
	diameter := 0
	height(root, &diameter)

	return diameter
}

// height returns the edge height of the subtree while tracking the best
// diameter seen so far.
func height(current *node.Node, diameter *int) int {
	best, second := -1, -1

	for _, child := range current.Children {
		childHeight := height(child, diameter)

		switch {
		case childHeight > best:
			second = best
			best = childHeight
		case childHeight > second:
			second = childHeight
		}
	}

	through := best + second + 2
	if through > *diameter {
		*diameter = through
	}

	return best + 1
}
