package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// NestedLoops flags loops nested at or beyond a fixed depth. The depth and
// the set of loop kinds that count toward nesting are closed over at catalog
// definition time.
type NestedLoops struct {
	depth int
	kinds map[string]struct{}
}

// NewNestedLoops creates the P32 detector. Only loops of the given kinds
// contribute to the nesting level.
func NewNestedLoops(depth int, kinds ...string) *NestedLoops {
	kindSet := make(map[string]struct{}, len(kinds))
	for _, kind := range kinds {
		kindSet[kind] = struct{}{}
	}

	return &NestedLoops{depth: depth, kinds: kindSet}
}

// Evaluate returns the lines of loops nested to the configured depth.
func (p *NestedLoops) Evaluate(root *node.Node) []int {
	var found []*node.Node

	level := 0

	root.Walk(
		func(current *node.Node) {
			if !p.counts(current) {
				return
			}

			level++
			if level >= p.depth {
				found = append(found, current)
			}
		},
		func(current *node.Node) {
			if p.counts(current) {
				level--
			}
		},
	)

	return sortedLines(found)
}

func (p *NestedLoops) counts(current *node.Node) bool {
	if current.Type != node.UASTLoop {
		return false
	}

	_, tracked := p.kinds[current.Prop(node.PropKind)]

	return tracked
}
