package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// ManyPrimaryCtors flags classes declaring more than one primary
// constructor; a class should have a single point of full initialization.
//
// Detection relies on constructor nodes, so it degrades on trees produced
// from raw text without structural constructor marking. The catalog excludes
// this code by default for that reason.
type ManyPrimaryCtors struct{}

// NewManyPrimaryCtors creates the P9 detector.
func NewManyPrimaryCtors() *ManyPrimaryCtors { return &ManyPrimaryCtors{} }

// Evaluate returns the lines of every constructor in classes that declare
// more than one.
func (*ManyPrimaryCtors) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, class := range root.FindByType(node.UASTClass) {
		ctors := directConstructors(class)
		if len(ctors) > 1 {
			found = append(found, ctors...)
		}
	}

	return sortedLines(found)
}

// directConstructors returns constructors belonging to the class itself,
// skipping nested class bodies.
func directConstructors(class *node.Node) []*node.Node {
	var ctors []*node.Node

	var walk func(current *node.Node)

	walk = func(current *node.Node) {
		for _, child := range current.Children {
			switch child.Type {
			case node.UASTClass, node.UASTInterface, node.UASTEnum:
				continue
			case node.UASTConstructor:
				ctors = append(ctors, child)
			default:
				walk(child)
			}
		}
	}

	walk(class)

	return ctors
}
