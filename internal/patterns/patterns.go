// Package patterns implements the smell detectors referenced by the catalog.
// Each detector walks a UAST and reports the 1-based lines where its smell
// occurs. Detectors are stateless across Evaluate calls and never mutate the
// tree.
package patterns

import (
	"sort"

	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// sortedLines maps nodes to their start lines, dropping nodes without
// position info, and returns them in ascending order. The result is never
// nil: no findings is an empty slice, not an error.
func sortedLines(nodes []*node.Node) []int {
	found := make([]int, 0, len(nodes))

	for _, current := range nodes {
		if line := current.Line(); line > 0 {
			found = append(found, line)
		}
	}

	sort.Ints(found)

	return found
}

// methodBody returns the body block of a method-like node, or nil.
func methodBody(method *node.Node) *node.Node {
	if body := method.FirstChildWithRole(node.RoleBody); body != nil {
		return body
	}

	for _, child := range method.Children {
		if child.Type == node.UASTBlock {
			return child
		}
	}

	return nil
}

// isNullLiteral reports whether the node is the null literal.
func isNullLiteral(current *node.Node) bool {
	return current != nil && current.Type == node.UASTLiteral && current.Token == node.NullLiteral
}

// containsNullLiteral reports whether the subtree holds a null literal.
func containsNullLiteral(current *node.Node) bool {
	if current == nil {
		return false
	}

	found := false

	current.VisitPreOrder(func(sub *node.Node) {
		if isNullLiteral(sub) {
			found = true
		}
	})

	return found
}
