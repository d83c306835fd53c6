package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// siblingStemLength is the shared prefix or suffix length that makes two
// variable names siblings.
const siblingStemLength = 4

// VarSiblings flags variables whose names share a long stem with an earlier
// variable in the same method, e.g. startTime/endTime; sibling names usually
// want a dedicated type.
type VarSiblings struct{}

// NewVarSiblings creates the P27 detector.
func NewVarSiblings() *VarSiblings { return &VarSiblings{} }

// Evaluate returns the lines of later siblings in each sibling pair.
func (*VarSiblings) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, method := range root.FindByType(node.UASTMethod, node.UASTConstructor) {
		decls := method.FindByType(node.UASTVariable)

		for declIdx, decl := range decls {
			if hasEarlierSibling(decls[:declIdx], decl.Token) {
				found = append(found, decl)
			}
		}
	}

	return sortedLines(found)
}

func hasEarlierSibling(earlier []*node.Node, name string) bool {
	if len(name) < siblingStemLength {
		return false
	}

	for _, decl := range earlier {
		if decl.Token == name || len(decl.Token) < siblingStemLength {
			continue
		}

		if sharedStem(decl.Token, name) >= siblingStemLength {
			return true
		}
	}

	return false
}

// sharedStem returns the longer of the common prefix and common suffix.
func sharedStem(first, second string) int {
	prefix := 0
	for prefix < len(first) && prefix < len(second) && first[prefix] == second[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(first) && suffix < len(second) &&
		first[len(first)-1-suffix] == second[len(second)-1-suffix] {
		suffix++
	}

	return max(prefix, suffix)
}
