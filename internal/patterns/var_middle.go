package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// VarMiddle flags variable declarations placed after non-declaration
// statements in a block; declarations belong at the top of their scope.
type VarMiddle struct{}

// NewVarMiddle creates the P21 detector.
func NewVarMiddle() *VarMiddle { return &VarMiddle{} }

// Evaluate returns the lines of declarations in the middle of a block.
func (*VarMiddle) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, block := range root.FindByType(node.UASTBlock) {
		seenStatement := false

		for _, statement := range block.Children {
			switch statement.Type {
			case node.UASTVariable:
				if seenStatement {
					found = append(found, statement)
				}
			case node.UASTComment:
				// Comments do not break the declaration prologue.
			default:
				seenStatement = true
			}
		}
	}

	return sortedLines(found)
}
