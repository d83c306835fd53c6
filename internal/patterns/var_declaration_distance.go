package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// VarDeclarationDistance flags local variables declared more than a fixed
// number of lines before their first use. The threshold is closed over at
// catalog definition time; P20_5, P20_7 and P20_11 are the same algorithm
// with different windows.
type VarDeclarationDistance struct {
	threshold int
}

// NewVarDeclarationDistance creates the P20 detector with the given
// line-distance window.
func NewVarDeclarationDistance(threshold int) *VarDeclarationDistance {
	return &VarDeclarationDistance{threshold: threshold}
}

// Evaluate returns the lines of declarations too far from their first use.
func (p *VarDeclarationDistance) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, method := range root.FindByType(node.UASTMethod, node.UASTConstructor) {
		found = append(found, p.distantDeclarations(method)...)
	}

	return sortedLines(found)
}

func (p *VarDeclarationDistance) distantDeclarations(method *node.Node) []*node.Node {
	var distant []*node.Node

	for _, decl := range method.FindByType(node.UASTVariable) {
		declLine := decl.Line()
		if declLine == 0 || decl.Token == "" {
			continue
		}

		useLine := firstUseLine(method, decl.Token, declLine)
		if useLine > 0 && useLine-declLine > p.threshold {
			distant = append(distant, decl)
		}
	}

	return distant
}

// firstUseLine returns the line of the first reference to name after the
// declaration line, or 0 when the variable is never referenced.
func firstUseLine(method *node.Node, name string, declLine int) int {
	useLine := 0

	method.VisitPreOrder(func(current *node.Node) {
		if current.Type != node.UASTIdentifier || current.Token != name {
			return
		}

		line := current.Line()
		if line <= declLine {
			return
		}

		if useLine == 0 || line < useLine {
			useLine = line
		}
	})

	return useLine
}
