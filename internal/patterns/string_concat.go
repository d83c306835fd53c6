package patterns

import (
	"strings"

	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// StringConcat flags string concatenation through the + operator.
type StringConcat struct{}

// NewStringConcat creates the P17 detector.
func NewStringConcat() *StringConcat { return &StringConcat{} }

// Evaluate returns the lines of + expressions with a string literal operand.
func (*StringConcat) Evaluate(root *node.Node) []int {
	found := root.Find(func(current *node.Node) bool {
		if current.Type != node.UASTBinaryOp || current.Token != "+" {
			return false
		}

		for _, operand := range current.Children {
			if isStringLiteral(operand) {
				return true
			}
		}

		return false
	})

	return sortedLines(found)
}

func isStringLiteral(current *node.Node) bool {
	return current.Type == node.UASTLiteral && strings.HasPrefix(current.Token, `"`)
}
