package patterns

import (
	"strings"

	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

const setterPrefix = "set"

// ClassicSetter flags conventional set* methods: void methods whose body just
// assigns the argument into a field.
type ClassicSetter struct{}

// NewClassicSetter creates the P2 detector.
func NewClassicSetter() *ClassicSetter { return &ClassicSetter{} }

// Evaluate returns the lines of classic setter declarations.
func (*ClassicSetter) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, method := range root.FindByType(node.UASTMethod) {
		if isClassicSetter(method) {
			found = append(found, method)
		}
	}

	return sortedLines(found)
}

func isClassicSetter(method *node.Node) bool {
	if !strings.HasPrefix(method.Token, setterPrefix) || method.Token == setterPrefix {
		return false
	}

	returns := method.Prop(node.PropReturns)
	if returns != "" && returns != "void" {
		return false
	}

	body := methodBody(method)
	if body == nil {
		return false
	}

	return body.CountByType(node.UASTAssignment) > 0
}
