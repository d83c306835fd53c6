package patterns

import (
	"strings"

	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// erSuffixes are the procedural "-er" class name endings that usually hide a
// missing abstraction.
//
//nolint:gochecknoglobals // Static detector vocabulary.
var erSuffixes = []string{
	"Manager", "Controller", "Router", "Dispatcher", "Printer", "Writer",
	"Reader", "Parser", "Generator", "Renderer", "Listener", "Producer",
	"Holder", "Interceptor",
}

// ErClass flags classes whose names end with a prohibited "-er" suffix.
type ErClass struct{}

// NewErClass creates the P4 detector.
func NewErClass() *ErClass { return &ErClass{} }

// Evaluate returns the lines of classes with prohibited names.
func (*ErClass) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, class := range root.FindByType(node.UASTClass) {
		if hasErSuffix(class.Token) {
			found = append(found, class)
		}
	}

	return sortedLines(found)
}

func hasErSuffix(name string) bool {
	for _, suffix := range erSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}
