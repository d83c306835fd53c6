package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// MultipleWhile flags methods containing more than one while loop.
type MultipleWhile struct{}

// NewMultipleWhile creates the P29 detector.
func NewMultipleWhile() *MultipleWhile { return &MultipleWhile{} }

// Evaluate returns the lines of methods with several while loops.
func (*MultipleWhile) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, method := range root.FindByType(node.UASTMethod, node.UASTConstructor) {
		whiles := method.Find(func(current *node.Node) bool {
			return current.Type == node.UASTLoop && current.Prop(node.PropKind) == node.KindWhile
		})

		if len(whiles) > 1 {
			found = append(found, method)
		}
	}

	return sortedLines(found)
}
