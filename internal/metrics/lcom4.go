package metrics

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// LCOM4 scores the lack of cohesion of the first class in the unit: the
// number of connected components in the graph whose vertices are methods
// and whose edges join methods sharing a field or calling each other.
type LCOM4 struct{}

// NewLCOM4 creates the M5 metric.
func NewLCOM4() *LCOM4 { return &LCOM4{} }

// Evaluate returns the component count, or 0 for a unit without a class.
func (*LCOM4) Evaluate(root *node.Node) int {
	classes := root.FindByType(node.UASTClass)
	if len(classes) == 0 {
		return 0
	}

	class := classes[0]
	methods := class.FindByType(node.UASTMethod)

	if len(methods) == 0 {
		return 0
	}

	fieldNames := make(map[string]struct{})

	for _, field := range class.FindByType(node.UASTField) {
		if field.Token != "" {
			fieldNames[field.Token] = struct{}{}
		}
	}

	methodNames := make(map[string]int, len(methods))
	for methodIdx, method := range methods {
		methodNames[method.Token] = methodIdx
	}

	components := newUnionFind(len(methods))
	fieldUsers := make(map[string]int)

	for methodIdx, method := range methods {
		method.VisitPreOrder(func(current *node.Node) {
			switch current.Type {
			case node.UASTIdentifier:
				if _, isField := fieldNames[current.Token]; !isField {
					return
				}

				if firstUser, seen := fieldUsers[current.Token]; seen {
					components.union(firstUser, methodIdx)
				} else {
					fieldUsers[current.Token] = methodIdx
				}
			case node.UASTCall:
				if calleeIdx, isLocal := methodNames[current.Token]; isLocal {
					components.union(methodIdx, calleeIdx)
				}
			}
		})
	}

	return components.count()
}

type unionFind struct {
	parent []int
}

func newUnionFind(size int) *unionFind {
	parent := make([]int, size)
	for nodeIdx := range parent {
		parent[nodeIdx] = nodeIdx
	}

	return &unionFind{parent: parent}
}

func (u *unionFind) find(nodeIdx int) int {
	for u.parent[nodeIdx] != nodeIdx {
		u.parent[nodeIdx] = u.parent[u.parent[nodeIdx]]
		nodeIdx = u.parent[nodeIdx]
	}

	return nodeIdx
}

func (u *unionFind) union(first, second int) {
	firstRoot, secondRoot := u.find(first), u.find(second)
	if firstRoot != secondRoot {
		u.parent[secondRoot] = firstRoot
	}
}

func (u *unionFind) count() int {
	roots := make(map[int]struct{}, len(u.parent))
	for nodeIdx := range u.parent {
		roots[u.find(nodeIdx)] = struct{}{}
	}

	return len(roots)
}
