package node

// VisitPreOrder traverses the tree depth-first, invoking fn on each node in
// pre-order. Traversal is iterative to stay safe on deep trees.
func (targetNode *Node) VisitPreOrder(fn func(*Node)) {
	if targetNode == nil {
		return
	}

	stack := []*Node{targetNode}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(current)
		pushReversedChildren(current, &stack)
	}
}

// Walk traverses the tree depth-first, invoking enter on the way down and
// exit on the way up. Either callback may be nil.
func (targetNode *Node) Walk(enter, exit func(*Node)) {
	if targetNode == nil {
		return
	}

	if enter != nil {
		enter(targetNode)
	}

	for _, child := range targetNode.Children {
		child.Walk(enter, exit)
	}

	if exit != nil {
		exit(targetNode)
	}
}

// Find returns all nodes matching the predicate in pre-order.
func (targetNode *Node) Find(predicate func(*Node) bool) []*Node {
	var matched []*Node

	targetNode.VisitPreOrder(func(current *Node) {
		if predicate(current) {
			matched = append(matched, current)
		}
	})

	return matched
}

// FindByType returns all nodes of any of the given types in pre-order.
func (targetNode *Node) FindByType(nodeTypes ...Type) []*Node {
	return targetNode.Find(func(current *Node) bool {
		return current.HasAnyType(nodeTypes...)
	})
}

// CountByType returns the number of nodes of any of the given types.
func (targetNode *Node) CountByType(nodeTypes ...Type) int {
	count := 0

	targetNode.VisitPreOrder(func(current *Node) {
		if current.HasAnyType(nodeTypes...) {
			count++
		}
	})

	return count
}

func pushReversedChildren(targetNode *Node, stack *[]*Node) {
	for childIdx := len(targetNode.Children) - 1; childIdx >= 0; childIdx-- {
		child := targetNode.Children[childIdx]
		if child != nil {
			*stack = append(*stack, child)
		}
	}
}
