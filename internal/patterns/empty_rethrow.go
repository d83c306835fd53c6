package patterns

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// EmptyRethrow flags catch clauses whose only action is to rethrow the
// caught exception unchanged, discarding the chance to add context.
type EmptyRethrow struct{}

// NewEmptyRethrow creates the P3 detector.
func NewEmptyRethrow() *EmptyRethrow { return &EmptyRethrow{} }

// Evaluate returns the lines of bare rethrow statements.
func (*EmptyRethrow) Evaluate(root *node.Node) []int {
	var found []*node.Node

	for _, catch := range root.FindByType(node.UASTCatch) {
		if rethrow := bareRethrow(catch); rethrow != nil {
			found = append(found, rethrow)
		}
	}

	return sortedLines(found)
}

// bareRethrow returns the throw statement when the catch body consists of a
// single throw of the caught parameter, nil otherwise.
func bareRethrow(catch *node.Node) *node.Node {
	var caught string

	for _, child := range catch.Children {
		if child.Type == node.UASTParameter {
			caught = child.Token

			break
		}
	}

	body := methodBody(catch)
	if caught == "" || body == nil || len(body.Children) != 1 {
		return nil
	}

	throw := body.Children[0]
	if throw.Type != node.UASTThrow {
		return nil
	}

	for _, thrown := range throw.Children {
		if thrown.Type == node.UASTIdentifier && thrown.Token == caught {
			return throw
		}
	}

	return nil
}
