package metrics

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// RFC scores the response for a class: its own methods plus the distinct
// remote methods they can invoke.
type RFC struct{}

// NewRFC creates the M9 metric.
func NewRFC() *RFC { return &RFC{} }

// Evaluate returns the response-for-class score.
func (*RFC) Evaluate(root *node.Node) int {
	local := make(map[string]struct{})

	for _, method := range root.FindByType(node.UASTMethod) {
		local[method.Token] = struct{}{}
	}

	remote := make(map[string]struct{})

	root.VisitPreOrder(func(current *node.Node) {
		if current.Type != node.UASTCall || current.Token == "" {
			return
		}

		if _, isLocal := local[current.Token]; !isLocal {
			remote[current.Token] = struct{}{}
		}
	})

	return len(local) + len(remote)
}
