package metrics

import "github.com/Sumatoshi-tech/smellhound/pkg/uast/node"

// statementTypes are the node types NCSS counts as statements.
//
//nolint:gochecknoglobals // Static metric vocabulary.
var statementTypes = []node.Type{
	node.UASTClass, node.UASTInterface, node.UASTEnum,
	node.UASTMethod, node.UASTConstructor, node.UASTField,
	node.UASTVariable, node.UASTAssignment,
	node.UASTIf, node.UASTLoop, node.UASTSwitch, node.UASTCase,
	node.UASTTry, node.UASTCatch, node.UASTFinally,
	node.UASTThrow, node.UASTReturn, node.UASTBreak, node.UASTContinue,
	node.UASTAssert, node.UASTSynchronized,
}

// NCSS counts non-commenting source statements.
type NCSS struct{}

// NewNCSS creates the M2 metric.
func NewNCSS() *NCSS { return &NCSS{} }

// Evaluate returns the statement count.
func (*NCSS) Evaluate(root *node.Node) int {
	return root.CountByType(statementTypes...)
}
