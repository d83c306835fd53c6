package patterns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/smellhound/internal/patterns"
	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// classWith wraps the given members in a File > Class skeleton.
func classWith(members ...*node.Node) *node.Node {
	class := node.NewAt(node.UASTClass, "Sample", 1)
	class.AddChild(members...)

	root := node.New(node.UASTFile, "")
	root.AddChild(class)

	return root
}

func TestAsserts(t *testing.T) {
	t.Parallel()

	method := node.NewAt(node.UASTMethod, "run", 2)
	method.AddChild(
		node.NewAt(node.UASTAssert, "", 4),
		node.NewAt(node.UASTAssert, "", 3),
	)

	assert.Equal(t, []int{3, 4}, patterns.NewAsserts().Evaluate(classWith(method)))
}

func TestReturnNull(t *testing.T) {
	t.Parallel()

	nullReturn := node.NewAt(node.UASTReturn, "", 5)
	nullReturn.AddChild(node.NewAt(node.UASTLiteral, node.NullLiteral, 5))

	plainReturn := node.NewAt(node.UASTReturn, "", 7)
	plainReturn.AddChild(node.NewAt(node.UASTLiteral, "0", 7))

	method := node.NewAt(node.UASTMethod, "lookup", 2)
	method.AddChild(nullReturn, plainReturn)

	assert.Equal(t, []int{5}, patterns.NewReturnNull().Evaluate(classWith(method)))
}

func TestStringConcat(t *testing.T) {
	t.Parallel()

	concat := node.NewAt(node.UASTBinaryOp, "+", 3)
	concat.AddChild(
		node.NewAt(node.UASTLiteral, `"total: "`, 3),
		node.NewAt(node.UASTIdentifier, "total", 3),
	)

	arithmetic := node.NewAt(node.UASTBinaryOp, "+", 4)
	arithmetic.AddChild(
		node.NewAt(node.UASTIdentifier, "a", 4),
		node.NewAt(node.UASTIdentifier, "b", 4),
	)

	method := node.NewAt(node.UASTMethod, "describe", 2)
	method.AddChild(concat, arithmetic)

	assert.Equal(t, []int{3}, patterns.NewStringConcat().Evaluate(classWith(method)))
}

func TestNestedLoops_DepthAndKinds(t *testing.T) {
	t.Parallel()

	inner := node.NewAt(node.UASTLoop, "", 4).WithProp(node.PropKind, node.KindWhile)
	outer := node.NewAt(node.UASTLoop, "", 3).WithProp(node.PropKind, node.KindFor)
	outer.AddChild(inner)

	method := node.NewAt(node.UASTMethod, "scan", 2)
	method.AddChild(outer)

	root := classWith(method)

	tracked := patterns.NewNestedLoops(2, node.KindFor, node.KindWhile, node.KindDo)
	assert.Equal(t, []int{4}, tracked.Evaluate(root))

	// An untracked loop kind does not count toward the level.
	forOnly := patterns.NewNestedLoops(2, node.KindFor)
	assert.Empty(t, forOnly.Evaluate(root))
}

func TestIncompleteFor(t *testing.T) {
	t.Parallel()

	complete := node.NewAt(node.UASTLoop, "", 3).WithProp(node.PropKind, node.KindFor)
	complete.AddChild(
		node.NewAt(node.UASTVariable, "i", 3).WithProp(node.PropPart, "init"),
		node.NewAt(node.UASTBinaryOp, "<", 3).WithProp(node.PropPart, "condition"),
		node.NewAt(node.UASTUnaryOp, "++", 3).WithProp(node.PropPart, "update"),
	)

	headless := node.NewAt(node.UASTLoop, "", 6).WithProp(node.PropKind, node.KindFor)
	headless.AddChild(
		node.NewAt(node.UASTBinaryOp, "<", 6).WithProp(node.PropPart, "condition"),
	)

	method := node.NewAt(node.UASTMethod, "walk", 2)
	method.AddChild(complete, headless)

	assert.Equal(t, []int{6}, patterns.NewIncompleteFor().Evaluate(classWith(method)))
}

func TestIfReturnElse(t *testing.T) {
	t.Parallel()

	thenBranch := node.NewAt(node.UASTBlock, "", 3).WithRoles(node.RoleBody)
	thenBranch.AddChild(node.NewAt(node.UASTReturn, "", 4))

	elseBranch := node.NewAt(node.UASTBlock, "", 5).WithRoles(node.RoleElse)

	redundant := node.NewAt(node.UASTIf, "", 3)
	redundant.AddChild(thenBranch, elseBranch)

	plainThen := node.NewAt(node.UASTBlock, "", 8).WithRoles(node.RoleBody)
	plainElse := node.NewAt(node.UASTBlock, "", 9).WithRoles(node.RoleElse)

	harmless := node.NewAt(node.UASTIf, "", 8)
	harmless.AddChild(plainThen, plainElse)

	method := node.NewAt(node.UASTMethod, "route", 2)
	method.AddChild(redundant, harmless)

	assert.Equal(t, []int{3}, patterns.NewIfReturnElse().Evaluate(classWith(method)))
}

func TestClassicSetter(t *testing.T) {
	t.Parallel()

	body := node.NewAt(node.UASTBlock, "", 3).WithRoles(node.RoleBody)
	body.AddChild(node.NewAt(node.UASTAssignment, "=", 4))

	setter := node.NewAt(node.UASTMethod, "setName", 3).WithProp(node.PropReturns, "void")
	setter.AddChild(body)

	// Same shape but a computing name, not a setter.
	otherBody := node.NewAt(node.UASTBlock, "", 7).WithRoles(node.RoleBody)
	otherBody.AddChild(node.NewAt(node.UASTAssignment, "=", 8))

	other := node.NewAt(node.UASTMethod, "rename", 7)
	other.AddChild(otherBody)

	assert.Equal(t, []int{3}, patterns.NewClassicSetter().Evaluate(classWith(setter, other)))
}

func TestMethodChaining(t *testing.T) {
	t.Parallel()

	innerCall := node.NewAt(node.UASTCall, "builder", 3).WithRoles(node.RoleReceiver)

	chained := node.NewAt(node.UASTCall, "build", 3)
	chained.AddChild(innerCall)

	single := node.NewAt(node.UASTCall, "log", 5)
	single.AddChild(node.NewAt(node.UASTIdentifier, "logger", 5).WithRoles(node.RoleReceiver))

	method := node.NewAt(node.UASTMethod, "assemble", 2)
	method.AddChild(chained, single)

	assert.Equal(t, []int{3}, patterns.NewMethodChaining().Evaluate(classWith(method)))
}

func TestVarSiblings(t *testing.T) {
	t.Parallel()

	method := node.NewAt(node.UASTMethod, "measure", 2)
	method.AddChild(
		node.NewAt(node.UASTVariable, "startTime", 3),
		node.NewAt(node.UASTVariable, "endTime", 4),
		node.NewAt(node.UASTVariable, "count", 5),
	)

	assert.Equal(t, []int{4}, patterns.NewVarSiblings().Evaluate(classWith(method)))
}

func TestDetectors_EmptyTreeIsQuiet(t *testing.T) {
	t.Parallel()

	root := node.New(node.UASTFile, "")

	assert.Empty(t, patterns.NewAsserts().Evaluate(root))
	assert.Empty(t, patterns.NewReturnNull().Evaluate(root))
	assert.Empty(t, patterns.NewNestedLoops(2, node.KindFor).Evaluate(root))
	assert.Empty(t, patterns.NewVarSiblings().Evaluate(root))
}
