package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/smellhound/internal/registry"
	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// declarationDistanceTree builds a unit with a variable declared on line 2
// and first used on line 8, a distance of six lines.
func declarationDistanceTree() *node.Node {
	method := node.NewAt(node.UASTMethod, "run", 1)
	method.AddChild(
		node.NewAt(node.UASTVariable, "total", 2),
		node.NewAt(node.UASTIdentifier, "total", 8),
	)

	class := node.NewAt(node.UASTClass, "Sample", 1)
	class.AddChild(method)

	root := node.New(node.UASTFile, "")
	root.AddChild(class)

	return root
}

func findPattern(t *testing.T, reg *registry.Registry, code string) registry.Entry[registry.Pattern] {
	t.Helper()

	for _, entry := range reg.Patterns() {
		if entry.Code == code {
			return entry
		}
	}

	t.Fatalf("pattern %s not in catalog", code)

	return registry.Entry[registry.Pattern]{}
}

func TestParameterizedVariants_ThresholdApplied(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	root := declarationDistanceTree()

	short := findPattern(t, reg, "P20_5").Make().Evaluate(root)
	medium := findPattern(t, reg, "P20_7").Make().Evaluate(root)

	assert.Equal(t, []int{2}, short, "six-line distance exceeds the 5-line window")
	assert.Empty(t, medium, "six-line distance is within the 7-line window")
}

func TestFactories_FreshInstancePerCall(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	entry := findPattern(t, reg, "P20_5")

	assert.NotSame(t, entry.Make(), entry.Make())
}

func TestFullCatalog_TrivialASTYieldsNoFindings(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	root := node.New(node.UASTFile, "")

	for _, entry := range reg.Patterns() {
		lines := entry.Make().Evaluate(root)
		assert.Empty(t, lines, "pattern %s on trivial AST", entry.Code)
	}
}

func TestFullCatalog_MetricsEvaluateTrivialAST(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	root := node.New(node.UASTFile, "")

	for _, entry := range reg.Metrics() {
		score := entry.Make().Evaluate(root)

		// M11 counts one linear path even in an empty unit; everything else
		// scores zero.
		if entry.Code == "M11" {
			assert.Equal(t, 1, score)
		} else {
			assert.Equal(t, 0, score, "metric %s on trivial AST", entry.Code)
		}
	}
}
