package registry

import (
	"github.com/Sumatoshi-tech/smellhound/internal/metrics"
	"github.com/Sumatoshi-tech/smellhound/internal/patterns"
	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// nestedLoopDepth is the nesting level at which P32 starts flagging.
const nestedLoopDepth = 2

// Variable declaration distance windows for the P20 variants.
const (
	declDistanceShort  = 5
	declDistanceMedium = 7
	declDistanceLong   = 11
)

// patternCatalog is the versioned pattern namespace. Codes are persisted
// externally as dataset column names and CLI identifiers; never renumber or
// reuse them. Declaration order fixes the default execution order.
func patternCatalog() []Entry[Pattern] {
	return []Entry[Pattern]{
		{Name: "Asserts", Code: "P1", Make: func() Pattern { return patterns.NewAsserts() }},
		{Name: "Setters", Code: "P2", Make: func() Pattern { return patterns.NewClassicSetter() }},
		{Name: "Empty Rethrow", Code: "P3", Make: func() Pattern { return patterns.NewEmptyRethrow() }},
		{Name: "Prohibited class name", Code: "P4", Make: func() Pattern { return patterns.NewErClass() }},
		{Name: "Force Type Casting", Code: "P5", Make: func() Pattern { return patterns.NewForceTypeCast() }},
		{Name: "Count If Return", Code: "P6", Make: func() Pattern { return patterns.NewIfReturnElse() }},
		{Name: "Implements Multi", Code: "P7", Make: func() Pattern { return patterns.NewImplementsMulti() }},
		{Name: "Instance of", Code: "P8", Make: func() Pattern { return patterns.NewInstanceOf() }},
		{Name: "Many primary constructors", Code: "P9", Make: func() Pattern { return patterns.NewManyPrimaryCtors() }},
		{Name: "Method chain", Code: "P10", Make: func() Pattern { return patterns.NewMethodChaining() }},
		{Name: "Multiple try", Code: "P11", Make: func() Pattern { return patterns.NewMultipleTry() }},
		{Name: "Non final attribute", Code: "P12", Make: func() Pattern { return patterns.NewNonFinalAttribute() }},
		{Name: "Null check", Code: "P13", Make: func() Pattern { return patterns.NewNullCheck() }},
		{Name: "Partial synchronized", Code: "P14", Make: func() Pattern { return patterns.NewPartialSynchronized() }},
		{Name: "Redundant catch", Code: "P15", Make: func() Pattern { return patterns.NewRedundantCatch() }},
		{Name: "Return null", Code: "P16", Make: func() Pattern { return patterns.NewReturnNull() }},
		{Name: "String concat", Code: "P17", Make: func() Pattern { return patterns.NewStringConcat() }},
		{Name: "Super Method", Code: "P18", Make: func() Pattern { return patterns.NewSuperMethod() }},
		{Name: "This in constructor", Code: "P19", Make: func() Pattern { return patterns.NewHybridConstructor() }},
		{
			Name: "Var declaration distance for 5 lines",
			Code: "P20_5",
			Make: func() Pattern { return patterns.NewVarDeclarationDistance(declDistanceShort) },
		},
		{
			Name: "Var declaration distance for 7 lines",
			Code: "P20_7",
			Make: func() Pattern { return patterns.NewVarDeclarationDistance(declDistanceMedium) },
		},
		{
			Name: "Var declaration distance for 11 lines",
			Code: "P20_11",
			Make: func() Pattern { return patterns.NewVarDeclarationDistance(declDistanceLong) },
		},
		{Name: "Var in the middle", Code: "P21", Make: func() Pattern { return patterns.NewVarMiddle() }},
		{Name: "Array as function argument", Code: "P22", Make: func() Pattern { return patterns.NewArrayAsArgument() }},
		{Name: "Joined validation", Code: "P23", Make: func() Pattern { return patterns.NewJoinedValidation() }},
		{Name: "Non final class", Code: "P24", Make: func() Pattern { return patterns.NewNonFinalClass() }},
		{Name: "Private static method", Code: "P25", Make: func() Pattern { return patterns.NewPrivateStaticMethod() }},
		{Name: "Public static method", Code: "P26", Make: func() Pattern { return patterns.NewPublicStaticMethod() }},
		{Name: "Var siblings", Code: "P27", Make: func() Pattern { return patterns.NewVarSiblings() }},
		{Name: "Null Assignment", Code: "P28", Make: func() Pattern { return patterns.NewNullAssignment() }},
		{Name: "Multiple While", Code: "P29", Make: func() Pattern { return patterns.NewMultipleWhile() }},
		{Name: "Protected Method", Code: "P30", Make: func() Pattern { return patterns.NewProtectedMethod() }},
		{Name: "Send Null", Code: "P31", Make: func() Pattern { return patterns.NewSendNull() }},
		{
			Name: "Nested Loop",
			Code: "P32",
			Make: func() Pattern {
				return patterns.NewNestedLoops(nestedLoopDepth, node.KindDo, node.KindFor, node.KindWhile)
			},
		},
		{Name: "Incomplete For", Code: "P33", Make: func() Pattern { return patterns.NewIncompleteFor() }},
	}
}

// metricCatalog is the versioned metric namespace.
func metricCatalog() []Entry[Metric] {
	return []Entry[Metric]{
		{Name: "Entropy", Code: "M1", Make: func() Metric { return metrics.NewEntropy() }},
		{Name: "NCSS lightweight", Code: "M2", Make: func() Metric { return metrics.NewNCSS() }},
		{
			Name: "Indentation counter: Right total variance",
			Code: "M3_1",
			Make: func() Metric { return metrics.NewIndentation(metrics.IndentRightTotalVariance) },
		},
		{
			Name: "Indentation counter: Left total variance",
			Code: "M3_2",
			Make: func() Metric { return metrics.NewIndentation(metrics.IndentLeftTotalVariance) },
		},
		{
			Name: "Indentation counter: Right max variance",
			Code: "M3_3",
			Make: func() Metric { return metrics.NewIndentation(metrics.IndentRightMaxVariance) },
		},
		{
			Name: "Indentation counter: Left max variance",
			Code: "M3_4",
			Make: func() Metric { return metrics.NewIndentation(metrics.IndentLeftMaxVariance) },
		},
		{Name: "Cognitive Complexity", Code: "M4", Make: func() Metric { return metrics.NewCognitiveComplexity() }},
		{Name: "LCOM4", Code: "M5", Make: func() Metric { return metrics.NewLCOM4() }},
		{Name: "Max diameter of AST", Code: "M6", Make: func() Metric { return metrics.NewMaxDiameter() }},
		{Name: "Number of variables", Code: "M7", Make: func() Metric { return metrics.NewNumVars() }},
		{Name: "Number of methods", Code: "M8", Make: func() Metric { return metrics.NewNumMethods() }},
		{Name: "Response for class", Code: "M9", Make: func() Metric { return metrics.NewRFC() }},
		{Name: "Fan out", Code: "M10", Make: func() Metric { return metrics.NewFanOut() }},
		{Name: "Cyclomatic Complexity", Code: "M11", Make: func() Metric { return metrics.NewCyclomaticComplexity() }},
	}
}

// patternExcludes lists pattern codes disabled by default. Each exclusion is
// an independent policy decision; all remain individually invocable.
func patternExcludes() []string {
	return []string{
		// P9 relies on structural constructor marking and degrades on trees
		// built from raw text.
		"P9",
	}
}

// metricExcludes lists metric codes disabled by default.
func metricExcludes() []string {
	return []string{
		// M1 and the M3 family are sensitive to formatting rather than
		// structure; M5, M7 and M8 proved too noisy as ranking features.
		"M1",
		"M3_1", "M3_2", "M3_3", "M3_4",
		"M5",
		"M7",
		"M8",
	}
}
