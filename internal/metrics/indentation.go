package metrics

import (
	"math"
	"sort"

	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// IndentationMode selects which boundary statistic Indentation reports.
type IndentationMode int

// Indentation modes. M3_1..M3_4 are the same algorithm instantiated with a
// different mode at catalog definition time.
const (
	IndentRightTotalVariance IndentationMode = iota
	IndentLeftTotalVariance
	IndentRightMaxVariance
	IndentLeftMaxVariance
)

// Indentation scores the variance of per-line code boundaries. The left
// boundary of a line is the smallest start column of any node on it; the
// right boundary is the largest end column. Ragged boundaries score high.
type Indentation struct {
	mode IndentationMode
}

// NewIndentation creates the M3 metric with the given mode.
func NewIndentation(mode IndentationMode) *Indentation {
	return &Indentation{mode: mode}
}

// Evaluate returns the selected variance statistic, rounded to an integer.
func (m *Indentation) Evaluate(root *node.Node) int {
	left, right := lineBoundaries(root)

	switch m.mode {
	case IndentLeftTotalVariance:
		return int(math.Round(variance(left)))
	case IndentLeftMaxVariance:
		return int(math.Round(maxSquaredDeviation(left)))
	case IndentRightMaxVariance:
		return int(math.Round(maxSquaredDeviation(right)))
	case IndentRightTotalVariance:
		fallthrough
	default:
		return int(math.Round(variance(right)))
	}
}

// lineBoundaries collects the left and right column boundary per source
// line, ordered by line number.
func lineBoundaries(root *node.Node) (left, right []float64) {
	type bounds struct{ left, right uint }

	perLine := make(map[uint]*bounds)

	root.VisitPreOrder(func(current *node.Node) {
		pos := current.Pos
		if pos == nil || pos.StartLine == 0 || pos.StartCol == 0 {
			return
		}

		lineBounds, exists := perLine[pos.StartLine]
		if !exists {
			lineBounds = &bounds{left: pos.StartCol, right: pos.EndCol}
			perLine[pos.StartLine] = lineBounds

			return
		}

		if pos.StartCol < lineBounds.left {
			lineBounds.left = pos.StartCol
		}

		if pos.EndCol > lineBounds.right {
			lineBounds.right = pos.EndCol
		}
	})

	lineNumbers := make([]uint, 0, len(perLine))
	for lineNumber := range perLine {
		lineNumbers = append(lineNumbers, lineNumber)
	}

	sort.Slice(lineNumbers, func(i, j int) bool { return lineNumbers[i] < lineNumbers[j] })

	for _, lineNumber := range lineNumbers {
		left = append(left, float64(perLine[lineNumber].left))
		right = append(right, float64(perLine[lineNumber].right))
	}

	return left, right
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	m := mean(values)
	sum := 0.0

	for _, value := range values {
		deviation := value - m
		sum += deviation * deviation
	}

	return sum / float64(len(values))
}

func maxSquaredDeviation(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	m := mean(values)
	largest := 0.0

	for _, value := range values {
		deviation := (value - m) * (value - m)
		if deviation > largest {
			largest = deviation
		}
	}

	return largest
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, value := range values {
		sum += value
	}

	return sum / float64(len(values))
}
