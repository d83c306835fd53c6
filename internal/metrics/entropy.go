package metrics

import (
	"math"

	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// entropyScale converts fractional bits into an integer score.
const entropyScale = 100

// Entropy scores the Shannon entropy of the token stream, in hundredths of
// a bit. Low entropy means repetitive code.
type Entropy struct{}

// NewEntropy creates the M1 metric.
func NewEntropy() *Entropy { return &Entropy{} }

// Evaluate returns round(entropy * 100) over token frequencies.
func (*Entropy) Evaluate(root *node.Node) int {
	frequency := make(map[string]int)
	total := 0

	root.VisitPreOrder(func(current *node.Node) {
		if current.Token != "" {
			frequency[current.Token]++
			total++
		}
	})

	if total == 0 {
		return 0
	}

	entropy := 0.0

	for _, count := range frequency {
		probability := float64(count) / float64(total)
		entropy -= probability * math.Log2(probability)
	}

	return int(math.Round(entropy * entropyScale))
}
