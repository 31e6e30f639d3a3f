package problem

import (
	"math"

	"github.com/smiilliin/genetic-algorithm/bitset"
)

// Quartic turns minimization of
//
//	f(x) = x^4/4 - 11x^3/6 + 9x^2/2 - 9x/2 + 3
//
// into a maximization problem with the score 2^(-2(f(x)-3)). The gene decodes
// to x = value/Scale. f has a local minimum at x = 1 and its global minimum
// at x = 3.
type Quartic struct {
	Bits  int
	Scale float64
}

// QuarticOptimum is the x at which Quartic scores highest.
const QuarticOptimum = 3.0

// quarticScale maps the full range of a bits-bit gene onto [0, 31/7.5], the
// range of a five-bit gene at scale 7.5.
func quarticScale(bits int) float64 {
	return float64(uint64(1)<<uint(bits)-1) * 7.5 / 31
}

// Objective is the function being minimized.
func (Quartic) Objective(x float64) float64 {
	return math.Pow(x, 4)/4 - 11*math.Pow(x, 3)/6 + 9*math.Pow(x, 2)/2 - 9*x/2 + 3
}

// X decodes a gene to the objective's argument.
func (q Quartic) X(bits *bitset.BitVector) float64 {
	return float64(bits.ToNumber(q.Bits)) / q.Scale
}

func (q Quartic) Evaluate(bits *bitset.BitVector) (fitness float64, optimal bool) {
	x := q.X(bits)
	fitness = math.Pow(2, -2*(q.Objective(x)-3))
	optimal = math.Abs(x-QuarticOptimum) <= 0.5/q.Scale+1e-9
	return
}
