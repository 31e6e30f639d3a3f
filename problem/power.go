package problem

import (
	"math"

	"github.com/smiilliin/genetic-algorithm/bitset"
)

// Power scores a gene as (x+1)^Exp, where x is the gene decoded as a Bits-bit
// unsigned integer. The optimum is the all-ones gene.
type Power struct {
	Bits int
	Exp  float64
}

func (p Power) Evaluate(bits *bitset.BitVector) (fitness float64, optimal bool) {
	x := bits.ToNumber(p.Bits)
	fitness = math.Pow(float64(x)+1, p.Exp)
	optimal = x == uint64(1)<<uint(p.Bits)-1
	return
}
