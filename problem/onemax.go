package problem

import "github.com/smiilliin/genetic-algorithm/bitset"

// OneMax counts the set bits among the first Bits bits, plus one so that the
// all-zero gene still has a share of the roulette wheel.
type OneMax struct {
	Bits int
}

func (om OneMax) Evaluate(bits *bitset.BitVector) (fitness float64, optimal bool) {
	ones := 0
	for i := 0; i < om.Bits; i++ {
		if bits.Has(i) {
			ones++
		}
	}
	return float64(ones + 1), ones == om.Bits
}
