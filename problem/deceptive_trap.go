package problem

import (
	"github.com/smiilliin/genetic-algorithm/bitset"
)

// DeceptiveTrap splits the first Bits bits into blocks of K. A block of all
// ones scores K; otherwise it scores K-1 minus its number of ones, which
// leads hill climbers towards the all-zero block. A K of zero or less scores
// 0 and is never optimal.
type DeceptiveTrap struct {
	K    int
	Bits int
}

func (dt DeceptiveTrap) Evaluate(bits *bitset.BitVector) (fitness float64, optimal bool) {
	k := dt.K
	if k <= 0 {
		return 0, false
	}
	optimal = true

	for i := 0; i < dt.Bits/k; i++ {
		t := 0 // number of bits set to 1
		for j := 0; j < k; j++ {
			if bits.Has(i*k + j) {
				t++
			}
		}
		if t == k {
			fitness += float64(t)
		} else {
			fitness += float64(k - t - 1)
			optimal = false
		}
	}
	return
}
