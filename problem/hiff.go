package problem

import (
	"github.com/smiilliin/genetic-algorithm/bitset"
)

// HIFF is the hierarchical if-and-only-if function over the first Bits bits.
// Every block of uniform bits at every level of a binary hierarchy scores its
// size. Bits should be a power of two.
type HIFF struct {
	Bits int
}

func (h HIFF) Evaluate(bits *bitset.BitVector) (fitness float64, optimal bool) {
	blockSize := 2
	optimal = true

	for blockSize <= h.Bits {
		for i := 0; i+blockSize <= h.Bits; i += blockSize {
			first := bits.Has(i)
			same := true
			for j := i + 1; j < i+blockSize; j++ {
				if bits.Has(j) != first {
					same = false
					optimal = false
					break
				}
			}
			if same {
				fitness += float64(blockSize)
			}
		}
		blockSize *= 2
	}

	return
}
