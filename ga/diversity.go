package ga

import "math"

// frequency counts how many genes have each bit position set.
func frequency(pop *Population) []int {
	freqs := make([]int, pop.cfg.BitSize)
	for _, gene := range pop.genes {
		for i := range freqs {
			if gene.Has(i) {
				freqs[i]++
			}
		}
	}
	return freqs
}

// entropy computes the Shannon entropy of a bit that is set in ones of size
// genes.
func entropy(ones, size int) float64 {
	p := 0.0
	for _, f := range [2]int{ones, size - ones} {
		if f > 0 {
			p += -(float64(f) / float64(size)) * (math.Log(float64(f)) - math.Log(float64(size)))
		}
	}
	return p
}

// Diversity returns the mean per-bit entropy of the population in nats.
// It is 0 when every gene is identical and ln 2 when every bit position is
// split evenly.
func (pop *Population) Diversity() float64 {
	if len(pop.genes) == 0 || pop.cfg.BitSize == 0 {
		return 0
	}

	sum := 0.0
	for _, ones := range frequency(pop) {
		sum += entropy(ones, len(pop.genes))
	}
	return sum / float64(pop.cfg.BitSize)
}
