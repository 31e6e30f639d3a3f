package ga

import (
	"fmt"
	"slices"

	"github.com/smiilliin/genetic-algorithm/bitset"
)

// roulette picks an index from candidates with probability proportional to
// its fitness, given a uniform draw r in [0, 1). The walk stops at the first
// candidate that drives r below zero. If rounding leaves r non-negative after
// the whole walk, the last candidate is picked.
func roulette(candidates []Solution, r float64) (int, error) {
	sum := 0.0
	for _, c := range candidates {
		sum += c.Fitness
	}
	if sum == 0 {
		return 0, ErrZeroScoreSum
	}

	for i, c := range candidates {
		r -= c.Fitness / sum
		if r < 0 {
			return i, nil
		}
	}
	return len(candidates) - 1, nil
}

// selection fills the pool with PoolSize genes drawn without replacement.
// Scores are computed once; picked candidates are removed from the wheel.
func (pop *Population) selection(score ScoreFunc) error {
	candidates := evaluate(pop.genes, score)

	for draw := 0; draw < pop.cfg.PoolSize; draw++ {
		i, err := roulette(candidates, pop.rng.Float64())
		if err != nil {
			return fmt.Errorf("selection draw %d of %d: %w", draw+1, pop.cfg.PoolSize, err)
		}
		pop.pool = append(pop.pool, candidates[i].Bits)
		candidates = slices.Delete(candidates, i, i+1)
	}
	return nil
}

// crossover replaces the population with GeneCount children. Each child
// takes every bit from one of two parents drawn uniformly, with replacement,
// from the pool.
func (pop *Population) crossover() {
	genes := make([]*bitset.BitVector, pop.cfg.GeneCount)
	for i := range genes {
		a := pop.pool[pop.rng.IntN(len(pop.pool))]
		b := pop.pool[pop.rng.IntN(len(pop.pool))]

		child := bitset.New(pop.cfg.byteLen())
		for j := 0; j < pop.cfg.BitSize; j++ {
			if pop.rng.Float64() < 0.5 {
				child.CopyBit(a, j)
			} else {
				child.CopyBit(b, j)
			}
		}
		genes[i] = child
	}
	pop.genes = genes
}

// mutation flips at most one random bit per gene.
func (pop *Population) mutation() {
	for _, gene := range pop.genes {
		if pop.rng.Float64() < pop.cfg.MutationP {
			gene.Flip(pop.rng.IntN(pop.cfg.BitSize))
		}
	}
}
