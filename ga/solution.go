package ga

import (
	"fmt"

	"github.com/smiilliin/genetic-algorithm/bitset"
)

// ScoreFunc scores a gene. Higher is better.
//
// Selection is fitness proportional, so a ScoreFunc should return
// non-negative values and depend only on the bits of the gene. Negative
// scores distort the roulette wheel and an all-zero population makes Step
// fail with ErrZeroScoreSum.
type ScoreFunc func(gene *bitset.BitVector) float64

// Solution is a gene paired with its score.
type Solution struct {
	Fitness float64
	Bits    *bitset.BitVector
}

func (s Solution) String() string {
	return fmt.Sprintf("%v %v", s.Bits, s.Fitness)
}

func evaluate(genes []*bitset.BitVector, score ScoreFunc) []Solution {
	solutions := make([]Solution, len(genes))
	for i, gene := range genes {
		solutions[i] = Solution{Fitness: score(gene), Bits: gene}
	}
	return solutions
}
