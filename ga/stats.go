package ga

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the scores of a population.
type Stats struct {
	Best   float64
	Worst  float64
	Mean   float64
	StdDev float64
}

// Stats scores every gene and summarizes the result. An empty population
// yields NaN for every field.
func (pop *Population) Stats(score ScoreFunc) Stats {
	if len(pop.genes) == 0 {
		nan := math.NaN()
		return Stats{Best: nan, Worst: nan, Mean: nan, StdDev: nan}
	}

	fitnesses := make([]float64, len(pop.genes))
	for i, gene := range pop.genes {
		fitnesses[i] = score(gene)
	}

	s := Stats{
		Best:  floats.Max(fitnesses),
		Worst: floats.Min(fitnesses),
		Mean:  stat.Mean(fitnesses, nil),
	}
	if len(fitnesses) > 1 {
		s.StdDev = stat.StdDev(fitnesses, nil)
	}
	return s
}
