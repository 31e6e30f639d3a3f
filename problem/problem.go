// Package problem provides benchmark score functions over bit vectors.
package problem

import (
	"fmt"
	"sort"

	"github.com/smiilliin/genetic-algorithm/bitset"
)

// Problem scores a bit vector and reports whether it is a global optimum.
type Problem interface {
	Evaluate(bits *bitset.BitVector) (fitness float64, optimal bool)
}

// Score adapts p to a plain score function.
func Score(p Problem) func(*bitset.BitVector) float64 {
	return func(bits *bitset.BitVector) float64 {
		fitness, _ := p.Evaluate(bits)
		return fitness
	}
}

// Offset adds Delta to the fitness of a wrapped problem. Lookup uses it to
// keep problems whose raw scores can be zero usable with roulette selection.
type Offset struct {
	Problem
	Delta float64
}

func (o Offset) Evaluate(bits *bitset.BitVector) (fitness float64, optimal bool) {
	fitness, optimal = o.Problem.Evaluate(bits)
	return fitness + o.Delta, optimal
}

const trapSize = 4

type entry struct {
	minBits    int
	newProblem func(bits int) Problem
}

var registry = map[string]entry{
	"power":   {1, func(bits int) Problem { return Power{Bits: bits, Exp: 2} }},
	"quartic": {1, func(bits int) Problem { return Quartic{Bits: bits, Scale: quarticScale(bits)} }},
	"onemax":  {1, func(bits int) Problem { return OneMax{Bits: bits} }},
	"trap":    {trapSize, func(bits int) Problem { return Offset{DeceptiveTrap{K: trapSize, Bits: bits}, 1} }},
	"hiff":    {2, func(bits int) Problem { return Offset{HIFF{Bits: bits}, 1} }},
}

// Names lists the problems known to Lookup.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named problem sized for bits-bit genes. Every problem
// it returns scores each gene above zero.
func Lookup(name string, bits int) (Problem, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("problem: unknown problem %q (known: %v)", name, Names())
	}
	if bits < e.minBits || bits > 64 {
		return nil, fmt.Errorf("problem: bit size %d out of range [%d, 64] for %s", bits, e.minBits, name)
	}
	return e.newProblem(bits), nil
}
