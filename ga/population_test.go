package ga

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smiilliin/genetic-algorithm/bitset"
)

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func squareScore(gene *bitset.BitVector) float64 {
	return math.Pow(float64(gene.ToNumber(5))+1, 2)
}

func hamming(a, b *bitset.BitVector, bits int) int {
	d := 0
	for i := 0; i < bits; i++ {
		if a.Has(i) != b.Has(i) {
			d++
		}
	}
	return d
}

var configTests = []struct {
	name string
	cfg  Config
	err  error
}{
	{"default", DefaultConfig(), nil},
	{"pool equals genes", Config{BitSize: 8, GeneCount: 4, PoolSize: 4}, nil},
	{"empty pool", Config{BitSize: 8, GeneCount: 4, PoolSize: 0}, nil},
	{"pool too large", Config{BitSize: 5, GeneCount: 10, PoolSize: 11, MutationP: 0.4}, ErrPoolTooLarge},
	{"zero bits", Config{BitSize: 0, GeneCount: 4, PoolSize: 2}, ErrInvalidConfig},
	{"zero genes", Config{BitSize: 8, GeneCount: 0, PoolSize: 0}, ErrInvalidConfig},
	{"negative pool", Config{BitSize: 8, GeneCount: 4, PoolSize: -1}, ErrInvalidConfig},
}

func TestConfigValidate(t *testing.T) {
	for _, test := range configTests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}

func TestNewRejectsOversizedPool(t *testing.T) {
	pop, err := NewPopulation(5, 10, 11, 0.4)
	assert.ErrorIs(t, err, ErrPoolTooLarge)
	assert.Nil(t, pop)
}

func TestNew(t *testing.T) {
	pop, err := NewPopulation(5, 10, 4, 0.4, seeded(1))
	require.NoError(t, err)

	assert.Equal(t, 10, pop.Size())
	assert.Len(t, pop.Genes(), 10)
	assert.Empty(t, pop.Pool())
	assert.Equal(t, 0, pop.Generation())
	for _, gene := range pop.Genes() {
		assert.Equal(t, 1, gene.Len())
	}

	pop, err = NewPopulation(17, 3, 3, 0, seeded(1))
	require.NoError(t, err)
	for _, gene := range pop.Genes() {
		assert.Equal(t, 3, gene.Len())
	}
}

func TestStepPreservesSizes(t *testing.T) {
	pop, err := NewPopulation(5, 10, 4, 0.4, seeded(2))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.NoError(t, pop.Step(squareScore))
		assert.Len(t, pop.Pool(), 4)
		assert.Len(t, pop.Genes(), 10)
	}
	assert.Equal(t, 50, pop.Generation())
}

func TestStepConverges(t *testing.T) {
	pop, err := New(DefaultConfig(), seeded(3))
	require.NoError(t, err)

	require.NoError(t, pop.Step(squareScore))
	assert.Len(t, pop.Pool(), pop.Config().PoolSize)
	assert.Len(t, pop.Genes(), pop.Config().GeneCount)

	for i := 0; i < 100; i++ {
		require.NoError(t, pop.Step(squareScore))
	}
	best, score := pop.Best(squareScore)
	assert.Greater(t, best.ToNumber(5), uint64(20))
	assert.Equal(t, squareScore(best), score)
}

func TestStepFindsMinimumOfQuartic(t *testing.T) {
	pop, err := NewPopulation(5, 100, 40, 0.04, seeded(4))
	require.NoError(t, err)

	f := func(x float64) float64 {
		return math.Pow(x, 4)/4 - 11*math.Pow(x, 3)/6 + 9*math.Pow(x, 2)/2 - 9*x/2 + 3
	}
	s := func(x float64) float64 {
		return math.Pow(2, -2*(x-3))
	}
	score := func(gene *bitset.BitVector) float64 {
		return s(f(float64(gene.ToNumber(5)) / 7.5))
	}

	require.NoError(t, pop.Run(context.Background(), score, 500))

	best, _ := pop.Best(score)
	assert.InDelta(t, 3, float64(best.ToNumber(5))/7.5, 1)
}

func TestStepFailsOnZeroScores(t *testing.T) {
	pop, err := NewPopulation(8, 6, 3, 0.1, seeded(5))
	require.NoError(t, err)
	before := pop.Genes()

	err = pop.Step(func(*bitset.BitVector) float64 { return 0 })
	assert.ErrorIs(t, err, ErrZeroScoreSum)
	assert.Equal(t, before, pop.Genes())
	assert.Equal(t, 0, pop.Generation())
}

func TestStepFailsWhenRemainingScoresAreZero(t *testing.T) {
	pop, err := NewPopulation(8, 4, 2, 0.1, seeded(6))
	require.NoError(t, err)
	only := pop.genes[2]

	err = pop.Step(func(gene *bitset.BitVector) float64 {
		if gene == only {
			return 1
		}
		return 0
	})
	require.ErrorIs(t, err, ErrZeroScoreSum)
	assert.Equal(t, []*bitset.BitVector{only}, pop.Pool())
}

func TestStepWithEmptyPool(t *testing.T) {
	pop, err := NewPopulation(8, 4, 0, 0.1, seeded(7))
	require.NoError(t, err)
	assert.ErrorIs(t, pop.Step(squareScore), ErrEmptyPool)
}

func TestPoolSharesPreviousGeneration(t *testing.T) {
	pop, err := NewPopulation(8, 12, 5, 0.2, seeded(8))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		previous := pop.Genes()
		require.NoError(t, pop.Step(squareScore))
		for _, parent := range pop.Pool() {
			assert.True(t, slices.Contains(previous, parent), "pool gene not taken from previous generation")
			assert.False(t, slices.Contains(pop.Genes(), parent), "pool gene reused as child")
		}
	}
}

func TestSelectionWithoutReplacement(t *testing.T) {
	pop, err := NewPopulation(8, 10, 10, 0, seeded(9))
	require.NoError(t, err)
	previous := pop.Genes()

	require.NoError(t, pop.Step(func(*bitset.BitVector) float64 { return 1 }))

	seen := make(map[*bitset.BitVector]bool)
	for _, parent := range pop.Pool() {
		assert.False(t, seen[parent], "gene selected twice")
		seen[parent] = true
	}
	assert.ElementsMatch(t, previous, pop.Pool())
}

func TestCrossoverFromSingleParent(t *testing.T) {
	pop, err := NewPopulation(5, 6, 1, 0, seeded(10))
	require.NoError(t, err)
	for _, gene := range pop.genes {
		gene.Set(7)
	}

	require.NoError(t, pop.Step(squareScore))
	parent := pop.Pool()[0]
	for _, child := range pop.Genes() {
		assert.Equal(t, parent.ToNumber(5), child.ToNumber(5))
		assert.False(t, child.Has(7), "bit beyond bit size copied")
	}
}

func TestMutationFlipsOneBit(t *testing.T) {
	pop, err := NewPopulation(16, 8, 1, 1, seeded(11))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, pop.Step(squareScore))
		parent := pop.Pool()[0]
		for _, child := range pop.Genes() {
			assert.Equal(t, 1, hamming(parent, child, 16))
		}
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	a, err := NewPopulation(12, 20, 8, 0.3, seeded(12))
	require.NoError(t, err)
	b, err := NewPopulation(12, 20, 8, 0.3, seeded(12))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		require.NoError(t, a.Step(squareScore))
		require.NoError(t, b.Step(squareScore))
	}
	for i, gene := range a.Genes() {
		assert.True(t, gene.Equal(b.Genes()[i]), "gene %d differs", i)
	}
}

func TestReset(t *testing.T) {
	pop, err := NewPopulation(8, 10, 4, 0.4, seeded(13))
	require.NoError(t, err)
	require.NoError(t, pop.Step(squareScore))

	before := pop.Genes()
	pool := pop.Pool()
	pop.Reset()

	assert.Len(t, pop.Genes(), 10)
	for _, gene := range pop.Genes() {
		assert.False(t, slices.Contains(before, gene))
	}
	assert.Equal(t, pool, pop.Pool())
	assert.Equal(t, 0, pop.Generation())
}

func TestBestKeepsFirstOfEqualScores(t *testing.T) {
	pop, err := NewPopulation(8, 3, 1, 0, seeded(14))
	require.NoError(t, err)

	best, score := pop.Best(func(*bitset.BitVector) float64 { return 2 })
	assert.Same(t, pop.genes[0], best)
	assert.Equal(t, 2.0, score)

	target := pop.genes[1]
	best, score = pop.Best(func(gene *bitset.BitVector) float64 {
		if gene == target {
			return 5
		}
		return 1
	})
	assert.Same(t, target, best)
	assert.Equal(t, 5.0, score)
}

func TestBestOfEmptyPopulation(t *testing.T) {
	pop := &Population{}
	best, score := pop.Best(squareScore)
	assert.Equal(t, 0, best.Len())
	assert.Equal(t, -math.MaxFloat64, score)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	pop, err := NewPopulation(8, 10, 4, 0.4, seeded(15))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pop.Run(ctx, squareScore, 10), context.Canceled)
	assert.Equal(t, 0, pop.Generation())
}

func TestRunWrapsStepErrors(t *testing.T) {
	pop, err := NewPopulation(8, 10, 4, 0.4, seeded(16))
	require.NoError(t, err)

	err = pop.Run(context.Background(), func(*bitset.BitVector) float64 { return 0 }, 3)
	assert.ErrorIs(t, err, ErrZeroScoreSum)
	assert.Contains(t, err.Error(), "generation 1")
}

func TestRunLogsGenerations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pop, err := NewPopulation(5, 10, 4, 0.4, seeded(17), WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, pop.Run(context.Background(), squareScore, 3))

	out := buf.String()
	assert.Contains(t, out, `"msg":"population created"`)
	assert.Contains(t, out, `"msg":"generation completed"`)
	assert.Contains(t, out, `"generation":3`)
}
