package ga

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/smiilliin/genetic-algorithm/bitset"
)

// Population is a collection of genes evolved by fitness-proportional
// selection, uniform crossover and single-bit mutation.
//
// A Population is not safe for concurrent use. Genes in the selection pool
// are shared with the generation they were selected from; they are only
// read by crossover and are released when the next Step clears the pool.
type Population struct {
	cfg    Config
	rng    *rand.Rand
	logger *slog.Logger

	genes      []*bitset.BitVector
	pool       []*bitset.BitVector
	generation int
}

// New returns a population of cfg.GeneCount randomized genes.
func New(cfg Config, opts ...Option) (*Population, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	pop := &Population{
		cfg:    cfg,
		rng:    o.rng,
		logger: o.logger,
		pool:   make([]*bitset.BitVector, 0, cfg.PoolSize),
	}
	pop.genes = pop.randomGenes()

	pop.logger.Debug("population created",
		"bit_size", cfg.BitSize,
		"gene_count", cfg.GeneCount,
		"pool_size", cfg.PoolSize,
		"mutation_p", cfg.MutationP,
	)
	return pop, nil
}

// NewPopulation is shorthand for New with a Config built from its arguments.
func NewPopulation(bitSize, geneCount, poolSize int, mutationP float64, opts ...Option) (*Population, error) {
	return New(Config{
		BitSize:   bitSize,
		GeneCount: geneCount,
		PoolSize:  poolSize,
		MutationP: mutationP,
	}, opts...)
}

func (pop *Population) randomGenes() []*bitset.BitVector {
	genes := make([]*bitset.BitVector, pop.cfg.GeneCount)
	for i := range genes {
		genes[i] = bitset.New(pop.cfg.byteLen())
		genes[i].Randomize(pop.rng)
	}
	return genes
}

// Reset replaces every gene with a freshly randomized one. The pool and
// the configuration are left untouched.
func (pop *Population) Reset() {
	pop.genes = pop.randomGenes()
	pop.generation = 0
	pop.logger.Debug("population reset", "gene_count", pop.cfg.GeneCount)
}

// Step advances the population by one generation: the pool is refilled by
// selection, the population is replaced by crossover over the pool, and the
// new genes are mutated.
//
// A failed Step is not rolled back. The pool may be partially filled while
// the genes still hold the previous generation.
func (pop *Population) Step(score ScoreFunc) error {
	pop.pool = pop.pool[:0]

	if pop.cfg.PoolSize == 0 {
		return ErrEmptyPool
	}
	if err := pop.selection(score); err != nil {
		pop.logger.Warn("selection failed", "generation", pop.generation, "error", err)
		return err
	}
	pop.crossover()
	pop.mutation()
	pop.generation++
	return nil
}

// Run calls Step generations times. It stops early with the context error
// when ctx is done.
func (pop *Population) Run(ctx context.Context, score ScoreFunc, generations int) error {
	for i := 0; i < generations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := pop.Step(score); err != nil {
			return fmt.Errorf("generation %d: %w", pop.generation+1, err)
		}
		if pop.logger.Enabled(ctx, slog.LevelDebug) {
			s := pop.Stats(score)
			pop.logger.DebugContext(ctx, "generation completed",
				"generation", pop.generation,
				"best", s.Best,
				"mean", s.Mean,
				"diversity", pop.Diversity(),
			)
		}
	}
	return nil
}

// Best returns the highest scoring gene and its score. Ties go to the gene
// that comes first. An empty population yields an empty gene scored
// -math.MaxFloat64.
func (pop *Population) Best(score ScoreFunc) (*bitset.BitVector, float64) {
	best, bestScore := bitset.New(0), -math.MaxFloat64
	for _, gene := range pop.genes {
		if s := score(gene); s > bestScore {
			best, bestScore = gene, s
		}
	}
	return best, bestScore
}

// Evaluate scores every gene in population order.
func (pop *Population) Evaluate(score ScoreFunc) []Solution {
	return evaluate(pop.genes, score)
}

// Genes returns the current generation. The slice is a copy; the genes are
// not.
func (pop *Population) Genes() []*bitset.BitVector {
	return append([]*bitset.BitVector(nil), pop.genes...)
}

// Pool returns the parents selected by the last Step.
func (pop *Population) Pool() []*bitset.BitVector {
	return append([]*bitset.BitVector(nil), pop.pool...)
}

// Size returns the number of genes.
func (pop *Population) Size() int {
	return len(pop.genes)
}

// Generation returns the number of completed steps since creation or the
// last Reset.
func (pop *Population) Generation() int {
	return pop.generation
}

// Config returns the population parameters.
func (pop *Population) Config() Config {
	return pop.cfg
}

func (pop *Population) String() string {
	return fmt.Sprintf("%v", pop.genes)
}
