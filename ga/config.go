package ga

import "fmt"

// Config holds the parameters of a population.
type Config struct {
	// BitSize is the number of logical bits per gene.
	BitSize int
	// GeneCount is the population size.
	GeneCount int
	// PoolSize is the number of genes selected as breeding parents in
	// every generation. It must not exceed GeneCount.
	PoolSize int
	// MutationP is the probability that a new gene gets one bit flipped.
	// It is not range checked.
	MutationP float64
}

// DefaultConfig returns a small configuration suited to five-bit problems.
func DefaultConfig() Config {
	return Config{
		BitSize:   5,
		GeneCount: 10,
		PoolSize:  4,
		MutationP: 0.4,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.BitSize <= 0 {
		return fmt.Errorf("%w: bit size must be > 0 (got %d)", ErrInvalidConfig, c.BitSize)
	}
	if c.GeneCount <= 0 {
		return fmt.Errorf("%w: gene count must be > 0 (got %d)", ErrInvalidConfig, c.GeneCount)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("%w: pool size must be >= 0 (got %d)", ErrInvalidConfig, c.PoolSize)
	}
	if c.PoolSize > c.GeneCount {
		return fmt.Errorf("%w (%d > %d)", ErrPoolTooLarge, c.PoolSize, c.GeneCount)
	}
	return nil
}

// byteLen is the buffer size of every gene.
func (c Config) byteLen() int {
	return (c.BitSize-1)/8 + 1
}
