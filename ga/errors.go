package ga

import "errors"

var (
	// ErrInvalidConfig is returned when a population parameter is out of range.
	ErrInvalidConfig = errors.New("ga: invalid config")

	// ErrPoolTooLarge is returned when the selection pool is larger than the
	// population it is drawn from.
	ErrPoolTooLarge = errors.New("ga: pool size is bigger than gene count")

	// ErrZeroScoreSum is returned by Step when the remaining candidates of a
	// selection draw all score zero, so no proportional pick is possible.
	ErrZeroScoreSum = errors.New("ga: score sum is zero")

	// ErrEmptyPool is returned by Step when the population was configured
	// with a pool size of zero and crossover has no parents to draw from.
	ErrEmptyPool = errors.New("ga: selection pool is empty")
)
