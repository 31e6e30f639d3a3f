package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/smiilliin/genetic-algorithm/ga"
	"github.com/smiilliin/genetic-algorithm/problem"
)

type options struct {
	problem     string
	bitSize     int
	geneCount   int
	poolSize    int
	mutationP   float64
	generations int
	seed        uint64
	verbosity   int
}

func parseCommandLine(args []string, stderr io.Writer) (options, error) {
	def := ga.DefaultConfig()

	var o options
	fs := flag.NewFlagSet("genetic-algorithm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.problem, "problem", "power", fmt.Sprintf("Problem to optimize %v.", problem.Names()))
	fs.IntVar(&o.bitSize, "bits", def.BitSize, "Number of bits per gene.")
	fs.IntVar(&o.geneCount, "genes", def.GeneCount, "Population size.")
	fs.IntVar(&o.poolSize, "pool", def.PoolSize, "Number of parents selected per generation.")
	fs.Float64Var(&o.mutationP, "mutation", def.MutationP, "Probability of flipping one bit of a new gene.")
	fs.IntVar(&o.generations, "generations", 100, "Number of generations to run.")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed, 0 picks one at random.")
	fs.IntVar(&o.verbosity, "verbosity", 0, "Verbosity of the output.")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, o options, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, o.verbosity)

	p, err := problem.Lookup(o.problem, o.bitSize)
	if err != nil {
		return err
	}

	seed := o.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("starting run", "problem", o.problem, "seed", seed, "generations", o.generations)

	pop, err := ga.New(ga.Config{
		BitSize:   o.bitSize,
		GeneCount: o.geneCount,
		PoolSize:  o.poolSize,
		MutationP: o.mutationP,
	}, ga.WithRand(rand.New(rand.NewPCG(seed, seed))), ga.WithLogger(logger))
	if err != nil {
		return err
	}

	score := problem.Score(p)
	if err := pop.Run(ctx, score, o.generations); err != nil {
		return err
	}

	best, fitness := pop.Best(score)
	_, optimal := p.Evaluate(best)
	stats := pop.Stats(score)
	logger.Info("run finished",
		"generation", pop.Generation(),
		"mean", stats.Mean,
		"stddev", stats.StdDev,
		"diversity", pop.Diversity(),
	)

	fmt.Fprintf(stdout, "best %s value=%d score=%g optimal=%t\n",
		best.Binary(o.bitSize), best.ToNumber(o.bitSize), fitness, optimal)
	return nil
}

func main() {
	o, err := parseCommandLine(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
