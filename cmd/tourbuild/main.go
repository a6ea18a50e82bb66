// Command tourbuild reads a coordinate file and prints a nearest-insertion
// tour with its cost, build time and insertion count.
//
// Usage:
//
//	tourbuild [flags] <points-file>
//
// Flags override values from the optional -config YAML file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourgeo/pointset"
	"github.com/katalvlaran/tourgeo/tsp"
)

// errUsage signals a command-line error already reported to the user.
var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "tourbuild: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, input, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	log := newLogger(stderr, cfg.Verbose)
	defer func() { _ = log.Sync() }()

	runID := uuid.New().String()
	log = log.With(zap.String("run_id", runID), zap.String("input", input))

	ps, err := pointset.ParseFile(input)
	if err != nil {
		return fmt.Errorf("failed to read points: %w", err)
	}
	log.Info("points loaded", zap.Int("count", ps.Len()))

	opts, err := cfg.options()
	if err != nil {
		return err
	}
	opts.Observer = &zapObserver{log: log}

	solver := "insertion"
	solve := tsp.Solve
	if cfg.Exact {
		solver = "bruteforce"
		solve = tsp.BruteForce
	}

	res, err := solve(ps, opts)
	if err != nil {
		log.Error("solve failed", zap.String("solver", solver), zap.Error(err))
		return fmt.Errorf("failed to solve: %w", err)
	}
	log.Info("solved",
		zap.String("solver", solver),
		zap.Float64("cost", res.Cost),
		zap.Duration("elapsed", res.Elapsed),
		zap.Int("steps", res.Steps),
	)

	rep, err := newReport(runID, input, solver, ps, res)
	if err != nil {
		return err
	}
	return rep.write(stdout, cfg.Format)
}

// parseArgs merges the config file and the command line.
func parseArgs(args []string, stderr io.Writer) (Config, string, error) {
	fs := flag.NewFlagSet("tourbuild", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file")
		flagCfg    = DefaultConfig()
	)
	fs.StringVar(&flagCfg.Start, "start", flagCfg.Start, "start policy: first, fixed or seeded")
	fs.IntVar(&flagCfg.StartKey, "start-key", flagCfg.StartKey, "start key for -start=fixed")
	fs.Int64Var(&flagCfg.Seed, "seed", flagCfg.Seed, "seed for -start=seeded")
	fs.DurationVar(&flagCfg.Timeout, "timeout", flagCfg.Timeout, "abort after this build time (0 = none)")
	fs.BoolVar(&flagCfg.Exact, "exact", flagCfg.Exact, "use the exhaustive solver (at most 10 points)")
	fs.StringVar(&flagCfg.Format, "format", flagCfg.Format, "output format: text or yaml")
	fs.BoolVar(&flagCfg.Verbose, "v", flagCfg.Verbose, "log every insertion")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: tourbuild [flags] <points-file>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, "", errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return Config{}, "", errUsage
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return Config{}, "", err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		cfg.override(f.Name, flagCfg)
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}

	return cfg, fs.Arg(0), nil
}
