// Package cli implements the seqkit command tree: one subcommand per
// algorithm plus a demo that replays the canonical examples.
package cli

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/seqkit/internal/seqgen"
)

var (
	// ErrUnknownFormat is returned for an --output value other than text, json or yaml.
	ErrUnknownFormat = errors.New("cli: unknown output format")

	// ErrInputConflict is returned when --random is combined with positional values.
	ErrInputConflict = errors.New("cli: --random cannot be combined with explicit values")

	// ErrBadFlag is returned when a numeric flag is out of range.
	ErrBadFlag = errors.New("cli: invalid flag value")
)

// app carries the state shared by every subcommand.
type app struct {
	// global flags
	verbose bool
	format  string
	random  int
	seed    int64

	logger      *zap.Logger
	ownedLogger bool
}

// Option customizes the command tree built by New.
type Option func(*app)

// WithLogger injects a logger instead of building one from --verbose.
func WithLogger(l *zap.Logger) Option {
	return func(a *app) {
		if l != nil {
			a.logger = l
		}
	}
}

// New builds the root command.
func New(opts ...Option) *cobra.Command {
	a := &app{}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "seqkit",
		Short: "seqkit - single-pass sequence algorithms",
		Long: `seqkit runs small single-pass algorithms over integer sequences.

Values are given as arguments ("1 2 3" or "1,2,3") or generated with
--random N (deterministic for a given --seed).

Examples:
  seqkit mode 1 3 2 3 4 1 3
  seqkit pairs --target 5 1 2 3 4
  seqkit grow -n 6 --capacity 2
  seqkit prefix --random 10 --seed 7 -o yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.validateGlobals(); err != nil {
				return err
			}
			if a.logger != nil {
				return nil
			}

			config := zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger, a.ownedLogger = logger, true

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil && a.ownedLogger {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log every append, not only resizes")
	flags.StringVarP(&a.format, "output", "o", formatText, "output format: text, json or yaml")
	flags.IntVar(&a.random, "random", 0, "generate N random values instead of reading arguments")
	flags.Int64Var(&a.seed, "seed", 0, "seed for --random (0 uses the fixed default)")

	root.AddCommand(
		a.modeCmd(),
		a.dedupCmd(),
		a.pairsCmd(),
		a.growCmd(),
		a.prefixCmd(),
		a.demoCmd(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return New().Execute()
}

// validateGlobals checks the persistent flags.
func (a *app) validateGlobals() error {
	switch a.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, a.format)
	}
	if a.random < 0 {
		return fmt.Errorf("%w: --random must be non-negative (%d)", ErrBadFlag, a.random)
	}

	return nil
}

// input returns the sequence to process: positional values, or --random
// values when requested. distinct asks for pairwise-distinct random values.
func (a *app) input(args []string, distinct bool) ([]int, error) {
	if a.random == 0 {
		return seqgen.Parse(args)
	}
	if len(args) > 0 {
		return nil, ErrInputConflict
	}

	rng := a.rng()
	if distinct {
		return seqgen.Distinct(rng, a.random, -a.random, a.random)
	}

	return seqgen.Ints(rng, a.random, 0, a.random)
}

// rng returns the deterministic generator selected by --seed.
func (a *app) rng() *rand.Rand {
	return seqgen.FromSeed(a.seed)
}
