package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

type options struct {
	verbose bool
	values  []int
	index   int
	output  string
}

// newRootCmd builds the command with its own flag state so tests can run it
// repeatedly.
func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "ninety_nine",
		Short: "Evaluate the list problems P01-P06 on a linked list",
		Long: `Builds a singly-linked list and prints last, penultimate, k-th element,
length, reverse and palindrome for it.

Without --values the literal fixtures are evaluated:
  [1 1 2 3 5 8 13] at index 4, [1 2 1] at index 3, [1] at index 0

Example:
  ninety_nine --values 1,2,3,2,1 --index 2 --output yaml`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// tests install their own logger
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.values, "values", nil, "list elements, comma separated (default: built-in fixtures)")
	cmd.Flags().IntVar(&opts.index, "index", 0, "index for the k-th element problem")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text or yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cases := fixtures
	if cmd.Flags().Changed("values") {
		if len(opts.values) == 0 {
			return fmt.Errorf("--values: %w", errEmptyList)
		}
		cases = []fixture{{values: opts.values, index: opts.index}}
	}

	reports, err := evaluate(cases)
	if err != nil {
		return err
	}
	logger.Debug("evaluated lists",
		zap.Int("count", len(reports)),
		zap.String("output", opts.output))
	return render(cmd.OutOrStdout(), opts.output, reports)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
