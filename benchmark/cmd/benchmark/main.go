package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-searchbench/benchmark"
	"github.com/nvr-ai/go-searchbench/logger"
	"github.com/nvr-ai/go-searchbench/profiler"
)

var exit = os.Exit

func main() {
	start := time.Now()

	if err := newRootCmd(start, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

// newRootCmd builds the searchbench command writing results to stdout and diagnostics to stderr.
// The reported running time is measured from start.
func newRootCmd(start time.Time, stdout, stderr io.Writer) *cobra.Command {
	var cfgFile string
	v := benchmark.NewViper()

	cmd := &cobra.Command{
		Use:   "searchbench",
		Short: "Measure linear search time across array sizes and value distributions",
		Long: `searchbench times a linear scan over random integer arrays of growing size for
three value distributions ([-n;n], [-10n;10n] and [0;n/2]) and writes the sizes and
average scan times of each distribution to flat text files for external analysis.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := benchmark.LoadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			if err := logger.Init("searchbench", config.LogLevel, stderr); err != nil {
				return err
			}

			return run(cmd.Context(), start, config, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), stdout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file overriding the built-in sweep parameters")
	cmd.PersistentFlags().String("log-level", "", "diagnostic log level written to stderr (DEBUG, INFO, WARN, ERROR)")
	_ = v.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	return cmd
}

// run executes every sweep, exports the results and reports the time elapsed since start.
func run(ctx context.Context, start time.Time, config benchmark.Config, rng benchmark.Rand, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	prof := profiler.New(log.Logger)
	suite := benchmark.NewSuite(benchmark.NewSuiteArgs{
		Config:   config,
		Rand:     rng,
		Stdout:   stdout,
		Profiler: prof,
	})

	if _, err := suite.Run(ctx); err != nil {
		return err
	}

	prof.Report()
	fmt.Fprintf(stdout, "Program has been running for %d seconds!..\n", int64(time.Since(start)/time.Second))

	return nil
}
