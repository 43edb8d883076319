package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
)

var (
	verbosity int
	// run settings; flags override the config file when set
	configFile string
	method     string
	algorithm  string
	contrast   string
	alpha      float64
	components int
	iterations int
	tolerance  float64
	seed       int64
	workers    int
	// input/output
	noHeader   bool
	delimiter  string
	outPath    string
	mixingPath string
	demixPath  string
	plotASCII  bool
	pngPath    string
	// demo
	samples int
	waves   []string
)

// main executes the root command and exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

// newRootCmd registers the separate, demo and config commands.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fastica",
		Short:         "independent component analysis with FastICA",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (-v summaries, -vv per component)")

	separateCmd := &cobra.Command{
		Use:   "separate [input.csv]",
		Short: "unmix the columns of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSeparate,
	}
	addRunFlags(separateCmd)
	separateCmd.Flags().BoolVar(&noHeader, "no-header", false, "input has no header record")
	separateCmd.Flags().StringVar(&delimiter, "delimiter", ",", "field delimiter")
	separateCmd.Flags().StringVarP(&outPath, "out", "o", "", "write components as CSV to this file (default stdout)")
	separateCmd.Flags().StringVar(&mixingPath, "mixing", "", "write the mixing matrix as CSV")
	separateCmd.Flags().StringVar(&demixPath, "demixing", "", "write the demixing matrix as CSV")
	separateCmd.Flags().BoolVar(&plotASCII, "plot", false, "draw the components in the terminal")
	separateCmd.Flags().StringVar(&pngPath, "png", "", "save a PNG plot of the components")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "separate a synthetic mixture and report how well the sources were recovered",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	addRunFlags(demoCmd)
	demoCmd.Flags().IntVar(&samples, "samples", 2000, "number of observations")
	demoCmd.Flags().StringSliceVar(&waves, "waves", []string{"sine", "square", "sawtooth"}, "source waveforms (sine, square, sawtooth, laplace)")
	demoCmd.Flags().BoolVar(&plotASCII, "plot", false, "draw sources and components in the terminal")
	demoCmd.Flags().StringVar(&pngPath, "png", "", "save a PNG plot of the components")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage run configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigInit,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(separateCmd, demoCmd, configCmd)

	return rootCmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&method, "method", "center", "column adjustment: center or standardize")
	cmd.Flags().StringVar(&algorithm, "algorithm", "parallel", "solver: parallel or deflation")
	cmd.Flags().StringVar(&contrast, "contrast", "logcosh", "contrast function: logcosh, exp or kurtosis")
	cmd.Flags().Float64Var(&alpha, "alpha", 1.0, "contrast alpha")
	cmd.Flags().IntVarP(&components, "components", "k", 0, "number of components (0 = one per column)")
	cmd.Flags().IntVar(&iterations, "iterations", 100, "iteration cap per solve")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 1e-3, "relative convergence tolerance")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed of the initial guess (0 = default)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel row updates (0 = GOMAXPROCS)")
}

// newLogger writes structured log lines to stderr at the requested verbosity.
func newLogger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(os.Stderr, prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: verbosity})
}
