package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/fastica/ica"
	"github.com/katalvlaran/fastica/internal/config"
	"github.com/katalvlaran/fastica/internal/dataset"
	"github.com/katalvlaran/fastica/internal/render"
	"github.com/katalvlaran/fastica/matrix"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

// loadConfig starts from the config file (or defaults) and applies every flag
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Method = method
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("contrast") {
		cfg.Contrast.Name = contrast
	}
	if flags.Changed("alpha") {
		cfg.Contrast.Alpha = alpha
	}
	if flags.Changed("components") {
		cfg.Components = components
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = tolerance
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("no-header") {
		cfg.Input.Header = !noHeader
	}
	if flags.Changed("delimiter") {
		cfg.Input.Delimiter = delimiter
	}

	return cfg, cfg.Validate()
}

// analyze builds and computes an Analysis over data.
func analyze(cfg *config.Config, data *matrix.Dense) (*ica.Analysis, error) {
	opts, err := cfg.Options(newLogger())
	if err != nil {
		return nil, err
	}
	a, err := ica.New(data, opts...)
	if err != nil {
		return nil, err
	}
	k := cfg.Components
	if k == 0 {
		k = data.Cols()
	}
	if err = a.ComputeN(k); err != nil {
		return nil, err
	}
	return a, nil
}

func runSeparate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	csvOpts := dataset.CSVOptions{Header: cfg.Input.Header, Delimiter: cfg.Delimiter()}
	data, _, err := dataset.ReadCSVFile(args[0], csvOpts)
	if err != nil {
		return err
	}

	a, err := analyze(cfg, data)
	if err != nil {
		return err
	}
	result, err := a.Result()
	if err != nil {
		return err
	}
	names := dataset.ColumnNames("ic", result.Cols())

	var out io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err = dataset.WriteCSV(out, result, names, csvOpts); err != nil {
		return err
	}

	if mixingPath != "" {
		m, err := a.MixingMatrix()
		if err != nil {
			return err
		}
		if err = dataset.WriteCSVFile(mixingPath, m, nil, csvOpts); err != nil {
			return err
		}
	}
	if demixPath != "" {
		m, err := a.DemixingMatrix()
		if err != nil {
			return err
		}
		if err = dataset.WriteCSVFile(demixPath, m, nil, csvOpts); err != nil {
			return err
		}
	}

	report, err := a.Report()
	if err != nil {
		return err
	}
	printReport(cmd.ErrOrStderr(), report)

	return drawSignals(cmd.ErrOrStderr(), "components", result, names)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ws, err := dataset.ParseWaveforms(waves)
	if err != nil {
		return err
	}
	mix, err := dataset.Synthetic(samples, len(ws), ws, cfg.Seed)
	if err != nil {
		return err
	}

	a, err := analyze(cfg, mix.Observed)
	if err != nil {
		return err
	}
	result, err := a.Result()
	if err != nil {
		return err
	}
	report, err := a.Report()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printReport(out, report)
	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("SOURCE      BEST |CORR|  COMPONENT"))
	for j, w := range ws {
		src, err := mix.Sources.Col(j)
		if err != nil {
			return err
		}
		best, bestIdx := 0.0, -1
		for c := 0; c < result.Cols(); c++ {
			sig, err := result.Col(c)
			if err != nil {
				return err
			}
			if r := math.Abs(stat.Correlation(src, sig, nil)); r > best {
				best, bestIdx = r, c
			}
		}
		style := okStyle
		if best < 0.95 {
			style = warnStyle
		}
		fmt.Fprintf(out, "%-10s  %s  ic%d\n", w, style.Render(fmt.Sprintf("%11.4f", best)), bestIdx)
	}

	if plotASCII {
		chart, err := render.ASCII(mix.Sources, waveNames(ws), 80, 8)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, headerStyle.Render("sources"))
		fmt.Fprint(out, chart)
	}
	return drawSignals(out, "components", result, dataset.ColumnNames("ic", result.Cols()))
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.Save(args[0], config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "wrote", args[0])
	return nil
}

// drawSignals honours --plot and --png.
func drawSignals(w io.Writer, title string, m *matrix.Dense, names []string) error {
	if plotASCII {
		chart, err := render.ASCII(m, names, 80, 8)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, headerStyle.Render(title))
		fmt.Fprint(w, chart)
	}
	if pngPath != "" {
		if err := render.PNG(pngPath, title, m, names, 10, 6); err != nil {
			return err
		}
		fmt.Fprintln(w, "saved", pngPath)
	}
	return nil
}

func waveNames(ws []dataset.Waveform) []string {
	names := make([]string, len(ws))
	for i, w := range ws {
		names[i] = string(w)
	}
	return names
}
