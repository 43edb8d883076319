package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/fastica/internal/config"
	"github.com/katalvlaran/fastica/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastica.yaml")
	out, _, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "demo", "--samples", "1500", "--waves", "sine,square", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "parallel solver, 2 components")
	assert.Contains(t, out, "sine")
	assert.Contains(t, out, "square")
}

func TestSeparate(t *testing.T) {
	dir := t.TempDir()
	mix, err := dataset.Synthetic(800, 2, []dataset.Waveform{dataset.Sine, dataset.Sawtooth}, 5)
	require.NoError(t, err)
	in := filepath.Join(dir, "mixed.csv")
	opts := dataset.CSVOptions{Header: true}
	require.NoError(t, dataset.WriteCSVFile(in, mix.Observed, dataset.ColumnNames("x", 2), opts))

	cfgPath := filepath.Join(dir, "run.yaml")
	cfg := config.DefaultConfig()
	cfg.Algorithm = "deflation"
	require.NoError(t, config.Save(cfgPath, cfg))

	outPath := filepath.Join(dir, "ic.csv")
	mixingPath := filepath.Join(dir, "mixing.csv")
	_, stderr, err := execute(t, "separate", in, "--config", cfgPath, "-o", outPath, "--mixing", mixingPath, "-k", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "deflation solver")

	result, header, err := dataset.ReadCSVFile(outPath, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"ic0", "ic1"}, header)
	assert.Equal(t, 800, result.Rows())

	raw, err := os.ReadFile(mixingPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(raw), "\n"))
}

func TestSeparate_BadInput(t *testing.T) {
	_, _, err := execute(t, "separate", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
