// SPDX-License-Identifier: MIT
// Package commands implements the spmat command line interface.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/spmat/codec"
	"github.com/katalvlaran/spmat/internal/build"
	"github.com/katalvlaran/spmat/internal/config"
	"github.com/katalvlaran/spmat/internal/logger"
	"github.com/katalvlaran/spmat/internal/metrics"
	"github.com/katalvlaran/spmat/loader"
	"github.com/katalvlaran/spmat/sparse"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// stdoutPath makes result commands write to standard output.
const stdoutPath = "-"

// CLI represents the spmat command line interface.
type CLI struct {
	rootCmd *cobra.Command

	cfgPath string
	cfg     config.Config
	log     *logger.Logger
	loader  *loader.Loader
	metrics *metrics.Registry

	// persistent flag values; applied over cfg when set
	dir         string
	output      string
	reader      string
	logLevel    string
	growToFit   bool
	revalidate  bool
	dense       bool
	metricsFile string
	maxCells    int64
}

// New creates the CLI with all subcommands registered.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "spmat",
		Short:         "Sparse integer matrix arithmetic over text files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	c := &CLI{rootCmd: rootCmd}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.cfgPath, "config", config.FileName, "Path to the YAML config file")
	pf.StringVarP(&c.dir, "dir", "d", "", "Directory holding matrix files (overrides input_dir)")
	pf.StringVarP(&c.output, "output", "o", "", "Result file, or - for stdout (overrides output_dir/output_file)")
	pf.StringVar(&c.reader, "reader", "", "How to read files: file or mmap")
	pf.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.BoolVar(&c.growToFit, "grow-to-fit", false, "Enlarge declared shapes to fit out-of-range entries")
	pf.BoolVar(&c.revalidate, "revalidate", false, "Reparse cached files whose content changed")
	pf.BoolVar(&c.dense, "dense", false, "Also print results as a dense grid")
	pf.StringVar(&c.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the command")
	pf.Int64Var(&c.maxCells, "max-cells", 0, "Reject matrices with more than this many cells (0: no cap)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return c.setup(cmd)
	}
	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		return c.flushMetrics()
	}

	rootCmd.AddCommand(c.newBinaryCmd(opAdd))
	rootCmd.AddCommand(c.newBinaryCmd(opSub))
	rootCmd.AddCommand(c.newBinaryCmd(opMul))
	rootCmd.AddCommand(c.newTransposeCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newMenuCmd())
	rootCmd.AddCommand(c.newGenCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the stream the interactive menu reads from.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// setup loads the config, applies flag overrides and builds the logger and
// loader shared by every subcommand.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.InputDir = c.dir
	}
	if flags.Changed("reader") {
		cfg.Reader = c.reader
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("grow-to-fit") {
		cfg.GrowToFit = c.growToFit
	}
	if flags.Changed("revalidate") {
		cfg.Revalidate = c.revalidate
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = c.metricsFile
	}
	if flags.Changed("max-cells") {
		cfg.MaxCells = c.maxCells
	}
	if err := cfg.Validate(); err != nil {
		return zerr.Wrap(err, "invalid command line flags")
	}
	c.cfg = cfg

	c.log = logger.New(cmd.ErrOrStderr(), cfg.SlogLevel())

	var src loader.Source = loader.FileSource{}
	if cfg.Reader == config.ReaderMmap {
		src = loader.MmapSource{}
	}
	opts := []loader.Option{
		loader.WithSource(src),
		loader.WithLogger(c.log.Slog()),
		loader.WithRevalidate(cfg.Revalidate),
	}
	var codecOpts []codec.Option
	if cfg.GrowToFit {
		codecOpts = append(codecOpts, codec.WithGrowToFit())
	}
	if cfg.MaxCells > 0 {
		codecOpts = append(codecOpts, codec.WithMaxCells(cfg.MaxCells))
	}
	if len(codecOpts) > 0 {
		opts = append(opts, loader.WithCodecOptions(codecOpts...))
	}
	if c.loader, err = loader.New(opts...); err != nil {
		return err
	}
	c.metrics = metrics.New(c.loader.Cache())

	return nil
}

// observe records the outcome of op and passes err through.
func (c *CLI) observe(op string, err error) error {
	c.metrics.ObserveOperation(op, err)
	return err
}

// flushMetrics writes the metrics file when one is configured.
func (c *CLI) flushMetrics() error {
	if c.metrics == nil || c.cfg.MetricsFile == "" {
		return nil
	}
	if err := c.metrics.WriteFile(c.cfg.MetricsFile); err != nil {
		return err
	}
	c.log.Debug("metrics written", "path", c.cfg.MetricsFile)

	return nil
}

// outputPath resolves where results go: --output, else the configured file.
func (c *CLI) outputPath() string {
	if c.output != "" {
		return c.output
	}
	return c.cfg.OutputPath()
}

// emit writes m to the output path and optionally prints it densely.
func (c *CLI) emit(cmd *cobra.Command, m *sparse.Sparse) error {
	out := cmd.OutOrStdout()
	if c.dense {
		if _, err := fmt.Fprintln(out, m); err != nil {
			return err
		}
	}

	path := c.outputPath()
	if path == stdoutPath {
		return codec.Write(out, m)
	}
	if err := codec.WriteFile(path, m); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write result"), "path", path)
	}
	c.log.Info("result written", "path", path, "shape", m.Shape().String(), "nnz", m.NNZ())
	_, err := fmt.Fprintf(out, "Result written to %s\n", path)

	return err
}
