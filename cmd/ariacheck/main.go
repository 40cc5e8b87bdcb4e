package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacoelho/ariacheck"
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/config"
	"github.com/jacoelho/ariacheck/internal/logging"
	"github.com/jacoelho/ariacheck/internal/scenario"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// usageError marks failures that exit with status 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

var errChecksFailed = errors.New("checks failed")

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}
	if errors.Is(err, errChecksFailed) {
		return 1
	}
	p := &printer{w: stderr}
	p.printf("error: %v\n", err)
	var usage usageError
	// Unknown subcommands fail on the root command itself.
	if !errors.As(err, &usage) && cmd != root {
		return 1
	}
	p.printf("\n%s", cmd.UsageString())
	if p.err != nil {
		return 1
	}
	return 2
}

// usageArgs reports positional argument errors as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}

type runFlags struct {
	scenario   string
	logLevel   string
	config     string
	cpuProfile string
	memProfile string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "ariacheck",
		Short:         "Verify headless UI widgets against their ARIA contract",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})
	root.AddCommand(newRunCmd(stdout, stderr), newChecksCmd(stdout))
	return root
}

func newRunCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run --scenario <checks.yaml> <page.html>",
		Short: "Run a scenario file against an HTML document",
		Long: `Run every check of a scenario file against an HTML document.

Examples:
  # Check an open menu
  ariacheck run --scenario menu.yaml menu-open.html

  # Log every check
  ARIACHECK_LOG_LEVEL=debug ariacheck run --scenario menu.yaml menu-open.html`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, flags, args[0], stdout, stderr)
		},
	}
	cmd.Flags().StringVar(&flags.scenario, "scenario", "", "path to the scenario YAML file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.config, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&flags.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	cmd.Flags().StringVar(&flags.memProfile, "memprofile", "", "write memory profile to file")
	return cmd
}

func newChecksCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List the check names a scenario may use",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(*cobra.Command, []string) error {
			p := &printer{w: stdout}
			for _, name := range scenario.Names() {
				p.printf("%s\n", name)
			}
			return p.err
		},
	}
}

func runScenario(cmd *cobra.Command, flags runFlags, htmlPath string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if flags.scenario != "" {
		cfg.Scenario = flags.scenario
	}
	if cfg.Scenario == "" {
		return usageError{err: errors.New("--scenario is required")}
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return usageError{err: err}
	}
	defer func() { _ = logger.Sync() }()

	prof, err := startProfiles(flags.cpuProfile, flags.memProfile, logger)
	if err != nil {
		return err
	}
	defer prof.stop()

	sc, err := scenario.Load(cfg.Scenario)
	if err != nil {
		return err
	}
	doc, err := loadDocument(htmlPath)
	if err != nil {
		return err
	}

	logger.Info("running scenario",
		zap.String("scenario", cfg.Scenario),
		zap.String("document", htmlPath),
		zap.Int("checks", len(sc.Checks)),
	)
	checker := ariacheck.NewWithOptions(doc, ariacheck.NewCheckerOptions().WithLogger(logger))
	report := scenario.Run(checker, sc)
	if err := writeReport(stdout, report); err != nil {
		return err
	}
	if report.Failed() > 0 {
		return errChecksFailed
	}
	return nil
}

func loadDocument(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	return doc, nil
}

func writeReport(w io.Writer, report scenario.Report) error {
	p := &printer{w: w}
	for _, res := range report.Results {
		if res.Passed() {
			p.printf("ok   %s\n", res.Name)
		} else {
			p.printf("FAIL %s: %v\n", res.Name, res.Err)
		}
	}
	p.printf("%d checks, %d failed\n", len(report.Results), report.Failed())
	return p.err
}

// printer keeps the first write error; later writes are dropped.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
