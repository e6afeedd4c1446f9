package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/wharflab/julint/internal/config"
	"github.com/wharflab/julint/internal/discovery"
	"github.com/wharflab/julint/internal/fileval"
	"github.com/wharflab/julint/internal/linter"
	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/reporter"
	"github.com/wharflab/julint/internal/rules"
	"github.com/wharflab/julint/internal/version"
)

// Exit codes
const (
	ExitSuccess     = 0 // No findings (or below fail-level threshold)
	ExitViolations  = 1 // Findings at or above fail-level
	ExitConfigError = 2 // Config, input or output error
	ExitNoFiles     = 3 // No Julia files found (missing file, empty glob, empty directory)
)

func lintCommand() *cli.Command {
	return &cli.Command{
		Name:      "lint",
		Usage:     "Lint Julia source and print the fixed code",
		ArgsUsage: "[FILE|GLOB|DIR|-...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: auto-discover)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, sarif, markdown, github-actions",
				Sources: cli.EnvVars("JULINT_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path: stdout, stderr, or file path",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "Disable colored output",
				Sources: cli.EnvVars("NO_COLOR"),
			},
			&cli.StringFlag{
				Name:  "fail-level",
				Usage: "Minimum severity to cause non-zero exit: error, warning, info, style, none",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Glob pattern to exclude files (can be repeated)",
			},
			&cli.StringSliceFlag{
				Name:  "select",
				Usage: "Enable specific rules (pattern: rule-code, namespace/*, *)",
			},
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "Disable specific rules (pattern: rule-code, namespace/*, *)",
			},
			&cli.BoolFlag{
				Name:    "no-fix",
				Usage:   "Report available fixes without applying them",
				Sources: cli.EnvVars("JULINT_NO_FIX"),
			},
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "Print a line diff of the fixes instead of the fixed code",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "Number of files linted concurrently (default: number of CPUs)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log per-rule evaluation to stderr",
			},
		},
		Action: runLint,
	}
}

// fileResult is the outcome of linting one discovered file.
type fileResult struct {
	path    string
	cfg     *config.Config
	outcome *linter.Outcome
}

// runLint is the action handler for the lint command.
func runLint(ctx context.Context, cmd *cli.Command) error {
	errOut := stderr(cmd)
	logger := newLogger(errOut, cmd.Bool("verbose"))
	pattern.SetLogger(logger)

	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		inputs = []string{discovery.StdinPath}
	}

	discovered, err := discovery.Discover(inputs, discovery.Options{
		ExcludePatterns: cmd.StringSlice("exclude"),
	})
	if err != nil {
		var notFound *discovery.FileNotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(errOut, "Error: %v\n", notFound)
			return cli.Exit("", ExitNoFiles)
		}
		fmt.Fprintf(errOut, "Error: failed to discover files: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}
	if len(discovered) == 0 {
		reportNoFilesFound(errOut, inputs)
		return cli.Exit("", ExitNoFiles)
	}

	results, err := lintFiles(ctx, cmd, discovered, logger)
	if err != nil {
		if errors.Is(err, fileval.ErrNoInput) {
			fmt.Fprintf(errOut, "%s\n\n%s\n", cmd.Root().Usage, appDescription)
			return cli.Exit("", ExitNoFiles)
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}

	logFixSummary(logger, results)
	return writeReport(cmd, results)
}

// lintFiles lints every discovered file, bounded by --jobs, and returns the
// results in discovery order.
func lintFiles(
	ctx context.Context, cmd *cli.Command, discovered []discovery.DiscoveredFile, logger logrus.FieldLogger,
) ([]fileResult, error) {
	jobs := cmd.Int("jobs")
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]fileResult, len(discovered))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, df := range discovered {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := lintFile(cmd, df, logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// lintFile loads the config for df, reads it and runs one session.
func lintFile(cmd *cli.Command, df discovery.DiscoveredFile, logger logrus.FieldLogger) (fileResult, error) {
	target := df.Path
	if df.IsStdin() {
		target = filepath.Join(df.ConfigRoot, discovery.StdinPath)
	}

	cfg, err := loadConfigForFile(cmd, target)
	if err != nil {
		return fileResult{}, fmt.Errorf("failed to load config for %s: %w", df.Path, err)
	}

	text, err := readInput(cmd, df, cfg.FileValidation.MaxFileSize)
	if err != nil {
		return fileResult{}, err
	}

	session := linter.NewSession(
		linter.WithConfig(cfg),
		linter.WithLogger(logger.WithField("file", df.Path)),
		linter.WithFix(!cmd.Bool("no-fix")),
	)
	return fileResult{path: df.Path, cfg: cfg, outcome: session.Run(text)}, nil
}

func readInput(cmd *cli.Command, df discovery.DiscoveredFile, maxSize int64) (string, error) {
	if df.IsStdin() {
		return fileval.ReadStdin(stdin(cmd), "<stdin>", maxSize)
	}
	text, err := fileval.ReadFile(df.Path, maxSize)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", df.Path, err)
	}
	return text, nil
}

// loadConfigForFile loads configuration for a target file, applying CLI overrides.
func loadConfigForFile(cmd *cli.Command, targetPath string) (*config.Config, error) {
	configPath := cmd.String("config")
	if configPath == "" {
		configPath = config.Discover(targetPath)
	}

	cfg, err := config.LoadWithOverrides(configPath, buildOverrides(cmd))
	if err != nil {
		return nil, err
	}

	// Rule selection appends to the config file's lists.
	if cmd.IsSet("select") {
		cfg.Rules.Include = append(cfg.Rules.Include, cmd.StringSlice("select")...)
	}
	if cmd.IsSet("ignore") {
		cfg.Rules.Exclude = append(cfg.Rules.Exclude, cmd.StringSlice("ignore")...)
	}
	return cfg, nil
}

// buildOverrides maps explicitly set output flags onto config keys.
func buildOverrides(cmd *cli.Command) map[string]any {
	output := make(map[string]any)
	if cmd.IsSet("format") {
		format := cmd.String("format")
		if f, err := reporter.ParseFormat(format); err == nil {
			format = string(f)
		}
		output["format"] = format
	}
	if cmd.IsSet("output") {
		output["path"] = cmd.String("output")
	}
	if cmd.IsSet("no-color") && cmd.Bool("no-color") {
		output["color"] = "never"
	}
	if cmd.IsSet("fail-level") {
		output["fail-level"] = cmd.String("fail-level")
	}

	if len(output) == 0 {
		return nil
	}
	return map[string]any{"output": output}
}

// writeReport formats and writes all file reports using the first file's
// output configuration, and returns the exit status.
func writeReport(cmd *cli.Command, results []fileResult) error {
	errOut := stderr(cmd)
	outCfg := results[0].cfg.Output

	format, err := reporter.ParseFormat(outCfg.Format)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}

	writer, closeWriter, err := openOutput(cmd, outCfg.Path)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}
	defer func() {
		if err := closeWriter(); err != nil {
			fmt.Fprintf(errOut, "Warning: failed to close output: %v\n", err)
		}
	}()

	rep, err := reporter.New(reporter.Options{
		Format:      format,
		Writer:      writer,
		Color:       outCfg.Color,
		Diff:        cmd.Bool("diff"),
		ToolName:    "julint",
		ToolVersion: version.RawVersion(),
		ToolURI:     "https://github.com/wharflab/julint",
	})
	if err != nil {
		fmt.Fprintf(errOut, "Error: failed to create reporter: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}

	reports := make([]reporter.FileReport, len(results))
	for i, r := range results {
		reports[i] = r.outcome.FileReport(r.path)
	}
	metadata := reporter.ReportMetadata{
		FilesScanned: len(results),
		RulesEnabled: results[0].outcome.RulesEnabled,
	}
	if err := rep.Report(reports, metadata); err != nil {
		fmt.Fprintf(errOut, "Error: failed to write output: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}

	if code := determineExitCode(results, outCfg.FailLevel); code != ExitSuccess {
		return cli.Exit("", code)
	}
	return nil
}

// openOutput resolves "stdout" to the command's writer so tests and
// embedding callers can capture it.
func openOutput(cmd *cli.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "stdout" {
		return stdout(cmd), func() error { return nil }, nil
	}
	return reporter.GetWriter(path)
}

// determineExitCode returns the exit code for the findings and fail-level.
func determineExitCode(results []fileResult, failLevel string) int {
	// "none" means never fail due to findings
	if failLevel == "" || failLevel == config.FailLevelNone {
		return ExitSuccess
	}

	threshold, err := rules.ParseSeverity(failLevel)
	if err != nil {
		return ExitConfigError
	}

	for _, r := range results {
		if r.outcome.FailsAt(threshold) {
			return ExitViolations
		}
	}
	return ExitSuccess
}

func logFixSummary(logger logrus.FieldLogger, results []fileResult) {
	var applied, skipped, files int
	for _, r := range results {
		applied += len(r.outcome.Applied)
		skipped += len(r.outcome.Skipped)
		if r.outcome.Changed() {
			files++
		}
		for _, s := range r.outcome.Skipped {
			logger.WithFields(logrus.Fields{
				"file":   r.path,
				"rule":   s.RuleCode,
				"reason": s.Reason.String(),
			}).Debug("fix skipped")
		}
	}
	logger.WithFields(logrus.Fields{
		"applied": applied,
		"skipped": skipped,
		"files":   files,
	}).Info("lint complete")
}

// reportNoFilesFound prints a context-aware message when no Julia files are found.
func reportNoFilesFound(w io.Writer, inputs []string) {
	for _, input := range inputs {
		if discovery.ContainsGlobChars(input) {
			fmt.Fprintf(w, "Error: no Julia files matched pattern: %s\n", input)
			return
		}
	}

	// For directory inputs, resolve to absolute path so the user knows exactly
	// which directory was scanned.
	for _, input := range inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err == nil && info.IsDir() {
			fmt.Fprintf(w, "Error: no .jl files found in %s\n", abs)
			return
		}
	}

	fmt.Fprintf(w, "Error: no Julia files found\n")
}
