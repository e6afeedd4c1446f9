// Package reporter provides output formatters for lint results.
//
// The package supports multiple output formats:
//   - text: the "Fixes (N):" report followed by the fixed code, optionally styled
//   - json: Machine-readable JSON output
//   - sarif: Static Analysis Results Interchange Format for CI/CD integration
//   - github-actions: Native GitHub Actions workflow annotations
//   - markdown: Concise markdown tables for AI agents
package reporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/wharflab/julint/internal/rules"
)

// FileReport is the outcome of linting one text.
type FileReport struct {
	// Path names the linted text; "-" for standard input.
	Path string

	// Findings are all findings in emission order, untruncated.
	Findings []rules.Finding

	// Original is the text as read.
	Original string

	// Final is the text after every applied fix.
	Final string

	// Changed reports whether any fix was applied.
	Changed bool
}

// DisplayPath returns the path with forward slashes.
func (r FileReport) DisplayPath() string {
	return filepath.ToSlash(r.Path)
}

// ReportMetadata contains contextual information about the lint run.
type ReportMetadata struct {
	// FilesScanned is the total number of files that were scanned.
	FilesScanned int
	// RulesEnabled is the total number of rules that were active (not "off").
	RulesEnabled int
}

// Reporter formats and outputs lint results.
type Reporter interface {
	// Report writes the per-file reports, in the given order.
	Report(reports []FileReport, metadata ReportMetadata) error
}

// Format represents an output format type.
type Format string

const (
	// FormatText is the human-readable report.
	FormatText Format = "text"
	// FormatJSON is machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatSARIF is Static Analysis Results Interchange Format.
	FormatSARIF Format = "sarif"
	// FormatGitHubActions is GitHub Actions workflow command output.
	FormatGitHubActions Format = "github-actions"
	// FormatMarkdown is concise markdown tables for AI agents.
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a format string into a Format type.
// Returns an error if the format is unknown.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	case "github-actions", "github":
		return FormatGitHubActions, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format: %q (valid: text, json, sarif, github-actions, markdown)", s)
	}
}

// Options configures reporter creation.
type Options struct {
	// Format specifies the output format.
	Format Format

	// Writer is the output destination.
	Writer io.Writer

	// Color selects styled text output: "auto", "always" or "never".
	Color string

	// Diff replaces the fixed code in text output with a line diff.
	Diff bool

	// ToolVersion is included in SARIF output.
	ToolVersion string

	// ToolName is the tool name for SARIF output.
	ToolName string

	// ToolURI is the tool information URI for SARIF output.
	ToolURI string
}

// DefaultOptions returns sensible defaults for reporter options.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		Writer:      os.Stdout,
		Color:       "auto",
		ToolName:    defaultToolName,
		ToolURI:     defaultToolURI,
		ToolVersion: "dev",
	}
}

// New creates a reporter based on the format specified in options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts.Writer, TextOptions{
			Color: ResolveColor(opts.Color, opts.Writer),
			Diff:  opts.Diff,
		}), nil

	case FormatJSON:
		return NewJSONReporter(opts.Writer), nil

	case FormatSARIF:
		return NewSARIFReporter(opts.Writer, opts.ToolName, opts.ToolVersion, opts.ToolURI), nil

	case FormatGitHubActions:
		return NewGitHubActionsReporter(opts.Writer), nil

	case FormatMarkdown:
		return NewMarkdownReporter(opts.Writer), nil

	default:
		return nil, fmt.Errorf("unknown format: %q", opts.Format)
	}
}

// located is a finding together with the file it belongs to.
type located struct {
	path    string
	finding rules.Finding
}

// flatten lists every finding of every report, in report order.
func flatten(reports []FileReport) []located {
	var out []located
	for _, r := range reports {
		for _, f := range r.Findings {
			out = append(out, located{path: r.DisplayPath(), finding: f})
		}
	}
	return out
}

// sortBySeverity sorts findings by severity (errors first), then by file
// and line. Stable, so emission order breaks remaining ties.
func sortBySeverity(items []located) []located {
	sorted := make([]located, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.finding.Severity != b.finding.Severity {
			return a.finding.Severity.IsMoreSevereThan(b.finding.Severity)
		}
		if a.path != b.path {
			return a.path < b.path
		}
		return a.finding.Location.Line < b.finding.Location.Line
	})
	return sorted
}

// GetWriter returns an io.Writer for the given output path.
// Supports "stdout", "stderr", or file paths.
func GetWriter(path string) (io.Writer, func() error, error) {
	switch path {
	case "stdout", "":
		return os.Stdout, func() error { return nil }, nil
	case "stderr":
		return os.Stderr, func() error { return nil }, nil
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create output file: %w", err)
		}
		return f, f.Close, nil
	}
}
