package reporter

import (
	"encoding/json"
	"io"

	"github.com/wharflab/julint/internal/rules"
)

// JSONOutput is the top-level structure for JSON output.
type JSONOutput struct {
	// Files contains results in the order the files were linted.
	Files []FileResult `json:"files"`
	// Summary contains aggregate statistics.
	Summary Summary `json:"summary"`
	// FilesScanned is the total number of files scanned.
	FilesScanned int `json:"files_scanned"`
	// RulesEnabled is the total number of rules that were active.
	RulesEnabled int `json:"rules_enabled"`
}

// FileResult contains the linting results for a single file.
type FileResult struct {
	File     string          `json:"file"`
	Findings []rules.Finding `json:"findings"`
	Changed  bool            `json:"changed"`
	// FixedCode is the text after fixes; omitted when nothing changed.
	FixedCode string `json:"fixed_code,omitempty"`
}

// Summary contains aggregate statistics about findings.
type Summary struct {
	Total    int `json:"total"`
	Fixed    int `json:"fixed"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
	Style    int `json:"style"`
	Files    int `json:"files"`
}

// JSONReporter formats reports as JSON output.
type JSONReporter struct {
	writer io.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

// Report implements Reporter.
func (r *JSONReporter) Report(reports []FileReport, metadata ReportMetadata) error {
	output := JSONOutput{
		Files:        make([]FileResult, 0, len(reports)),
		Summary:      calculateSummary(reports),
		FilesScanned: metadata.FilesScanned,
		RulesEnabled: metadata.RulesEnabled,
	}

	for _, rep := range reports {
		res := FileResult{
			File:     rep.DisplayPath(),
			Findings: rep.Findings,
			Changed:  rep.Changed,
		}
		if res.Findings == nil {
			res.Findings = []rules.Finding{}
		}
		if rep.Changed {
			res.FixedCode = rep.Final
		}
		output.Files = append(output.Files, res)
	}

	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// calculateSummary computes aggregate statistics from reports.
func calculateSummary(reports []FileReport) Summary {
	summary := Summary{}

	for _, rep := range reports {
		if len(rep.Findings) > 0 {
			summary.Files++
		}
		for _, f := range rep.Findings {
			summary.Total++
			if f.Fixed {
				summary.Fixed++
			}
			switch f.Severity {
			case rules.SeverityError:
				summary.Errors++
			case rules.SeverityWarning:
				summary.Warnings++
			case rules.SeverityInfo:
				summary.Info++
			case rules.SeverityStyle:
				summary.Style++
			case rules.SeverityOff:
				// Should never reach here - filtered by the session
			}
		}
	}

	return summary
}
