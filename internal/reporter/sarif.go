package reporter

import (
	"io"
	"slices"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/wharflab/julint/internal/rules"
)

// Default SARIF tool information.
const (
	defaultToolName = "julint"
	defaultToolURI  = "https://github.com/wharflab/julint"
)

// SARIFReporter formats findings as SARIF (Static Analysis Results Interchange Format).
// SARIF is a standard format for static analysis tools, widely supported by CI/CD systems
// including GitHub Code Scanning and Azure DevOps.
//
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/
type SARIFReporter struct {
	writer      io.Writer
	toolName    string
	toolVersion string
	toolURI     string
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(w io.Writer, toolName, toolVersion, toolURI string) *SARIFReporter {
	if toolName == "" {
		toolName = defaultToolName
	}
	if toolURI == "" {
		toolURI = defaultToolURI
	}
	return &SARIFReporter{
		writer:      w,
		toolName:    toolName,
		toolVersion: toolVersion,
		toolURI:     toolURI,
	}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(reports []FileReport, _ ReportMetadata) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(r.toolName, r.toolURI)
	if r.toolVersion != "" {
		run.Tool.Driver.WithVersion(r.toolVersion)
	}

	items := flatten(reports)

	// Rule definitions, one per code seen.
	docURLs := make(map[string]string)
	for _, it := range items {
		if _, ok := docURLs[it.finding.RuleCode]; !ok {
			docURLs[it.finding.RuleCode] = it.finding.DocURL
		}
	}
	codes := make([]string, 0, len(docURLs))
	for code := range docURLs {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	for _, code := range codes {
		rule := run.AddRule(code)
		if meta := ruleMetadata(code); meta != nil && meta.Description != "" {
			rule.WithShortDescription(sarif.NewMultiformatMessageString().WithText(meta.Description))
		}
		if docURLs[code] != "" {
			rule.WithHelpURI(docURLs[code])
		}
	}

	for _, rep := range reports {
		run.AddDistinctArtifact(rep.DisplayPath())
	}

	for _, it := range items {
		result := sarif.NewRuleResult(it.finding.RuleCode).
			WithMessage(sarif.NewTextMessage(it.finding.Message)).
			WithLevel(severityToSARIFLevel(it.finding.Severity))

		physicalLocation := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewSimpleArtifactLocation(it.path))
		if !it.finding.Location.IsTextLevel() {
			physicalLocation.WithRegion(sarif.NewRegion().WithStartLine(it.finding.Location.Line))
		}

		result.WithLocations([]*sarif.Location{
			sarif.NewLocationWithPhysicalLocation(physicalLocation),
		})
		run.AddResult(result)
	}

	report.AddRun(run)

	// Write with pretty formatting for readability
	return report.PrettyWrite(r.writer)
}

// ruleMetadata looks up a registered rule's metadata.
func ruleMetadata(code string) *rules.RuleMetadata {
	r := rules.Get(code)
	if r == nil {
		return nil
	}
	meta := r.Metadata()
	return &meta
}

// SARIF severity levels.
const (
	sarifLevelError   = "error"
	sarifLevelWarning = "warning"
	sarifLevelNote    = "note"
)

// severityToSARIFLevel maps our Severity to SARIF levels.
// SARIF uses: "error", "warning", "note", "none"
func severityToSARIFLevel(s rules.Severity) string {
	switch s {
	case rules.SeverityError:
		return sarifLevelError
	case rules.SeverityWarning:
		return sarifLevelWarning
	case rules.SeverityInfo, rules.SeverityStyle:
		return sarifLevelNote
	case rules.SeverityOff:
		// Should never reach here - filtered by the session
		return sarifLevelNote
	default:
		return sarifLevelWarning
	}
}
