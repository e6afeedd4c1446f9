package directive

import "github.com/wharflab/julint/internal/rules"

// FilterResult contains the results of filtering findings through directives.
type FilterResult struct {
	// Findings that were not suppressed, in input order.
	Findings []rules.Finding

	// Suppressed findings that were filtered out.
	Suppressed []rules.Finding
}

// Filter applies directives to findings. A finding is suppressed when a
// directive matches both its rule code and its line. Text-level findings
// (line 0) are only suppressed by global directives.
func Filter(findings []rules.Finding, directives []Directive) *FilterResult {
	result := &FilterResult{
		Findings: make([]rules.Finding, 0, len(findings)),
	}

	for _, f := range findings {
		if suppressed(f, directives) {
			result.Suppressed = append(result.Suppressed, f)
		} else {
			result.Findings = append(result.Findings, f)
		}
	}
	return result
}

func suppressed(f rules.Finding, directives []Directive) bool {
	for i := range directives {
		d := &directives[i]
		if !d.SuppressesRule(f.RuleCode) {
			continue
		}
		if d.Type == TypeGlobal || d.SuppressesLine(f.Location.Line) {
			return true
		}
	}
	return false
}
