package directive

import (
	"strings"

	"github.com/wharflab/julint/internal/pattern"
)

// # julint [global] ignore=RULE1,RULE2
var julintPattern = pattern.MustCompile(`(?i)#\s*julint\s+(global\s+)?ignore\s*=\s*([A-Za-z0-9_,/-]*)`)

// RuleValidator is a function that checks if a rule code is known.
type RuleValidator func(string) bool

// Parse extracts all inline directives from text.
// If validator is non-nil, unknown rule codes generate parse errors; the
// directive is still kept.
func Parse(text string, validator RuleValidator) *ParseResult {
	result := &ParseResult{}
	if !strings.Contains(text, "julint") {
		return result
	}

	lines := pattern.Lines(text)
	for i, line := range lines {
		if !julintPattern.Matches(line) {
			continue
		}
		lineNo := i + 1
		raw := strings.TrimSpace(line)
		isGlobal := strings.TrimSpace(julintPattern.FindAllGroup(line, 1)[0]) != ""

		ruleList, err := parseRuleList(julintPattern.FindAllGroup(line, 2)[0])
		if err != nil {
			result.Errors = append(result.Errors, ParseError{Line: lineNo, Message: err.Error(), RawText: raw})
			continue
		}

		d := Directive{Rules: ruleList, Line: lineNo, RawText: raw}
		if isGlobal {
			d.Type = TypeGlobal
			d.AppliesTo = GlobalRange()
		} else {
			d.Type = TypeNextLine
			d.AppliesTo = nextCodeLineRange(lines, i)
		}
		validateDirective(&d, validator, result)
	}
	return result
}

// validateDirective validates rule codes and adds the directive or errors.
func validateDirective(d *Directive, validator RuleValidator, result *ParseResult) {
	if validator != nil {
		var unknown []string
		for _, rule := range d.Rules {
			if rule != "all" && !validator(rule) {
				unknown = append(unknown, rule)
			}
		}
		if len(unknown) > 0 {
			result.Errors = append(result.Errors, ParseError{
				Line:    d.Line,
				Message: "unknown rule code(s): " + strings.Join(unknown, ", "),
				RawText: d.RawText,
			})
		}
	}
	result.Directives = append(result.Directives, *d)
}

// parseRuleList parses a comma-separated list of rule codes.
func parseRuleList(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if rule := strings.TrimSpace(part); rule != "" {
			out = append(out, rule)
		}
	}
	if len(out) == 0 {
		return nil, &parseRuleError{msg: "empty rule list"}
	}
	return out, nil
}

type parseRuleError struct {
	msg string
}

func (e *parseRuleError) Error() string {
	return e.msg
}

// nextCodeLineRange finds the next line after idx that is neither blank nor
// a line comment. A directive with nothing after it gets a range that
// matches no line.
func nextCodeLineRange(lines []string, idx int) LineRange {
	for i := idx + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || (strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "#=")) {
			continue
		}
		return LineRange{Start: i + 1, End: i + 1}
	}
	return LineRange{Start: -1, End: -1}
}
