// Package directive provides inline suppression directives for Julia source.
//
// Directives are ordinary Julia line comments:
//
//	# julint ignore=not-in,julia/python-operators
//	# julint global ignore=indentation
//
// A next-line directive hides findings located on the next line that is
// neither blank nor a comment. A global directive disables the rule for the
// whole file, including its fix.
package directive

import (
	"math"
	"strconv"
	"strings"
)

// DirectiveType indicates the scope of a directive.
type DirectiveType int

const (
	// TypeNextLine affects only the next non-comment line.
	TypeNextLine DirectiveType = iota
	// TypeGlobal affects the entire file.
	TypeGlobal
)

// String returns a human-readable name for the directive type.
func (t DirectiveType) String() string {
	switch t {
	case TypeNextLine:
		return "next-line"
	case TypeGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// LineRange represents a range of lines affected by a directive.
// Line numbers are 1-based to match rules.Location.
type LineRange struct {
	// Start is the first line (inclusive).
	Start int
	// End is the last line (inclusive). For global directives this is math.MaxInt.
	End int
}

// Contains returns true if the given 1-based line is within the range.
func (r LineRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// GlobalRange returns a LineRange that covers the entire file.
func GlobalRange() LineRange {
	return LineRange{Start: 1, End: math.MaxInt}
}

// Directive represents a parsed inline suppression directive.
type Directive struct {
	Type DirectiveType

	// Rules contains the rule codes to suppress, namespaced or bare.
	// "all" suppresses every rule.
	Rules []string

	// Line is the 1-based line the directive appears on.
	Line int

	// AppliesTo is the range of lines affected by this directive.
	AppliesTo LineRange

	// RawText is the original comment text (for error messages).
	RawText string
}

// SuppressesRule returns true if this directive suppresses the given rule code.
func (d *Directive) SuppressesRule(ruleCode string) bool {
	for _, r := range d.Rules {
		if r == "all" || matchesRule(r, ruleCode) {
			return true
		}
	}
	return false
}

// matchesRule compares a directive entry with a rule code.
//   - Exact match: "julia/not-in" matches "julia/not-in"
//   - Bare name: "not-in" matches "julia/not-in"
func matchesRule(pattern, ruleCode string) bool {
	if pattern == ruleCode {
		return true
	}
	if idx := strings.LastIndexByte(ruleCode, '/'); idx != -1 {
		return pattern == ruleCode[idx+1:]
	}
	return false
}

// SuppressesLine returns true if this directive suppresses findings on the
// given 1-based line.
func (d *Directive) SuppressesLine(line int) bool {
	return d.AppliesTo.Contains(line)
}

// ParseResult contains all directives parsed from a text plus any errors.
type ParseResult struct {
	Directives []Directive
	Errors     []ParseError
}

// SuppressesGlobally returns true if a global directive disables ruleCode.
func (r *ParseResult) SuppressesGlobally(ruleCode string) bool {
	if r == nil {
		return false
	}
	for i := range r.Directives {
		d := &r.Directives[i]
		if d.Type == TypeGlobal && d.SuppressesRule(ruleCode) {
			return true
		}
	}
	return false
}

// ParseError represents an error parsing a directive.
type ParseError struct {
	// Line is the 1-based line number where the error occurred.
	Line int

	// Message describes what went wrong.
	Message string

	// RawText is the original comment text.
	RawText string
}

func (e ParseError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Message
}
