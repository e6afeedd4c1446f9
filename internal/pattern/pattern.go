// Package pattern wraps regular-expression search over raw source text.
//
// Rules in julint never parse; they describe what they look for as a
// pattern and ask this package for matches, captures, counts and
// substitutions. Absence of a match is always an empty result, never an
// error: engine failures (for example a match timeout on pathological
// input) end the scan and are logged at debug level.
//
// The engine is github.com/dlclark/regexp2 rather than the standard
// library's RE2 implementation because several rules rely on lookahead.
package pattern

import (
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single match attempt.
const DefaultTimeout = 2 * time.Second

type loggerBox struct{ l logrus.FieldLogger }

var logger atomic.Pointer[loggerBox]

// SetLogger sets the logger that receives engine failures. A nil logger
// restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	logger.Store(&loggerBox{l: l})
}

func log() logrus.FieldLogger {
	if b := logger.Load(); b != nil {
		return b.l
	}
	return logrus.StandardLogger()
}

// Option configures compilation.
type Option func(*options)

type options struct {
	flags   regexp2.RegexOptions
	timeout time.Duration
}

// Multiline makes ^ and $ match at line boundaries.
func Multiline() Option {
	return func(o *options) { o.flags |= regexp2.Multiline }
}

// DotAll makes . match newlines, so a match may span lines.
func DotAll() Option {
	return func(o *options) { o.flags |= regexp2.Singleline }
}

// WithTimeout overrides DefaultTimeout. Zero or negative disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// Pattern is a compiled, immutable search pattern. It is safe for
// concurrent use.
type Pattern struct {
	re   *regexp2.Regexp
	expr string
}

// Compile compiles expr with the given options.
func Compile(expr string, opts ...Option) (*Pattern, error) {
	o := options{flags: regexp2.None, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	re, err := regexp2.Compile(expr, o.flags)
	if err != nil {
		return nil, err
	}
	if o.timeout > 0 {
		re.MatchTimeout = o.timeout
	}
	return &Pattern{re: re, expr: expr}, nil
}

// MustCompile is like Compile but panics on an invalid expression.
// Intended for package-level pattern variables.
func MustCompile(expr string, opts ...Option) *Pattern {
	p, err := Compile(expr, opts...)
	if err != nil {
		panic("pattern: Compile(" + expr + "): " + err.Error())
	}
	return p
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.expr
}

// each calls fn for every non-overlapping match, left to right, until fn
// returns false or the input is exhausted.
func (p *Pattern) each(text string, fn func(m *regexp2.Match) bool) {
	m, err := p.re.FindStringMatch(text)
	for m != nil && err == nil {
		if !fn(m) {
			return
		}
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		log().WithError(err).WithField("pattern", p.expr).Debug("pattern scan aborted")
	}
}

// FindAll returns every whole match in order of appearance.
func (p *Pattern) FindAll(text string) []string {
	var out []string
	p.each(text, func(m *regexp2.Match) bool {
		out = append(out, m.String())
		return true
	})
	return out
}

// FindAllGroup returns capture group n of every match in order of
// appearance. A group that did not participate in a match yields "".
func (p *Pattern) FindAllGroup(text string, n int) []string {
	var out []string
	p.each(text, func(m *regexp2.Match) bool {
		g := m.GroupByNumber(n)
		if g == nil {
			out = append(out, "")
			return true
		}
		out = append(out, g.String())
		return true
	})
	return out
}

// Match is one match of a pattern together with where it starts.
type Match struct {
	// Offset is the byte offset of the match in the searched text.
	Offset int
	// Text is the whole match.
	Text string

	groups []string
}

// Group returns capture group n, or "" when the group does not exist or
// did not participate in the match. Group 0 is the whole match.
func (m Match) Group(n int) string {
	if n < 0 || n >= len(m.groups) {
		return ""
	}
	return m.groups[n]
}

// FindAllMatches returns every match with its byte offset, in order of
// appearance.
func (p *Pattern) FindAllMatches(text string) []Match {
	var (
		out     []Match
		runeIdx int
		byteIdx int
	)
	p.each(text, func(m *regexp2.Match) bool {
		// regexp2 reports rune indexes; matches arrive in ascending
		// order so the byte offset is advanced incrementally.
		for runeIdx < m.Index && byteIdx < len(text) {
			_, size := utf8.DecodeRuneInString(text[byteIdx:])
			byteIdx += size
			runeIdx++
		}
		groups := m.Groups()
		match := Match{Offset: byteIdx, Text: m.String(), groups: make([]string, len(groups))}
		for i := range groups {
			if len(groups[i].Captures) > 0 {
				match.groups[i] = groups[i].String()
			}
		}
		out = append(out, match)
		return true
	})
	return out
}

// First returns the leftmost match.
func (p *Pattern) First(text string) (string, bool) {
	var (
		first string
		found bool
	)
	p.each(text, func(m *regexp2.Match) bool {
		first, found = m.String(), true
		return false
	})
	return first, found
}

// Matches reports whether text contains at least one match.
func (p *Pattern) Matches(text string) bool {
	_, ok := p.First(text)
	return ok
}

// Count returns the number of non-overlapping matches.
func (p *Pattern) Count(text string) int {
	n := 0
	p.each(text, func(*regexp2.Match) bool {
		n++
		return true
	})
	return n
}

// ReplaceAll substitutes every match with repl. Group references use the
// $1 / ${name} syntax; a group that did not participate expands to "".
// On engine failure the input is returned unchanged.
func (p *Pattern) ReplaceAll(text, repl string) string {
	out, err := p.re.Replace(text, repl, -1, -1)
	if err != nil {
		log().WithError(err).WithField("pattern", p.expr).Debug("pattern replace aborted")
		return text
	}
	return out
}

// CountLiteral counts non-overlapping occurrences of sub in text.
func CountLiteral(text, sub string) int {
	if sub == "" {
		return 0
	}
	return strings.Count(text, sub)
}

// Lines splits text on "\n". The empty text has a single empty line.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}
