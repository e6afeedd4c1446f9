// Package linter runs the Julia rule catalogue over one text.
//
// A Session evaluates the enabled rules in catalogue order. Detection
// findings go straight into the outcome; fixing rules also offer their
// rewrite to a fix.Accumulator, so a later rule sees the text produced by
// every earlier fix. Sessions do no I/O and keep no state between runs.
package linter

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/wharflab/julint/internal/config"
	"github.com/wharflab/julint/internal/directive"
	"github.com/wharflab/julint/internal/fix"
	"github.com/wharflab/julint/internal/processor"
	"github.com/wharflab/julint/internal/rules"
	_ "github.com/wharflab/julint/internal/rules/all" // Register all rules.
)

const (
	autoFixedPrefix    = "Auto-fixed: "
	fixAvailablePrefix = "Fix available: "
)

// Session evaluates rules over source texts.
// A Session is safe for concurrent use; each Run is independent.
type Session struct {
	registry *rules.Registry
	cfg      *config.Config
	logger   logrus.FieldLogger
	fix      bool
	chain    *processor.Chain
}

// Option configures a Session.
type Option func(*Session)

// WithRegistry evaluates the rules of r instead of the default registry.
func WithRegistry(r *rules.Registry) Option {
	return func(s *Session) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithConfig selects rules, severities, fix modes and rule options.
func WithConfig(cfg *config.Config) Option {
	return func(s *Session) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithLogger sets the logger for per-rule debug output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFix enables or disables applying fixes. With fixes disabled the
// final text is the original and each available fix is only reported.
func WithFix(enabled bool) Option {
	return func(s *Session) {
		s.fix = enabled
	}
}

// NewSession creates a session with the default registry and config,
// fixes enabled, and a logger that discards everything.
func NewSession(opts ...Option) *Session {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Session{
		registry: rules.DefaultRegistry(),
		cfg:      config.Default(),
		logger:   discard,
		fix:      true,
		chain:    processor.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run lints text in one synchronous pass.
func (s *Session) Run(text string) *Outcome {
	parsed := directive.Parse(text, s.knownRule)
	for _, perr := range parsed.Errors {
		s.logger.WithField("line", perr.Line).Warn("invalid julint directive: " + perr.Message)
	}

	enabled := EnabledRules(s.registry, s.cfg)
	active := enabled[:0:0]
	for _, rule := range enabled {
		if parsed.SuppressesGlobally(rule.Metadata().Code) {
			s.logger.WithField("rule", rule.Metadata().Code).Debug("rule disabled by directive")
			continue
		}
		active = append(active, rule)
	}

	acc := fix.NewAccumulator(text, fixModes(active, s.cfg), s.fix)
	ctx := processor.NewContext(s.cfg, text, parsed.Directives)

	var findings []rules.Finding
	for _, rule := range active {
		meta := rule.Metadata()
		found := rule.Check(rules.Input{
			Original: text,
			Current:  acc.Current(),
			Config:   s.ruleConfig(rule),
		})

		fixed := false
		if fr, ok := rule.(rules.FixingRule); ok {
			switch acc.Apply(fr) {
			case fix.StatusApplied:
				found = append(found, announce(meta, autoFixedPrefix+fr.FixDescription()).AsFixed())
				fixed = true
			case fix.StatusSkipped:
				found = append(found, announce(meta, fixAvailablePrefix+fr.FixDescription()))
			case fix.StatusUnchanged:
			}
		}

		found = s.chain.Process(found, ctx)
		s.logger.WithFields(logrus.Fields{
			"rule":     meta.Code,
			"findings": len(found),
			"fixed":    fixed,
		}).Debug("rule evaluated")

		findings = append(findings, found...)
	}

	return &Outcome{
		Findings:     findings,
		Original:     acc.Original(),
		Final:        acc.Current(),
		Applied:      acc.Applied(),
		Skipped:      acc.Skipped(),
		RulesEnabled: len(active),
	}
}

// knownRule accepts namespaced codes and bare rule names.
func (s *Session) knownRule(code string) bool {
	return s.registry.Has(code) || s.registry.Has(rules.JuliaRulePrefix+code)
}

// ruleConfig returns the options a rule is checked with: the configured
// options when present, otherwise the rule's defaults.
func (s *Session) ruleConfig(rule rules.Rule) any {
	if opts := s.cfg.Rules.GetOptions(rule.Metadata().Code); opts != nil {
		return opts
	}
	if cr, ok := rule.(rules.ConfigurableRule); ok {
		return cr.DefaultConfig()
	}
	return nil
}

func announce(meta rules.RuleMetadata, message string) rules.Finding {
	return rules.NewFinding(meta.Code, message, meta.DefaultSeverity).WithDocURL(meta.DocURL)
}

func fixModes(enabled []rules.Rule, cfg *config.Config) map[string]fix.FixMode {
	modes := make(map[string]fix.FixMode)
	for _, rule := range enabled {
		if _, ok := rule.(rules.FixingRule); !ok {
			continue
		}
		code := rule.Metadata().Code
		modes[code] = cfg.Rules.GetFixMode(code)
	}
	return modes
}

// Lint runs a default session over text and returns the rendered report.
func Lint(text string) string {
	return NewSession().Run(text).Report()
}
