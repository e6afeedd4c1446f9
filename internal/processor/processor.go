// Package processor provides a composable finding processing pipeline.
//
// The processor chain pattern is inspired by golangci-lint's approach:
// findings flow through a sequence of processors, each transforming the
// slice. The lint session runs the chain over each rule's findings as they
// are emitted, so order across rules is never changed here.
//
// Standard pipeline order:
//  1. SeverityOverride - Apply config severity overrides
//  2. LineLocation - Locate findings the rule left text-level
//  3. InlineDirectives - Drop findings hidden by # julint ignore= comments
package processor

import (
	"github.com/wharflab/julint/internal/config"
	"github.com/wharflab/julint/internal/directive"
	"github.com/wharflab/julint/internal/rules"
)

// Processor transforms a slice of findings.
type Processor interface {
	// Name returns the processor's identifier (for debugging/logging).
	Name() string

	// Process applies the processor's logic to findings.
	// Must not modify the input slice; return a new slice instead.
	Process(findings []rules.Finding, ctx *Context) []rules.Finding
}

// Context provides shared state for processors.
type Context struct {
	// Config is the loaded configuration. May be nil.
	Config *config.Config

	// Source is the original text of the session.
	Source string

	// Directives are the inline directives parsed from Source.
	Directives []directive.Directive
}

// NewContext creates a new processor context.
func NewContext(cfg *config.Config, source string, directives []directive.Directive) *Context {
	return &Context{Config: cfg, Source: source, Directives: directives}
}

// Chain runs processors in sequence.
type Chain struct {
	processors []Processor
}

// NewChain creates a new processor chain.
func NewChain(processors ...Processor) *Chain {
	return &Chain{processors: processors}
}

// Default returns the chain the lint session runs.
func Default() *Chain {
	return NewChain(
		NewSeverityOverride(),
		NewLineLocation(),
		NewInlineDirectives(),
	)
}

// Names returns the processor names in order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.processors))
	for i, p := range c.processors {
		names[i] = p.Name()
	}
	return names
}

// Process runs all processors in sequence.
func (c *Chain) Process(findings []rules.Finding, ctx *Context) []rules.Finding {
	for _, p := range c.processors {
		findings = p.Process(findings, ctx)
	}
	return findings
}

// transformFindings returns a new slice with each finding transformed.
func transformFindings(findings []rules.Finding, transform func(f rules.Finding) rules.Finding) []rules.Finding {
	if findings == nil {
		return nil
	}
	result := make([]rules.Finding, len(findings))
	for i, f := range findings {
		result[i] = transform(f)
	}
	return result
}
