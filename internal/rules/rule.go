package rules

// Input is what a rule sees during one lint session.
//
// Original is the text handed to the session by the source provider and
// never changes. Current is the text after every fix applied so far; it
// equals Original until a fixing rule changes something. Most rules read
// Current. The whole-text balance counters read Original.
//
// Input is read-only. Rules must not retain it past Check.
type Input struct {
	// Original is the unmodified source text.
	Original string

	// Current is the text after all fixes applied before this rule.
	Current string

	// Config is the rule-specific configuration (type depends on rule).
	Config any
}

// NewInput returns an Input whose current text is the original.
func NewInput(text string) Input {
	return Input{Original: text, Current: text}
}

// RuleMetadata contains static information about a rule.
type RuleMetadata struct {
	// Code is the unique identifier (e.g., "julia/not-in").
	Code string `json:"code"`

	// Name is the human-readable rule name.
	Name string `json:"name"`

	// Description explains what the rule checks.
	Description string `json:"description"`

	// DocURL links to detailed documentation.
	DocURL string `json:"docUrl,omitempty"`

	// DefaultSeverity is the severity when not overridden.
	DefaultSeverity Severity `json:"defaultSeverity"`

	// Category groups related rules (e.g., "correctness", "style").
	Category string `json:"category"`

	// Order is the rule's position in the evaluation sequence. Findings are
	// reported and fixes applied in ascending Order.
	Order int `json:"order"`

	// Heuristic marks pattern-only checks with known blind spots
	// (string and comment contents are not excluded).
	Heuristic bool `json:"heuristic,omitempty"`
}

// Rule is the interface that all linting rules must implement.
type Rule interface {
	// Metadata returns static information about the rule.
	Metadata() RuleMetadata

	// Check runs the rule and returns its findings in emission order.
	// A rule with nothing to report returns nil; it never fails.
	Check(input Input) []Finding
}

// FixResult is the outcome of one fixing rule applied to a text.
type FixResult struct {
	// Changed reports whether Text differs from the input.
	Changed bool

	// Text is the rewritten text. When Changed is false it is the input.
	Text string
}

// Unchanged returns the FixResult for a rule that left text alone.
func Unchanged(text string) FixResult {
	return FixResult{Text: text}
}

// FixingRule is a rule that can also rewrite the text it flags.
// Detection and rewriting share one compiled pattern so the two cannot drift.
type FixingRule interface {
	Rule

	// Fix rewrites text. It must be a pure function of text.
	Fix(text string) FixResult

	// FixDescription says what an applied fix did, e.g.
	// "rewrote 'not in' as '!(... in ...)'".
	FixDescription() string
}

// ConfigurableRule is an optional interface for rules that accept configuration.
type ConfigurableRule interface {
	Rule

	// DefaultConfig returns the default configuration for this rule.
	DefaultConfig() any
}
