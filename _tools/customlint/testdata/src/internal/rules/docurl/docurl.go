package docurl

// Metadata represents a rule's metadata (simplified for testing).
type Metadata struct {
	Code   string
	DocURL string
}

// Finding is a simplified finding with a builder.
type Finding struct {
	DocURL string
}

// WithDocURL returns a copy with the doc link set.
func (f Finding) WithDocURL(url string) Finding {
	f.DocURL = url
	return f
}

func docURL(code string) string { return "https://example.com/" + code }

var someVar = "https://example.com/rule"

// Bad: hardcoded string literal in DocURL field.
var badMeta = Metadata{
	Code:   "julia/not-in",
	DocURL: "https://example.com/rule", // want `use rules.DocURL instead of hardcoded DocURL string "https://example.com/rule"`
}

// Good: function call in DocURL field.
var goodMetaFunc = Metadata{
	Code:   "julia/indentation",
	DocURL: docURL("julia/indentation"),
}

// Good: variable in DocURL field.
var goodMetaVar = Metadata{
	Code:   "julia/paren-balance",
	DocURL: someVar,
}

// Good: other field names don't trigger the check.
type OtherStruct struct {
	Name string
	URL  string
}

var goodOtherField = OtherStruct{
	Name: "example",
	URL:  "https://example.com/other",
}

// Bad: nested struct with DocURL.
type RuleWithMetadata struct {
	Name string
	Meta Metadata
}

var badNested = RuleWithMetadata{
	Name: "TestRule",
	Meta: Metadata{
		Code:   "julia/catch-syntax",
		DocURL: "https://example.com/nested", // want `use rules.DocURL instead of hardcoded DocURL string "https://example.com/nested"`
	},
}

// Good: short form composite literal (analyzer only checks KeyValueExpr).
var goodShort = Metadata{"julia/vague-filter", docURL("julia/vague-filter")}

const docURLConst = "https://example.com/const"

// Good: constant reference.
var goodConst = Metadata{
	Code:   "julia/quote-balance",
	DocURL: docURLConst,
}

// Bad: builder with a literal.
var badBuilder = Finding{}.WithDocURL("https://example.com/builder") // want `use rules.DocURL instead of hardcoded DocURL string "https://example.com/builder"`

// Good: builder with a helper.
var goodBuilder = Finding{}.WithDocURL(docURL("julia/not-in"))
