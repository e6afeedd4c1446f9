package rules

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Registry manages rule registration and lookup.
// Rules are returned in evaluation order (ascending Metadata().Order,
// ties broken by code) so that every caller sees the same sequence.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
	}
}

// Register adds a rule to the registry.
// Panics if a rule with the same code is already registered.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := rule.Metadata().Code
	if _, exists := r.rules[code]; exists {
		panic(fmt.Sprintf("rule %q already registered", code))
	}
	r.rules[code] = rule
}

// Get retrieves a rule by its code.
// Returns nil if no rule is found.
func (r *Registry) Get(code string) Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rules[code]
}

// Has returns true if a rule with the given code is registered.
func (r *Registry) Has(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.rules[code]
	return exists
}

// All returns all registered rules in evaluation order.
func (r *Registry) All() []Rule {
	return r.filter(func(Rule) bool { return true })
}

// Codes returns all registered rule codes in evaluation order.
func (r *Registry) Codes() []string {
	all := r.All()
	codes := make([]string, len(all))
	for i, rule := range all {
		codes[i] = rule.Metadata().Code
	}
	return codes
}

// Fixers returns the rules that can rewrite text, in evaluation order.
func (r *Registry) Fixers() []FixingRule {
	var out []FixingRule
	for _, rule := range r.All() {
		if f, ok := rule.(FixingRule); ok {
			out = append(out, f)
		}
	}
	return out
}

// ByCategory returns rules filtered by category.
func (r *Registry) ByCategory(category string) []Rule {
	return r.filter(func(rule Rule) bool {
		return rule.Metadata().Category == category
	})
}

func (r *Registry) filter(keep func(Rule) bool) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		if keep(rule) {
			result = append(result, rule)
		}
	}
	slices.SortFunc(result, compareRules)
	return result
}

func compareRules(a, b Rule) int {
	am, bm := a.Metadata(), b.Metadata()
	if c := cmp.Compare(am.Order, bm.Order); c != 0 {
		return c
	}
	return cmp.Compare(am.Code, bm.Code)
}

// defaultRegistry is the global default registry.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the global default registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a rule to the default registry.
func Register(rule Rule) {
	defaultRegistry.Register(rule)
}

// Get retrieves a rule from the default registry.
func Get(code string) Rule {
	return defaultRegistry.Get(code)
}

// All returns all rules from the default registry in evaluation order.
func All() []Rule {
	return defaultRegistry.All()
}

// Codes returns all rule codes from the default registry.
func Codes() []string {
	return defaultRegistry.Codes()
}
