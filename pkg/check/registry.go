package check

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for all rules.
var globalRegistry = &Registry{
	rules: make(map[RuleName]RuleDef),
}

// Registry stores registered rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[RuleName]RuleDef // keyed by name
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.Name] = rule
}

// GetAll returns all registered rules sorted by evaluation order.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Seq < rules[j].Seq })
	return rules
}

// GetByName returns a rule by its name.
func GetByName(name RuleName) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[name]
	return rule, ok
}

// LineRules returns the registered line rules in evaluation order.
func LineRules() []RuleDef {
	var rules []RuleDef
	for _, rule := range GetAll() {
		if rule.Match != nil {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[RuleName]RuleDef)
}
