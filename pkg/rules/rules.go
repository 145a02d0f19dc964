package rules

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎨 Rule maps a hardcoded CSS declaration value to a custom property reference.
// A rule matches `<property>: <value>` case-insensitively, but only when the
// value is immediately followed by a statement terminator, whitespace, or a
// closing brace, so that shorter hex codes never match inside longer ones.
type Rule struct {
	Property    string `json:"property" yaml:"property" hcl:"property"`          // CSS property name (e.g. "background-color")
	Value       string `json:"value" yaml:"value" hcl:"value"`                   // Hardcoded value to replace (e.g. "#ffffff")
	Replacement string `json:"replacement" yaml:"replacement" hcl:"replacement"` // Replacement value (e.g. "var(--color-bg-secondary)")
}

// boundary is the character class that must follow a matched value. RE2 has
// no lookahead, so the character is captured and restored by the replacement
// template instead.
const boundary = `([;\s}])`

// 🔍 Validate checks that the rule is complete
func (r Rule) Validate() error {
	if r.Property == "" {
		return errors.Errorf("property is required")
	}
	if r.Value == "" {
		return errors.Errorf("value is required")
	}
	if r.Replacement == "" {
		return errors.Errorf("replacement is required")
	}
	return nil
}

// 🔧 Compile builds the matcher and replacement template for a rule
func (r Rule) Compile() (CompiledRule, error) {
	if err := r.Validate(); err != nil {
		return CompiledRule{}, err
	}

	pattern := `(?i)` + regexp.QuoteMeta(r.Property) + `:\s*` + regexp.QuoteMeta(r.Value) + boundary
	re, err := regexp.Compile(pattern)
	if err != nil {
		return CompiledRule{}, errors.Errorf("compiling rule for %s: %w", r.Property, err)
	}

	// Literal dollar signs in the replacement must not be treated as
	// template references.
	repl := r.Property + ": " + strings.ReplaceAll(r.Replacement, "$", "$$") + "${1}"

	return CompiledRule{rule: r, re: re, repl: repl}, nil
}

// 🎯 CompiledRule pairs a rule's matcher with its expansion template
type CompiledRule struct {
	rule Rule
	re   *regexp.Regexp
	repl string
}

// Rule returns the source rule
func (cr CompiledRule) Rule() Rule {
	return cr.rule
}

// 🔄 Apply rewrites every match of the rule in content, returning the new
// content and the number of substitutions made
func (cr CompiledRule) Apply(content string) (string, int) {
	matches := cr.re.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}
	return cr.re.ReplaceAllString(content, cr.repl), len(matches)
}

// 📋 CompileTable compiles a rule table, preserving order. Order is
// significant: later rules see text already rewritten by earlier ones.
func CompileTable(table []Rule) ([]CompiledRule, error) {
	compiled := make([]CompiledRule, 0, len(table))
	for i, r := range table {
		cr, err := r.Compile()
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		compiled = append(compiled, cr)
	}
	return compiled, nil
}

// 🗺️ DefaultTable returns the built-in mapping from hardcoded theme colors to
// CSS custom properties, in application order.
func DefaultTable() []Rule {
	return []Rule{
		// Backgrounds
		{Property: "background", Value: "#ffffff", Replacement: "var(--color-bg-secondary)"},
		{Property: "background-color", Value: "#ffffff", Replacement: "var(--color-bg-secondary)"},
		{Property: "background", Value: "#f6f8fb", Replacement: "var(--color-bg-primary)"},
		{Property: "background-color", Value: "#f6f8fb", Replacement: "var(--color-bg-primary)"},
		{Property: "background", Value: "#f0f4f8", Replacement: "var(--color-bg-tertiary)"},
		{Property: "background-color", Value: "#f0f4f8", Replacement: "var(--color-bg-tertiary)"},

		// Text colors
		{Property: "color", Value: "#1a1f2d", Replacement: "var(--color-text-primary)"},
		{Property: "color", Value: "#5a6e8b", Replacement: "var(--color-text-secondary)"},
		{Property: "color", Value: "#8896aa", Replacement: "var(--color-text-tertiary)"},

		// Borders
		{Property: "border", Value: "1px solid #dce3ee", Replacement: "1px solid var(--color-border)"},
		{Property: "border", Value: "2px solid #dce3ee", Replacement: "2px solid var(--color-border)"},
		{Property: "border-color", Value: "#dce3ee", Replacement: "var(--color-border)"},
		{Property: "border-bottom", Value: "1px solid #dce3ee", Replacement: "1px solid var(--color-border)"},
		{Property: "border-top", Value: "1px solid #dce3ee", Replacement: "1px solid var(--color-border)"},
		{Property: "border-left", Value: "1px solid #dce3ee", Replacement: "1px solid var(--color-border)"},
		{Property: "border-right", Value: "1px solid #dce3ee", Replacement: "1px solid var(--color-border)"},
	}
}
