// Package protect decides whether a file path is too sensitive for an agent
// to modify. It combines a built-in rule set covering common secret-bearing
// paths with an optional per-project overlay file.
package protect

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Built-in protected path patterns. Paths are normalized to forward slashes
// before matching, so these only need to consider "/" separators.
var defaultProtected = []string{
	`(^|/)\.env$`,
	`(^|/)\.env\.[^/]+$`,
	`\.pem$`,
	`\.key$`,
	`(^|/)id_rsa[^/]*$`,
	`(^|/)id_ed25519[^/]*$`,
	`(^|/)\.ssh/`,
	`(^|/)\.aws/credentials$`,
	`(^|/)secrets?\.(json|ya?ml)$`,
	`(^|/)credentials(\.[^/]+)?$`,
	`(^|/)\.git/`,
}

// Built-in exceptions. Allow rules are checked before protect rules, so a
// path matching one of these is editable even if a protect rule also matches.
var defaultAllowed = []string{
	`\.env\.(example|sample|template)$`,
}

// mutatingTools are the tool names whose invocations can alter a file.
// Read-only tools never trip the protector.
var mutatingTools = map[string]bool{
	"Write":        true,
	"Edit":         true,
	"MultiEdit":    true,
	"NotebookEdit": true,
}

// AppliesTo reports whether the protector should inspect an invocation of
// the named tool. An empty tool name (bare carrier) is inspected.
func AppliesTo(toolName string) bool {
	return toolName == "" || mutatingTools[toolName]
}

// rulesFile is the on-disk shape of the per-project overlay.
type rulesFile struct {
	Protect []string `yaml:"protect"`
	Allow   []string `yaml:"allow"`
}

// RuleSet holds the compiled protect and allow rules in evaluation order.
type RuleSet struct {
	protect []rule
	allow   []rule
}

type rule struct {
	expr string
	re   *regexp.Regexp
}

// Load builds the rule set from the built-in defaults plus the overlay file
// at path, when it exists. A missing overlay is fine; an unreadable one, or
// one containing an invalid pattern, is a fatal configuration error.
func Load(path string) (*RuleSet, error) {
	overlay := rulesFile{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// no overlay for this project
		case err != nil:
			return nil, fmt.Errorf("read protected rules %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &overlay); err != nil {
				return nil, fmt.Errorf("parse protected rules %s: %w", path, err)
			}
		}
	}

	rs := &RuleSet{}
	var err error
	if rs.allow, err = compileRules(defaultAllowed, overlay.Allow); err != nil {
		return nil, fmt.Errorf("invalid allow rule: %w", err)
	}
	if rs.protect, err = compileRules(defaultProtected, overlay.Protect); err != nil {
		return nil, fmt.Errorf("invalid protect rule: %w", err)
	}
	return rs, nil
}

func compileRules(builtin, overlay []string) ([]rule, error) {
	rules := make([]rule, 0, len(builtin)+len(overlay))
	for _, expr := range append(append([]string{}, builtin...), overlay...) {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", expr, err)
		}
		rules = append(rules, rule{expr: expr, re: re})
	}
	return rules, nil
}

// Match reports whether path is protected and, if so, which rule matched.
// Allow rules take precedence over protect rules.
func (rs *RuleSet) Match(path string) (string, bool) {
	normalized := normalizePath(path)
	for _, r := range rs.allow {
		if r.re.MatchString(normalized) {
			return "", false
		}
	}
	for _, r := range rs.protect {
		if r.re.MatchString(normalized) {
			return r.expr, true
		}
	}
	return "", false
}

func normalizePath(path string) string {
	out := make([]rune, 0, len(path))
	for _, r := range path {
		if r == '\\' {
			r = '/'
		}
		out = append(out, r)
	}
	return string(out)
}
