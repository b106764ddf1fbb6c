// Package ruleconfig loads a lexer rule table from an external JSON
// document instead of Go source: useful for embedding a custom surface
// grammar without recompiling. Every document is checked against an
// embedded JSON Schema and a semantic-version gate before being trusted.
package ruleconfig

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/aledsdavies/munch/core/regex"
	"github.com/aledsdavies/munch/core/token"
)

// SupportedMajor is the only rule-config major version this package
// understands. A document declaring a different major version is
// rejected outright rather than partially applied.
const SupportedMajor = "v1"

// RuleSpec is one rule entry as it appears in the JSON document.
type RuleSpec struct {
	Kind     string      `json:"kind"`
	Pattern  PatternSpec `json:"pattern"`
	FromMode string      `json:"from_mode"`
	ToMode   string      `json:"to_mode"`
	KeepSpan bool        `json:"keep_span"`
}

// Config is a parsed, schema-valid, version-checked rule table document.
type Config struct {
	Version   string     `json:"version"`
	StartMode string     `json:"start_mode"`
	Rules     []RuleSpec `json:"rules"`
}

// ResolvedRule is a RuleSpec with its string kind/mode names resolved
// against core/token and its pattern compiled to a regex.Term, ready to
// hand to lexer.Lexer.AddRule.
type ResolvedRule struct {
	Kind     token.Kind
	Pattern  *regex.Term
	FromMode token.Mode
	ToMode   token.Mode
	KeepSpan bool
}

// Parse validates data against the embedded schema and version gate, then
// unmarshals it into a Config.
func Parse(data []byte) (*Config, error) {
	validator, err := compiledValidator(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("ruleconfig: compiling schema: %w", err)
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("ruleconfig: invalid JSON: %w", err)
	}
	if err := validator.Validate(generic); err != nil {
		return nil, fmt.Errorf("ruleconfig: schema validation: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ruleconfig: decoding config: %w", err)
	}
	if err := checkVersion(cfg.Version); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func checkVersion(version string) error {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("ruleconfig: %q is not a valid semantic version", version)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("ruleconfig: version %q has major %s, only %s is supported", version, semver.Major(v), SupportedMajor)
	}
	return nil
}

// Resolve compiles every rule's pattern and resolves its mode/kind names
// against core/token, returning the start mode and the resolved rules in
// document order.
func (c *Config) Resolve() (startMode token.Mode, rules []ResolvedRule, err error) {
	startMode, ok := token.ParseMode(c.StartMode)
	if !ok {
		return 0, nil, fmt.Errorf("ruleconfig: unknown start_mode %q", c.StartMode)
	}

	rules = make([]ResolvedRule, 0, len(c.Rules))
	for i, r := range c.Rules {
		kind, ok := token.ParseKind(r.Kind)
		if !ok {
			return 0, nil, fmt.Errorf("ruleconfig: rule %d: unknown kind %q", i, r.Kind)
		}
		from, ok := token.ParseMode(r.FromMode)
		if !ok {
			return 0, nil, fmt.Errorf("ruleconfig: rule %d: unknown from_mode %q", i, r.FromMode)
		}
		to, ok := token.ParseMode(r.ToMode)
		if !ok {
			return 0, nil, fmt.Errorf("ruleconfig: rule %d: unknown to_mode %q", i, r.ToMode)
		}
		pattern, err := r.Pattern.Build()
		if err != nil {
			return 0, nil, fmt.Errorf("ruleconfig: rule %d: %w", i, err)
		}
		rules = append(rules, ResolvedRule{
			Kind:     kind,
			Pattern:  pattern,
			FromMode: from,
			ToMode:   to,
			KeepSpan: r.KeepSpan,
		})
	}
	return startMode, rules, nil
}
