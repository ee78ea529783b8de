// Package provider carries per-host parsing rules for git hosting services
// whose locator paths embed non-hierarchical virtual segments. New providers
// are supported by configuration, not code branches.
package provider

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/giturl/pkg/giturl"
)

// Rule binds a host to the number of trailing path segments to ignore when
// segmenting locators for that host.
type Rule struct {
	// Host is the provider hostname, matched case-insensitively.
	Host string `yaml:"host" json:"host"`

	// SkipParts is how many segments nearest the path root to ignore.
	SkipParts int `yaml:"skip_parts" json:"skip_parts"`
}

// Rules is an ordered rule set; the first host match wins.
type Rules struct {
	Rules []Rule `yaml:"rules"`
}

// Default returns the built-in rule set. Azure DevOps ssh locators carry a
// v3 API marker ahead of the organization segment.
func Default() *Rules {
	return &Rules{
		Rules: []Rule{
			{Host: "ssh.dev.azure.com", SkipParts: 1},
		},
	}
}

// Load reads a rule set from a YAML file.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if rules.Rules == nil {
		rules.Rules = []Rule{}
	}

	return &rules, nil
}

// Match returns the skip count configured for host, or 0 when no rule
// applies.
func (r *Rules) Match(host string) int {
	for _, rule := range r.Rules {
		if strings.EqualFold(rule.Host, host) {
			return rule.SkipParts
		}
	}
	return 0
}

// Parse parses a locator after applying the skip rule for its host. The
// locator is normalized once up front to discover the host.
func (r *Rules) Parse(raw string) (*giturl.GitURL, error) {
	normalized, err := giturl.Normalize(raw)
	if err != nil {
		return nil, err
	}

	return giturl.ParseWithSkip(raw, r.Match(normalized.Hostname()))
}
