package testcases

import (
	"fmt"
	"regexp"
	"sort"

	"golang.org/x/exp/maps"
)

// Registry is an ordered, append-only list of cases. Cases are returned in the
// order they were added.
type Registry struct {
	cases []*Case
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Default returns a registry holding the insert cases followed by the update
// cases.
func Default() *Registry {
	r := NewRegistry()
	RegisterInsertCases(r)
	RegisterUpdateCases(r)
	return r
}

func (r *Registry) Add(c *Case) {
	r.cases = append(r.cases, c)
}

func (r *Registry) Len() int {
	return len(r.cases)
}

func (r *Registry) Cases() []*Case {
	out := make([]*Case, len(r.cases))
	copy(out, r.cases)
	return out
}

// Lookup returns the first case registered under name.
func (r *Registry) Lookup(name string) (*Case, bool) {
	for _, c := range r.cases {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Tags returns every tag used by a registered case, sorted.
func (r *Registry) Tags() []string {
	set := make(map[string]struct{})
	for _, c := range r.cases {
		for _, t := range c.Tags {
			set[t] = struct{}{}
		}
	}
	tags := maps.Keys(set)
	sort.Strings(tags)
	return tags
}

// Filter selects cases. Include and Exclude tokens match a case name or any
// of its tags. An empty Include selects everything; Pattern is an optional
// regular expression on the case name.
type Filter struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	Pattern string   `yaml:"pattern"`
}

func (f Filter) matches(c *Case, re *regexp.Regexp) bool {
	if len(f.Include) > 0 && !matchesAny(c, f.Include) {
		return false
	}
	if matchesAny(c, f.Exclude) {
		return false
	}
	return re == nil || re.MatchString(c.Name)
}

func matchesAny(c *Case, tokens []string) bool {
	for _, tok := range tokens {
		if tok == c.Name || c.HasTag(tok) {
			return true
		}
	}
	return false
}

// Filter returns the selected cases in registration order.
func (r *Registry) Filter(f Filter) ([]*Case, error) {
	var re *regexp.Regexp
	if f.Pattern != "" {
		var err error
		re, err = regexp.Compile(f.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid case pattern %q: %w", f.Pattern, err)
		}
	}
	var out []*Case
	for _, c := range r.cases {
		if f.matches(c, re) {
			out = append(out, c)
		}
	}
	return out, nil
}
