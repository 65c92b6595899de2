package bridge

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/accessbridge/identity"
	"github.com/odvcencio/accessbridge/widget"
)

// Rule decides whether a widget is omitted from the tree.
type Rule interface {
	Excludes(w widget.Widget) bool
}

// RuleFunc adapts a predicate into a Rule.
type RuleFunc func(widget.Widget) bool

// Excludes applies the wrapped predicate.
func (f RuleFunc) Excludes(w widget.Widget) bool {
	if f == nil || w == nil {
		return false
	}
	return f(w)
}

// ExclusionSet prunes widgets from tree collection. An individually
// excluded widget emits no node but its children are still collected
// and promoted to its parent, so removing a decorative wrapper does not
// orphan meaningful descendants. A subtree exclusion removes the widget
// and everything beneath it.
//
// The zero value excludes nothing. ExclusionSet is evaluated on the UI
// thread only.
type ExclusionSet struct {
	widgets      map[identity.Handle]struct{}
	subtrees     map[identity.Handle]struct{}
	rules        []Rule
	subtreeRules []Rule
}

// NewExclusionSet creates an empty exclusion set.
func NewExclusionSet() *ExclusionSet {
	return &ExclusionSet{}
}

// Exclude hides w itself from the tree, keeping its descendants.
func (e *ExclusionSet) Exclude(w widget.Widget) {
	if e == nil || w == nil {
		return
	}
	if e.widgets == nil {
		e.widgets = make(map[identity.Handle]struct{})
	}
	e.widgets[w.Handle()] = struct{}{}
}

// ExcludeSubtree hides w and its entire subtree.
func (e *ExclusionSet) ExcludeSubtree(w widget.Widget) {
	if e == nil || w == nil {
		return
	}
	if e.subtrees == nil {
		e.subtrees = make(map[identity.Handle]struct{})
	}
	e.subtrees[w.Handle()] = struct{}{}
}

// AddRule registers a predicate for individual exclusion.
func (e *ExclusionSet) AddRule(r Rule) {
	if e == nil || r == nil {
		return
	}
	e.rules = append(e.rules, r)
}

// AddSubtreeRule registers a predicate for subtree exclusion.
func (e *ExclusionSet) AddSubtreeRule(r Rule) {
	if e == nil || r == nil {
		return
	}
	e.subtreeRules = append(e.subtreeRules, r)
}

// Excludes reports whether w's own node is suppressed.
func (e *ExclusionSet) Excludes(w widget.Widget) bool {
	if e == nil || w == nil {
		return false
	}
	if _, ok := e.widgets[w.Handle()]; ok {
		return true
	}
	for _, r := range e.rules {
		if r.Excludes(w) {
			return true
		}
	}
	return false
}

// SkipsSubtree reports whether w and all descendants are suppressed.
func (e *ExclusionSet) SkipsSubtree(w widget.Widget) bool {
	if e == nil || w == nil {
		return false
	}
	if _, ok := e.subtrees[w.Handle()]; ok {
		return true
	}
	for _, r := range e.subtreeRules {
		if r.Excludes(w) {
			return true
		}
	}
	return false
}

// Profile is a declarative exclusion policy, loadable from YAML.
// Kinds and labels match individual widgets; the subtree variants
// suppress whole branches.
type Profile struct {
	Kinds         []string `yaml:"kinds"`
	Labels        []string `yaml:"labels"`
	SubtreeKinds  []string `yaml:"subtree_kinds"`
	SubtreeLabels []string `yaml:"subtree_labels"`
}

// LoadProfile reads a YAML exclusion profile.
func LoadProfile(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read exclusion profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile parses a YAML exclusion profile.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse exclusion profile: %w", err)
	}
	if _, _, err := p.compile(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Apply installs the profile's rules on the set.
func (p *Profile) Apply(e *ExclusionSet) error {
	if p == nil || e == nil {
		return nil
	}
	rule, subtreeRule, err := p.compile()
	if err != nil {
		return err
	}
	if rule != nil {
		e.AddRule(rule)
	}
	if subtreeRule != nil {
		e.AddSubtreeRule(subtreeRule)
	}
	return nil
}

func (p *Profile) compile() (rule, subtreeRule Rule, err error) {
	kinds, err := parseKinds(p.Kinds)
	if err != nil {
		return nil, nil, err
	}
	subtreeKinds, err := parseKinds(p.SubtreeKinds)
	if err != nil {
		return nil, nil, err
	}
	if len(kinds) > 0 || len(p.Labels) > 0 {
		rule = matchRule(kinds, p.Labels)
	}
	if len(subtreeKinds) > 0 || len(p.SubtreeLabels) > 0 {
		subtreeRule = matchRule(subtreeKinds, p.SubtreeLabels)
	}
	return rule, subtreeRule, nil
}

func parseKinds(names []string) (map[widget.Kind]struct{}, error) {
	if len(names) == 0 {
		return nil, nil
	}
	kinds := make(map[widget.Kind]struct{}, len(names))
	for _, name := range names {
		k, err := widget.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds[k] = struct{}{}
	}
	return kinds, nil
}

func matchRule(kinds map[widget.Kind]struct{}, labels []string) Rule {
	labelSet := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		labelSet[l] = struct{}{}
	}
	return RuleFunc(func(w widget.Widget) bool {
		if _, ok := kinds[w.Kind()]; ok {
			return true
		}
		_, ok := labelSet[w.Label()]
		return ok
	})
}
