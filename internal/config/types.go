package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog represents a full component catalog document.
type Catalog struct {
	Version     string      `yaml:"version" validate:"required,semver"`
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty"`
	Settings    Settings    `yaml:"settings,omitempty"`
	Components  []Component `yaml:"components" validate:"required,min=1,dive"`
}

// Settings holds catalog-wide rendering parameters.
type Settings struct {
	Resolver       string `yaml:"resolver,omitempty" validate:"omitempty,oneof=tailwind join"`
	StrictVariants bool   `yaml:"strict_variants,omitempty"`
	FallbackTag    string `yaml:"fallback_tag,omitempty" validate:"omitempty,element"`
}

// Component describes one styled component. Exactly one of Tag and Extends is set.
type Component struct {
	ID              string            `yaml:"id" validate:"required,component_id"`
	Description     string            `yaml:"description,omitempty"`
	Tag             string            `yaml:"tag,omitempty" validate:"omitempty,element"`
	Extends         string            `yaml:"extends,omitempty" validate:"omitempty,component_id"`
	Classes         []ClassRule       `yaml:"classes,omitempty" validate:"omitempty,dive"`
	Style           map[string]string `yaml:"style,omitempty"`
	Variants        VariantGroups     `yaml:"variants,omitempty" validate:"omitempty,dive"`
	DefaultVariants map[string]string `yaml:"default_variants,omitempty"`
	Logic           []LogicRule       `yaml:"logic,omitempty" validate:"omitempty,dive"`
}

// ClassRule is a static class fragment, or a conditional one when When names a prop. A
// leading "!" on When negates the condition.
type ClassRule struct {
	Class string `yaml:"class"`
	When  string `yaml:"when,omitempty" validate:"omitempty,min=1"`
	Else  string `yaml:"else,omitempty"`
}

// UnmarshalYAML accepts either a plain string or a mapping.
func (r *ClassRule) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*r = ClassRule{Class: value.Value}
		return nil
	}

	type rawRule ClassRule
	var temp rawRule
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*r = ClassRule(temp)
	return nil
}

// Conditional reports whether the rule depends on a prop.
func (r ClassRule) Conditional() bool {
	return r.When != ""
}

// Condition returns the prop name and whether the condition is negated.
func (r ClassRule) Condition() (string, bool) {
	if strings.HasPrefix(r.When, "!") {
		return strings.TrimPrefix(r.When, "!"), true
	}
	return r.When, false
}

// VariantGroups keeps variant groups in document order.
type VariantGroups []VariantGroup

// VariantGroup is one named dimension of a variant table.
type VariantGroup struct {
	Name    string          `validate:"required"`
	Options []VariantOption `validate:"required,min=1,dive"`
	Line    int             `yaml:"-"`
}

// VariantOption maps a formatted prop value to classes.
type VariantOption struct {
	Value string `validate:"required"`
	Class string
}

// UnmarshalYAML decodes an ordered mapping of group name to option mapping.
func (g *VariantGroups) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variants must be a mapping", value.Line)
	}

	groups := make(VariantGroups, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, body := value.Content[i], value.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: variant group %q must be a mapping", body.Line, key.Value)
		}

		group := VariantGroup{Name: key.Value, Line: key.Line}
		for j := 0; j+1 < len(body.Content); j += 2 {
			option, err := decodeOption(body.Content[j], body.Content[j+1])
			if err != nil {
				return err
			}
			group.Options = append(group.Options, option)
		}
		groups = append(groups, group)
	}

	*g = groups
	return nil
}

func decodeOption(key, value *yaml.Node) (VariantOption, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		return VariantOption{Value: key.Value, Class: value.Value}, nil
	case yaml.SequenceNode:
		var parts []string
		if err := value.Decode(&parts); err != nil {
			return VariantOption{}, err
		}
		return VariantOption{Value: key.Value, Class: strings.Join(parts, " ")}, nil
	}
	return VariantOption{}, fmt.Errorf("line %d: option %q must be a string or a list of strings", value.Line, key.Value)
}

// Group returns the named group.
func (g VariantGroups) Group(name string) (VariantGroup, bool) {
	for _, group := range g {
		if group.Name == name {
			return group, true
		}
	}
	return VariantGroup{}, false
}

// LogicRule copies prop From to prop To before classes are computed. When Value is set, To
// receives Value only while From is truthy. OmitSource withholds From from the host for that
// render.
type LogicRule struct {
	From       string `yaml:"from" validate:"required"`
	To         string `yaml:"to" validate:"required,nefield=From"`
	Value      string `yaml:"value,omitempty"`
	OmitSource bool   `yaml:"omit_source,omitempty"`
}

// ComponentMap builds a lookup table for components by ID.
func ComponentMap(components []Component) map[string]Component {
	out := make(map[string]Component, len(components))
	for _, c := range components {
		out[c.ID] = c
	}
	return out
}

// Component returns the component with the given id.
func (c *Catalog) Component(id string) (Component, bool) {
	if c == nil {
		return Component{}, false
	}
	for _, comp := range c.Components {
		if comp.ID == id {
			return comp, true
		}
	}
	return Component{}, false
}

// IDs returns component ids in document order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.Components))
	for _, comp := range c.Components {
		ids = append(ids, comp.ID)
	}
	return ids
}
