package config

import (
	"fmt"
	"strings"

	cmerrors "github.com/alexisbeaulieu97/classmate/pkg/errors"
)

// ValidateCatalog performs schema and cross-field validation on the catalog.
func ValidateCatalog(cat *Catalog) error {
	if cat == nil {
		return cmerrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cat); err != nil {
		return convertValidationError(err)
	}

	index := make(map[string]int, len(cat.Components))
	for i, comp := range cat.Components {
		if _, exists := index[comp.ID]; exists {
			return cmerrors.NewValidationError(fieldForComponent(i, "id"), fmt.Sprintf("duplicate component id %q", comp.ID), nil)
		}

		if err := ValidateComponent(comp); err != nil {
			return err
		}

		index[comp.ID] = i
	}

	for _, comp := range cat.Components {
		if comp.Extends == "" {
			continue
		}
		if _, ok := index[comp.Extends]; !ok {
			return cmerrors.NewReferenceError(comp.ID, comp.Extends)
		}
	}

	if cycle := detectCycle(cat.Components); len(cycle) > 0 {
		return cmerrors.NewValidationError("components", fmt.Sprintf("extends cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	return nil
}

// ValidateComponent validates a single component independent of the rest of the catalog.
func ValidateComponent(comp Component) error {
	v := validatorInstance()
	if err := v.Struct(comp); err != nil {
		return convertValidationError(err)
	}

	switch {
	case comp.Tag == "" && comp.Extends == "":
		return cmerrors.NewValidationError(comp.ID, "one of tag or extends is required", nil)
	case comp.Tag != "" && comp.Extends != "":
		return cmerrors.NewValidationError(comp.ID, "tag and extends are mutually exclusive", nil)
	case comp.Extends == comp.ID:
		return cmerrors.NewValidationError(comp.ID, "component cannot extend itself", nil)
	}

	groups := make(map[string]struct{}, len(comp.Variants))
	for _, group := range comp.Variants {
		if _, exists := groups[group.Name]; exists {
			return cmerrors.NewValidationError(comp.ID, fmt.Sprintf("duplicate variant group %q", group.Name), nil)
		}
		groups[group.Name] = struct{}{}

		options := make(map[string]struct{}, len(group.Options))
		for _, option := range group.Options {
			if _, exists := options[option.Value]; exists {
				return cmerrors.NewValidationError(comp.ID, fmt.Sprintf("duplicate option %q in variant group %q", option.Value, group.Name), nil)
			}
			options[option.Value] = struct{}{}
		}
	}

	for name := range comp.DefaultVariants {
		if _, ok := groups[name]; !ok {
			return cmerrors.NewValidationError(comp.ID, fmt.Sprintf("default_variants names unknown variant group %q", name), nil)
		}
	}

	return nil
}
