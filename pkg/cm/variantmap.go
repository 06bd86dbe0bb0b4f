package cm

import (
	cmerrors "github.com/alexisbeaulieu97/classmate/pkg/errors"
)

// VariantMapOptions configures BuildVariantMap.
type VariantMapOptions struct {
	Registry    *Registry
	Elements    []string
	Config      VariantsConfig
	FallbackTag string
	Reporter    Reporter
}

// BuildVariantMap builds one variants component per element from a shared config.
// Duplicate elements are a configuration error. An element without a factory falls back to the
// fallback tag's factory, or is skipped when there is none; both cases are reported.
func BuildVariantMap(opts VariantMapOptions) (map[string]*Component, error) {
	if dups := duplicates(opts.Elements); len(dups) > 0 {
		return nil, cmerrors.NewDuplicateError("variant map", dups)
	}

	fallback, hasFallback := opts.Registry.Lookup(opts.FallbackTag)
	if opts.FallbackTag == "" {
		hasFallback = false
	}

	out := make(map[string]*Component, len(opts.Elements))
	for _, tag := range opts.Elements {
		if f, ok := opts.Registry.Lookup(tag); ok {
			out[tag] = f.Variants(opts.Config)
			continue
		}
		if hasFallback {
			opts.Reporter.warnf("classmate: Element %q is not supported by the runtime. Falling back to %q.", tag, opts.FallbackTag)
			out[tag] = fallback.Variants(opts.Config)
			continue
		}
		opts.Reporter.warnf("classmate: Element %q is not supported and no fallback was provided.", tag)
	}
	return out, nil
}

// CreateVariantMap builds a variant map against DefaultRegistry, falling back to "div".
func CreateVariantMap(elements []string, cfg VariantsConfig, reporter Reporter) (map[string]*Component, error) {
	return BuildVariantMap(VariantMapOptions{
		Registry:    DefaultRegistry(),
		Elements:    elements,
		Config:      cfg,
		FallbackTag: DefaultFallbackTag,
		Reporter:    reporter,
	})
}

func duplicates(items []string) []string {
	count := make(map[string]int, len(items))
	var dups []string
	for _, item := range items {
		count[item]++
		if count[item] == 2 {
			dups = append(dups, item)
		}
	}
	return dups
}
