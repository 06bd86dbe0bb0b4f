package cm

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// StyleMap holds inline style declarations. Values are strings, numbers, or
// func(Props) any resolved at render time.
type StyleMap map[string]any

// Clone returns a shallow copy of s.
func (s StyleMap) Clone() StyleMap {
	out := make(StyleMap, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a new map holding s overlaid with each of others in turn.
func (s StyleMap) Merge(others ...StyleMap) StyleMap {
	out := s.Clone()
	for _, other := range others {
		for k, v := range other {
			out[k] = v
		}
	}
	return out
}

// CSS serialises the map as "key: value;" declarations in key order.
func (s StyleMap) CSS() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s: %v;", k, s[k])
	}
	return b.String()
}

// KebabCase converts a camelCase style key to CSS property syntax. Custom properties
// starting with "--" are returned unchanged.
func KebabCase(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(strings.TrimPrefix(b.String(), "-"))
}

// normalizeStyle resolves function values, drops nil entries and kebab-cases keys.
// Keys are visited in sorted order so two spellings of one property resolve the same way on
// every render.
func normalizeStyle(s StyleMap, props Props) StyleMap {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(StyleMap, len(s))
	for _, k := range keys {
		v := s[k]
		if fn, ok := v.(func(Props) any); ok {
			v = fn(props)
		}
		if v == nil {
			continue
		}
		out[KebabCase(k)] = v
	}
	return out
}

// pass is the private state of one class-computation pass: the style accumulator and the
// variant lookups that found no option.
type pass struct {
	styles StyleMap
	misses []variantMiss
}

func newPass() *pass {
	return &pass{styles: StyleMap{}}
}

func (p *pass) style(decl StyleMap) string {
	if p == nil {
		return ""
	}
	for k, v := range decl {
		p.styles[KebabCase(k)] = v
	}
	return ""
}

// styleFromProps extracts a caller-supplied inline style.
func styleFromProps(props Props) StyleMap {
	switch s := props[StyleProp].(type) {
	case StyleMap:
		return s
	case map[string]any:
		return StyleMap(s)
	case map[string]string:
		out := make(StyleMap, len(s))
		for k, v := range s {
			out[k] = v
		}
		return out
	}
	return nil
}
