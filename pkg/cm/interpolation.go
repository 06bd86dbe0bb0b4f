package cm

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/classmate/pkg/cm/classname"
)

// Args is what interpolations and variant options receive: the resolved props plus the
// style utility of the current pass.
type Args struct {
	Props
	pass *pass
}

// Style merges decl into the inline style of the current render and returns "", so it can be
// embedded anywhere in a template without touching the class string.
func (a Args) Style(decl StyleMap) string {
	return a.pass.style(decl)
}

// Interpolation is one slot of a template or one option of a variant group.
type Interpolation interface {
	Interpolate(a Args) string
}

// Class is a literal class fragment.
type Class string

// Interpolate implements Interpolation.
func (c Class) Interpolate(Args) string { return string(c) }

// Derived computes a fragment from props. An empty result contributes nothing.
type Derived func(a Args) string

// Interpolate implements Interpolation.
func (d Derived) Interpolate(a Args) string {
	if d == nil {
		return ""
	}
	return d(a)
}

type literal struct {
	value any
}

func (l literal) Interpolate(Args) string {
	if l.value == nil {
		return ""
	}
	return fmt.Sprint(l.value)
}

// Lit wraps a plain value. nil contributes nothing; anything else is formatted with fmt.Sprint.
func Lit(v any) Interpolation {
	return literal{value: v}
}

// When contributes class when the prop is truthy.
func When(key, class string) Interpolation {
	return Toggle(key, class, "")
}

// Toggle contributes on when the prop is truthy and off otherwise.
func Toggle(key, on, off string) Interpolation {
	return Derived(func(a Args) string {
		if a.Bool(key) {
			return on
		}
		return off
	})
}

// Style contributes the given declarations to the inline style and nothing to the class string.
func Style(decl StyleMap) Interpolation {
	return Derived(func(a Args) string {
		return a.Style(decl)
	})
}

// Template is an ordered alternation of literal segments and interpolation slots:
// Strings[0], Interpolations[0], Strings[1], ...
type Template struct {
	Strings        []string
	Interpolations []Interpolation
}

// T builds a template from parts. Strings extend the current literal segment exactly as given,
// so "w-" followed by Lit(4) yields "w-4"; separate classes with spaces yourself.
// Interpolations and func(Args) string values open a slot; any other value becomes Lit(v).
func T(parts ...any) Template {
	tpl := Template{Strings: []string{""}}
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			tpl.Strings[len(tpl.Strings)-1] += v
		case Interpolation:
			tpl.slot(v)
		case func(Args) string:
			tpl.slot(Derived(v))
		default:
			tpl.slot(Lit(v))
		}
	}
	return tpl
}

func (t *Template) slot(i Interpolation) {
	t.Interpolations = append(t.Interpolations, i)
	t.Strings = append(t.Strings, "")
}

func (t Template) clone() Template {
	return Template{
		Strings:        append([]string(nil), t.Strings...),
		Interpolations: append([]Interpolation(nil), t.Interpolations...),
	}
}

// Empty reports whether the template has neither text nor slots.
func (t Template) Empty() bool {
	return len(t.Interpolations) == 0 && strings.TrimSpace(strings.Join(t.Strings, "")) == ""
}

func (t Template) className(a Args) string {
	var b strings.Builder
	for i, s := range t.Strings {
		b.WriteString(s)
		if i < len(t.Interpolations) && t.Interpolations[i] != nil {
			b.WriteString(t.Interpolations[i].Interpolate(a))
		}
	}
	// slots without a trailing literal segment
	for i := len(t.Strings); i < len(t.Interpolations); i++ {
		if t.Interpolations[i] != nil {
			b.WriteString(" ")
			b.WriteString(t.Interpolations[i].Interpolate(a))
		}
	}
	return classname.Normalize(b.String())
}
