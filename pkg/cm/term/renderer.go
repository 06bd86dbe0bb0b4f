// Package term renders cm components to styled terminal strings. Utility classes from the
// Tailwind palette and the computed inline styles are mapped onto lipgloss styles; classes
// with no terminal meaning are ignored.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/classmate/pkg/cm"
)

// Component is an external renderable. It receives the forwarded props plus "class", "style"
// and "children".
type Component func(props cm.Props) string

// Renderer renders components with a Theme.
type Renderer struct {
	theme Theme
	opts  []cm.RenderOption
}

// NewRenderer returns a Renderer using the default theme.
func NewRenderer(opts ...cm.RenderOption) *Renderer {
	return &Renderer{theme: DefaultTheme(), opts: opts}
}

// WithTheme returns a copy of r using theme.
func (r *Renderer) WithTheme(theme Theme) *Renderer {
	return &Renderer{theme: theme, opts: r.opts}
}

// Render runs the component pipeline and draws the result.
func (r *Renderer) Render(c *cm.Component, props cm.Props) string {
	return cm.Render(c, props, r.Host(), r.opts...)
}

// Style returns the lipgloss style for a prepared render.
func (r *Renderer) Style(out cm.Rendered) lipgloss.Style {
	return FromStyleMap(FromClasses(out.ClassName, r.theme), out.Style, r.theme)
}

// Host returns the host renderer used by Render.
func (r *Renderer) Host() cm.HostRenderer[string] {
	return func(out cm.Rendered) string {
		if out.Tag.Name() != "" {
			if hidden(out.ClassName) {
				return ""
			}
			return r.Style(out).Render(Content(out.Children))
		}

		switch h := out.Tag.Renderable().(type) {
		case Component:
			return h(hostProps(out))
		case func(cm.Props) string:
			return h(hostProps(out))
		case *cm.Component:
			return r.Render(h, hostProps(out))
		}
		return ""
	}
}

// Content flattens a children prop into text. Slices are concatenated.
func Content(children any) string {
	switch c := children.(type) {
	case nil:
		return ""
	case string:
		return c
	case []string:
		return strings.Join(c, "")
	case []any:
		var b strings.Builder
		for _, item := range c {
			b.WriteString(Content(item))
		}
		return b.String()
	case fmt.Stringer:
		return c.String()
	}
	return fmt.Sprint(children)
}

func hidden(className string) bool {
	for _, class := range strings.Fields(className) {
		if class == "hidden" {
			return true
		}
	}
	return false
}

func hostProps(out cm.Rendered) cm.Props {
	props := out.Props.Clone()
	if out.ClassName != "" {
		props[cm.ClassProp] = out.ClassName
	}
	if len(out.Style) > 0 {
		props[cm.StyleProp] = out.Style
	}
	if out.Children != nil {
		props[cm.ChildrenProp] = out.Children
	}
	return props
}
