package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/classmate/pkg/cm"
	"github.com/alexisbeaulieu97/classmate/pkg/cm/html"
	"github.com/alexisbeaulieu97/classmate/pkg/cm/term"
)

// Preview is everything shown for one component and set of props.
type Preview struct {
	DisplayName string
	ClassName   string
	CSS         string
	Forwarded   string
	Markup      string
	Terminal    string
}

// BuildPreview renders c with props through both the terminal and HTML hosts. When no
// children are given, the display name is used as content.
func BuildPreview(c *cm.Component, props cm.Props, terminal *term.Renderer, markup *html.Renderer, opts ...cm.RenderOption) Preview {
	props = props.Clone()
	if _, ok := props[cm.ChildrenProp]; !ok {
		props[cm.ChildrenProp] = c.DisplayName()
	}

	prepared := c.Prepare(props, opts...)
	out := Preview{
		DisplayName: prepared.DisplayName,
		ClassName:   prepared.ClassName,
		CSS:         prepared.Style.CSS(),
		Forwarded:   formatProps(prepared.Props),
		Terminal:    terminal.Render(c, props),
	}

	if s, err := html.String(markup.Render(c, props)); err == nil {
		out.Markup = s
	} else {
		out.Markup = err.Error()
	}
	return out
}

func formatProps(props cm.Props) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
	}
	return strings.Join(parts, " ")
}
