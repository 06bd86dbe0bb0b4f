package html

import (
	"github.com/alexisbeaulieu97/classmate/pkg/cm"
)

// Component is an external renderable that can be wrapped and extended. It receives the
// forwarded props plus "class", "style" (a cm.StyleMap) and "children".
type Component func(props cm.Props) *Node

// Renderer turns cm components into nodes.
type Renderer struct {
	opts []cm.RenderOption
}

// NewRenderer returns a Renderer applying opts to every render.
func NewRenderer(opts ...cm.RenderOption) *Renderer {
	return &Renderer{opts: opts}
}

// Render runs the component pipeline and instantiates the host.
func (r *Renderer) Render(c *cm.Component, props cm.Props) *Node {
	return cm.Render(c, props, r.Host(), r.opts...)
}

// Host returns the host renderer used by Render.
func (r *Renderer) Host() cm.HostRenderer[*Node] {
	return func(out cm.Rendered) *Node {
		tag := out.Tag
		if name := tag.Name(); name != "" {
			return r.element(name, out)
		}

		switch h := tag.Renderable().(type) {
		case Component:
			return h(hostProps(out))
		case func(cm.Props) *Node:
			return h(hostProps(out))
		case *cm.Component:
			return r.Render(h, hostProps(out))
		}
		return nil
	}
}

func (r *Renderer) element(name string, out cm.Rendered) *Node {
	attrs := make(map[string]any, len(out.Props)+2)
	for k, v := range out.Props {
		attrs[k] = v
	}
	if out.ClassName != "" {
		attrs["class"] = out.ClassName
	}
	if css := out.Style.CSS(); css != "" {
		attrs["style"] = css
	}
	return NewNode(name, attrs, children(out.Children)...)
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
