package html

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML serialises n to w.
func WriteHTML(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	return xhtml.Render(w, toHTML(n))
}

// String serialises n and returns the markup.
func String(n *Node) (string, error) {
	var b strings.Builder
	if err := WriteHTML(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func toHTML(n *Node) *xhtml.Node {
	if n.Tag == "" {
		return &xhtml.Node{Type: xhtml.TextNode, Data: n.Content}
	}

	el := &xhtml.Node{
		Type:     xhtml.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     attributes(n.Attributes),
	}
	if n.Content != "" {
		el.AppendChild(&xhtml.Node{Type: xhtml.TextNode, Data: n.Content})
	}
	for _, c := range n.Children {
		if c != nil {
			el.AppendChild(toHTML(c))
		}
	}
	return el
}

// attributes emits class and style first, then the rest in key order. false, nil and function
// values are dropped; true becomes a boolean attribute.
func attributes(attrs map[string]any) []xhtml.Attribute {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k != "class" && k != "style" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	keys = append([]string{"class", "style"}, keys...)

	out := make([]xhtml.Attribute, 0, len(attrs))
	for _, k := range keys {
		v, ok := attrs[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case nil:
			continue
		case bool:
			if t {
				out = append(out, xhtml.Attribute{Key: k})
			}
			continue
		}
		if reflect.ValueOf(v).Kind() == reflect.Func {
			continue
		}
		out = append(out, xhtml.Attribute{Key: k, Val: fmt.Sprint(v)})
	}
	return out
}
