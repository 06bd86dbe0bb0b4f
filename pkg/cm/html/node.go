// Package html renders cm components as element trees and serialises them to HTML.
package html

import (
	"fmt"
)

// Node is a virtual DOM node. A node with an empty Tag is a text node holding Content.
type Node struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node
	Children   []*Node        // The child nodes
	Content    string         // Text content
}

// NewNode creates a Node.
func NewNode(tag string, attributes map[string]any, children ...*Node) *Node {
	return &Node{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
	}
}

// Text creates a text node.
func Text(s string) *Node {
	return &Node{Content: s}
}

// Attr returns the attribute value formatted as a string, or "" when absent.
func (n *Node) Attr(key string) string {
	if n == nil || n.Attributes == nil {
		return ""
	}
	v, ok := n.Attributes[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// HasAttr reports whether the attribute is set.
func (n *Node) HasAttr(key string) bool {
	if n == nil || n.Attributes == nil {
		return false
	}
	_, ok := n.Attributes[key]
	return ok
}

// TextContent concatenates the text of n and all its descendants.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	out := n.Content
	for _, c := range n.Children {
		out += c.TextContent()
	}
	return out
}

// children converts a children prop into nodes.
func children(v any) []*Node {
	switch c := v.(type) {
	case nil:
		return nil
	case *Node:
		if c == nil {
			return nil
		}
		return []*Node{c}
	case []*Node:
		return c
	case string:
		if c == "" {
			return nil
		}
		return []*Node{Text(c)}
	case []any:
		var out []*Node
		for _, item := range c {
			out = append(out, children(item)...)
		}
		return out
	case []string:
		out := make([]*Node, 0, len(c))
		for _, s := range c {
			out = append(out, Text(s))
		}
		return out
	case fmt.Stringer:
		return []*Node{Text(c.String())}
	}
	return []*Node{Text(fmt.Sprint(v))}
}
