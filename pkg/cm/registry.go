package cm

import (
	"fmt"
	"sort"
	"sync"

	cmerrors "github.com/alexisbeaulieu97/classmate/pkg/errors"
)

// Factory builds variants components for one element.
type Factory interface {
	Variants(cfg VariantsConfig) *Component
}

// Registry maps element names to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for tag. Registering a tag twice is an error.
func (r *Registry) Register(tag string, f Factory) error {
	if f == nil {
		return cmerrors.NewRegistryError(tag, fmt.Errorf("factory is nil"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[tag]; exists {
		return cmerrors.NewRegistryError(tag, fmt.Errorf("factory already registered"))
	}

	r.factories[tag] = f
	return nil
}

// Lookup retrieves the factory for tag.
func (r *Registry) Lookup(tag string) (Factory, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[tag]
	return f, ok
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// DefaultFallbackTag is used by CreateVariantMap for unsupported elements.
const DefaultFallbackTag = "div"

// Elements lists the intrinsic elements preloaded into DefaultRegistry.
var Elements = []string{
	"a", "abbr", "address", "article", "aside", "audio", "b", "blockquote", "body", "button",
	"canvas", "caption", "cite", "code", "col", "colgroup", "dd", "details", "dfn", "dialog",
	"div", "dl", "dt", "em", "fieldset", "figcaption", "figure", "footer", "form", "h1", "h2",
	"h3", "h4", "h5", "h6", "header", "hr", "i", "iframe", "img", "input", "kbd", "label",
	"legend", "li", "main", "mark", "menu", "meter", "nav", "ol", "optgroup", "option",
	"output", "p", "picture", "pre", "progress", "q", "s", "samp", "section", "select",
	"small", "span", "strong", "sub", "summary", "sup", "table", "tbody", "td", "textarea",
	"tfoot", "th", "thead", "time", "tr", "u", "ul", "var", "video",
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared registry holding a Builder for every entry of Elements.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry()
		for _, el := range Elements {
			_ = r.Register(el, New(el))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// IsElement reports whether name is one of Elements.
func IsElement(name string) bool {
	_, ok := DefaultRegistry().Lookup(name)
	return ok
}
