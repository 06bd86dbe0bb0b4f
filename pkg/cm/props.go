package cm

import (
	"fmt"
	"reflect"
	"strings"
)

// Reserved prop names. They are consumed by the render pipeline and never forwarded.
const (
	ChildrenProp  = "children"
	ClassProp     = "class"
	ClassNameProp = "className"
	StyleProp     = "style"
	// OmitProp is the one-time omission marker. It is always withheld.
	OmitProp = "__rcOmit"
)

// MarkerPrefix marks styling-only props. Props carrying it never reach the host.
const MarkerPrefix = "$"

// Props is the property bag passed to a component at render time.
type Props map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// With returns a copy of p with patch applied on top.
func (p Props) With(patch Props) Props {
	out := p.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// Has reports whether key is present, even with a nil value.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the prop formatted as a string, or "" when it is absent or nil.
func (p Props) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Bool reports whether the prop is truthy.
func (p Props) Bool(key string) bool {
	return Truthy(p[key])
}

// Truthy mirrors the loose truthiness used by class templates: nil, false, "", zero numbers and
// nil pointers are false, everything else is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int8:
		return t != 0
	case int16:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case uint:
		return t != 0
	case uint8:
		return t != 0
	case uint16:
		return t != 0
	case uint32:
		return t != 0
	case uint64:
		return t != 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// IsMarker reports whether name carries the marker prefix.
func IsMarker(name string) bool {
	return strings.HasPrefix(name, MarkerPrefix)
}

// ConvertProps moves ordinary props onto their marker counterparts, e.g. mirroring a wrapper's
// "size" prop to "$size" so it is consumed by styling instead of forwarded. Keys missing from
// props are ignored. The input is not modified.
func ConvertProps(props Props, mappings map[string]string) Props {
	out := props.Clone()
	for from, to := range mappings {
		v, ok := out[from]
		if !ok {
			continue
		}
		delete(out, from)
		out[to] = v
	}
	return out
}
