package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/classmate/pkg/cm"
)

// ParseProps converts key=value pairs into props. "true" and "false" become booleans, integers
// become ints, "null" becomes nil and everything else stays a string. A bare key is true.
func ParseProps(pairs []string) (cm.Props, error) {
	props := make(cm.Props, len(pairs))
	for _, pair := range pairs {
		key, raw, hasValue := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid prop %q: expected key=value", pair)
		}
		if !hasValue {
			props[key] = true
			continue
		}
		props[key] = parseValue(raw)
	}
	return props, nil
}

func parseValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}
