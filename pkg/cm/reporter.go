package cm

import "fmt"

// Reporter receives non-fatal advisories such as an element falling back to another factory.
type Reporter func(msg string)

// NopReporter discards every advisory.
func NopReporter(string) {}

func (r Reporter) warnf(format string, args ...any) {
	if r == nil {
		return
	}
	r(fmt.Sprintf(format, args...))
}
