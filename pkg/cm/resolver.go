package cm

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"

	"github.com/alexisbeaulieu97/classmate/pkg/cm/classname"
)

// ConflictResolver merges generated classes with caller-supplied ones. For conflicting utility
// classes the last one wins, and incoming classes come last.
type ConflictResolver interface {
	Resolve(generated, incoming string) string
}

// ResolverFunc adapts a function to ConflictResolver.
type ResolverFunc func(generated, incoming string) string

// Resolve implements ConflictResolver.
func (f ResolverFunc) Resolve(generated, incoming string) string {
	return f(generated, incoming)
}

// TailwindResolver resolves Tailwind utility conflicts by class group.
var TailwindResolver ConflictResolver = ResolverFunc(func(generated, incoming string) string {
	return classname.Normalize(twmerge.Merge(generated, incoming))
})

// JoinResolver performs no conflict resolution and simply appends incoming classes.
var JoinResolver ConflictResolver = ResolverFunc(func(generated, incoming string) string {
	return classname.Join(generated, incoming)
})

// ResolverByName returns the resolver registered under name ("tailwind" or "join").
func ResolverByName(name string) (ConflictResolver, bool) {
	switch name {
	case "", "tailwind":
		return TailwindResolver, true
	case "join":
		return JoinResolver, true
	}
	return nil, false
}
