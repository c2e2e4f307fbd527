package shared

import "strings"

// FirstNonEmpty evaluates an ordered list of candidate values and returns
// the first one that is non-blank after trimming. Field precedence rules
// (display order number, image URL, order date and similar chains) are
// expressed through this helper so the ordering is testable on its own.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// Accessor produces one candidate value in a fallback chain.
type Accessor func() string

// Resolve evaluates accessors in order and returns the first non-blank
// result. Accessors past the winning one are never invoked.
func Resolve(accessors ...Accessor) string {
	for _, get := range accessors {
		if v := strings.TrimSpace(get()); v != "" {
			return v
		}
	}
	return ""
}
