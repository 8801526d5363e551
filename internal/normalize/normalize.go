// Package normalize derives the canonical comparison key for food and
// ingredient names. Stock matching, merge detection and suggestion
// matching all compare these keys, never the display names.
package normalize

import "strings"

func Name(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
