// Package namespace builds the flat template namespace from zPod data.
package namespace

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// Sanitize converts a component or setting name into a safe, lowercase,
// underscore-delimited token for use as a namespace key suffix: every
// character outside [A-Za-z0-9] becomes "_", leading and trailing
// underscores are trimmed, and the result is lowercased. Idempotent.
// All-symbol input reduces to the empty string.
func Sanitize(name string) string {
	s := nonAlnum.ReplaceAllString(name, "_")
	s = strings.Trim(s, "_")
	return strings.ToLower(s)
}
