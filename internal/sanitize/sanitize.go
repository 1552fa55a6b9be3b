// Package sanitize validates user-supplied command arguments against a
// strict character allow-list before they are ever placed on a command
// line. Shell metacharacters are rejected categorically rather than
// escaped: the set below cannot express quoting, substitution, redirection
// or chaining, so anything that passes is inert even under a shell.
package sanitize

import "regexp"

// argPattern must match the entire candidate string. Partial matches are
// rejections, never truncations.
var argPattern = regexp.MustCompile(`^[A-Za-z0-9 .+=_/,-]*$`)

// ArgChecker validates free-text argument input.
type ArgChecker struct {
	pattern *regexp.Regexp
}

// NewArgChecker creates a new argument checker.
func NewArgChecker() *ArgChecker {
	return &ArgChecker{pattern: argPattern}
}

// Valid reports whether every character of s belongs to the allow-list.
// The empty string is valid: entries may legitimately take no arguments.
func (c *ArgChecker) Valid(s string) bool {
	return c.pattern.MatchString(s)
}
