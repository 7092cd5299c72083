package codegen

import "strings"

// escaper rewrites every free-form string before it is interpolated into a
// generated string literal: backslashes are doubled first, quotes escaped,
// and control characters that Go's interpreted literals cannot carry raw
// (newline, carriage return, tab) are rewritten to their escape sequences.
// Parsing the emitted literal reproduces the original string exactly.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Escape prepares s for interpolation inside a generated double-quoted
// string literal.
func Escape(s string) string {
	return escaper.Replace(s)
}

// quote wraps s in double quotes after escaping it.
func quote(s string) string {
	return `"` + Escape(s) + `"`
}
