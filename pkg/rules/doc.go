// Package rules loads and compiles the email blacklist rules.
//
// # Rule File Format
//
// One rule per line. Lines starting with `#` are comments and lines that are
// blank after trimming are skipped:
//
//	# block personal mail providers
//	*@hotmail.com
//	*@foxmail.com
//	1245@*
//
// # Pattern Conventions
//
// A rule is a literal string with one metacharacter:
//
//   - `*` - any sequence of characters, including none
//   - `.` - a literal dot
//
// Every other character is handed to the regexp engine as written, so a rule
// such as `a(b@x.com` does not compile. Such rules are reported and skipped.
//
// Compiled rules are case-insensitive and anchored at the start of the
// address only, so `bad@example` also matches `bad@example.com`.
package rules
