package rules

import "regexp"

// CompiledRule is a rule translated into an anchored, case-insensitive pattern
type CompiledRule struct {
	// Raw is the rule line as it appeared in the rules file
	Raw string

	// Pattern is the compiled regular expression
	Pattern *regexp.Regexp
}

// Match reports whether the email matches the rule from its first character
func (r CompiledRule) Match(email string) bool {
	return r.Pattern.MatchString(email)
}
