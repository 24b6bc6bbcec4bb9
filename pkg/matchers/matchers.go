// Package matchers tests addresses against compiled rules.
package matchers

import (
	"sort"

	"github.com/arthur-debert/check-commits/pkg/logging"
	"github.com/arthur-debert/check-commits/pkg/rules"
	"github.com/rs/zerolog"
)

// Matcher checks emails against a fixed set of compiled rules
type Matcher struct {
	rules  []rules.CompiledRule
	logger zerolog.Logger
}

// New creates a matcher over the given rules
func New(compiled []rules.CompiledRule) *Matcher {
	return &Matcher{
		rules:  compiled,
		logger: logging.GetLogger("matchers"),
	}
}

// MatchingRule returns the first rule matching email
func (m *Matcher) MatchingRule(email string) (string, bool) {
	for _, rule := range m.rules {
		if rule.Match(email) {
			return rule.Raw, true
		}
	}
	return "", false
}

// Matches reports whether any rule matches email
func (m *Matcher) Matches(email string) bool {
	_, ok := m.MatchingRule(email)
	return ok
}

// FindViolations returns the emails matched by at least one rule, sorted
// ascending. The result never contains an address absent from emails.
func (m *Matcher) FindViolations(emails []string) []string {
	violations := make([]string, 0)
	for _, email := range emails {
		rule, ok := m.MatchingRule(email)
		if !ok {
			continue
		}
		m.logger.Debug().
			Str("email", email).
			Str("rule", rule).
			Msg("Email matched rule")
		violations = append(violations, email)
	}

	sort.Strings(violations)

	m.logger.Info().
		Int("emails", len(emails)).
		Int("rules", len(m.rules)).
		Int("violations", len(violations)).
		Msg("Completed matching")

	return violations
}

// FindViolations is a convenience wrapper around New(compiled).FindViolations
func FindViolations(emails []string, compiled []rules.CompiledRule) []string {
	return New(compiled).FindViolations(emails)
}
