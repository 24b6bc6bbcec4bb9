package rules

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/check-commits/pkg/errors"
	"github.com/arthur-debert/check-commits/pkg/logging"
	"github.com/rs/zerolog"
)

// Compiler turns raw rules into CompiledRules
type Compiler struct {
	logger zerolog.Logger
}

// NewCompiler creates a new rule compiler
func NewCompiler() *Compiler {
	return &Compiler{
		logger: logging.GetLogger("rules.compiler"),
	}
}

// Translate converts a wildcard rule into regexp syntax.
//
// The order matters: dots are escaped before `*` is expanded so the dot
// introduced by `.*` stays a metacharacter.
func Translate(raw string) string {
	pattern := strings.TrimSpace(raw)
	pattern = strings.ReplaceAll(pattern, ".", `\.`)
	pattern = strings.ReplaceAll(pattern, "*", ".*")
	return "(?i)^" + pattern
}

// Compile compiles every rule, in input order.
//
// Rules that fail to compile are logged, returned as RULE_COMPILE errors and
// left out of the result. Compile itself never fails.
func (c *Compiler) Compile(raw []string) ([]CompiledRule, []error) {
	compiled := make([]CompiledRule, 0, len(raw))
	var invalid []error

	for _, rule := range raw {
		re, err := regexp.Compile(Translate(rule))
		if err != nil {
			c.logger.Warn().
				Str("rule", rule).
				Err(err).
				Msgf("Invalid rule '%s'", rule)
			invalid = append(invalid, errors.Wrapf(err, errors.ErrRuleCompile,
				"invalid rule '%s'", rule).WithDetail("rule", rule))
			continue
		}
		compiled = append(compiled, CompiledRule{Raw: rule, Pattern: re})
	}

	c.logger.Debug().
		Int("compiled", len(compiled)).
		Int("invalid", len(invalid)).
		Msg("Compiled rules")

	return compiled, invalid
}

// Compile compiles rules with a default Compiler
func Compile(raw []string) ([]CompiledRule, []error) {
	return NewCompiler().Compile(raw)
}
