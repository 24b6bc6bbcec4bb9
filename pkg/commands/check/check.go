// Package check runs the validation pipeline: load, compile, match.
package check

import (
	"github.com/arthur-debert/check-commits/pkg/emails"
	"github.com/arthur-debert/check-commits/pkg/errors"
	"github.com/arthur-debert/check-commits/pkg/filesystem"
	"github.com/arthur-debert/check-commits/pkg/logging"
	"github.com/arthur-debert/check-commits/pkg/matchers"
	"github.com/arthur-debert/check-commits/pkg/rules"
)

// CheckEmailsOptions defines the options for the CheckEmails command.
type CheckEmailsOptions struct {
	// RulesPath is the path to the blacklist rules file.
	RulesPath string
	// EmailsPath is the path to the commit emails file.
	EmailsPath string
	// FileSystem to read from, defaults to the OS filesystem.
	FileSystem filesystem.FS
}

// CheckEmailsResult is the outcome of one validation run.
type CheckEmailsResult struct {
	// Violations are the offending emails, sorted ascending.
	Violations []string
	// RuleCount is the number of distinct rules read from the rules file.
	RuleCount int
	// EmailCount is the number of distinct emails checked.
	EmailCount int
	// InvalidRules holds one RULE_COMPILE error per rule that was skipped.
	InvalidRules []error
}

// HasViolations reports whether any email violated a rule.
func (r *CheckEmailsResult) HasViolations() bool {
	return len(r.Violations) > 0
}

// CheckEmails validates the emails file against the rules file.
//
// Unreadable inputs fail the run. Rules that do not compile are skipped and
// reported in the result.
func CheckEmails(opts CheckEmailsOptions) (*CheckEmailsResult, error) {
	log := logging.GetLogger("commands.check")
	log.Debug().Str("command", "CheckEmails").Msg("Executing command")
	defer logging.LogOperationStart(log, "CheckEmails")()

	if opts.RulesPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "rules path is required")
	}
	if opts.EmailsPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "emails path is required")
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	rawRules, err := rules.LoadRules(fsys, opts.RulesPath)
	if err != nil {
		return nil, err
	}

	commitEmails, err := emails.LoadEmails(fsys, opts.EmailsPath)
	if err != nil {
		return nil, err
	}

	compiled, invalid := rules.Compile(rawRules)
	violations := matchers.FindViolations(commitEmails, compiled)

	result := &CheckEmailsResult{
		Violations:   violations,
		RuleCount:    len(rawRules),
		EmailCount:   len(commitEmails),
		InvalidRules: invalid,
	}

	log.Info().
		Str("command", "CheckEmails").
		Int("rules", result.RuleCount).
		Int("invalidRules", len(invalid)).
		Int("emails", result.EmailCount).
		Int("violations", len(violations)).
		Msg("Command finished")

	return result, nil
}
