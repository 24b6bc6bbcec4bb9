// Package github renders the violation report as CI output variables.
//
// The report is one or two key=value lines:
//
//	has_violations=true
//	violations=• a@x.com%0A• b@x.com
//
// Entries are joined with a literal separator so consumers that only accept
// single-line values still receive every entry. Emails are not escaped.
package github

import (
	"fmt"
	"io"
	"strings"
)

// Defaults for the entry markers
const (
	DefaultBullet    = "• "
	DefaultSeparator = "%0A"
)

// Renderer writes the github report
type Renderer struct {
	output    io.Writer
	bullet    string
	separator string
}

// New creates a github renderer. Empty markers fall back to the defaults.
func New(output io.Writer, bullet, separator string) *Renderer {
	if bullet == "" {
		bullet = DefaultBullet
	}
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Renderer{
		output:    output,
		bullet:    bullet,
		separator: separator,
	}
}

// RenderViolations writes has_violations and, when true, the violations line
func (r *Renderer) RenderViolations(violations []string) error {
	if len(violations) == 0 {
		_, err := fmt.Fprintln(r.output, "has_violations=false")
		return err
	}

	entries := make([]string, 0, len(violations))
	for _, email := range violations {
		entries = append(entries, r.bullet+email)
	}

	if _, err := fmt.Fprintln(r.output, "has_violations=true"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.output, "violations=%s\n", strings.Join(entries, r.separator))
	return err
}
