package ui

import (
	"os"

	"github.com/arthur-debert/check-commits/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatText renders the human-readable report
	FormatText Format = iota
	// FormatGitHub renders key=value lines for CI output variables
	FormatGitHub
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatGitHub:
		return "github"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value.
// Only the exact names match; anything else selects the text format.
func ParseFormat(s string) Format {
	switch s {
	case "github":
		return FormatGitHub
	case "text":
		return FormatText
	default:
		logger := logging.GetLogger("ui")
		logger.Debug().
			Str("format", s).
			Msg("Unknown output format, using text")
		return FormatText
	}
}

// DetectColor decides whether the text report on output should be styled.
// mode is one of "always", "never" or "auto".
func DetectColor(output *os.File, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if output == nil {
		return false
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.NewOutput(output).ColorProfile() != termenv.Ascii
}
