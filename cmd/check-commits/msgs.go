package checkcommits

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Git commit email validator"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = "Generate a completion script for bash, zsh, fish or powershell and write it to stdout."

	// Version output
	MsgVersionFormat = "check-commits version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRules   = "Path to email blacklist file"
	MsgFlagEmails  = "Path to commit emails file"
	MsgFlagOutput  = "Output format (text|github)"
	MsgFlagNoColor = "Disable styling of the text report"
	MsgFlagConfig  = "Path to a TOML configuration file"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrCheckEmails  = "failed to check emails: %w"
	MsgErrRenderReport = "failed to render report: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)
