package genconfig

// Message constants
const (
	MsgShort   = "Print the effective configuration as TOML"
	MsgLong    = "Output the configuration check-commits would use, after applying defaults, config files and CHECK_COMMITS_* environment variables. Save it as .check-commits.toml to pin the settings for a repository."
	MsgExample = `  check-commits genconfig                          # Output to stdout
  check-commits genconfig > .check-commits.toml     # Pin settings for a repository
  check-commits genconfig --defaults                # Built-in defaults with comments`

	MsgFlagDefaults = "Print the built-in defaults with their comments instead of the effective configuration"
)
