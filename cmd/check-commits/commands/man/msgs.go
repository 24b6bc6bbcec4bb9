package man

// Message constants
const (
	MsgShort   = "Generate man pages"
	MsgLong    = "Generate man pages for check-commits and its subcommands into a directory."
	MsgFlagDir = "Directory to write the man pages to"
)
