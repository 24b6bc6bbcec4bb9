package config

// Color modes for the text report
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective configuration of a run
type Config struct {
	Output Output `koanf:"output" toml:"output"`
	GitHub GitHub `koanf:"github" toml:"github"`
}

// Output controls how the report is rendered
type Output struct {
	// Format is the report format used when --output is not given
	Format string `koanf:"format" toml:"format"`
	// Color is one of auto, always or never
	Color string `koanf:"color" toml:"color"`
}

// GitHub holds the markers of the github report
type GitHub struct {
	Bullet    string `koanf:"bullet" toml:"bullet"`
	Separator string `koanf:"separator" toml:"separator"`
}
