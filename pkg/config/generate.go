package config

import (
	"bytes"

	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# check-commits configuration
# Save as .check-commits.toml in the repository or as
# $XDG_CONFIG_HOME/check-commits/config.toml.

`

// GenerateConfigContent renders cfg as a TOML config file
func GenerateConfigContent(cfg *Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return "", err
	}

	return buf.String(), nil
}
