package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/check-commits/pkg/errors"
	"github.com/arthur-debert/check-commits/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "CHECK_COMMITS_"
	// ProjectConfigFile is looked up in the working directory
	ProjectConfigFile = ".check-commits.toml"
	// UserConfigFile is looked up in the user config directory
	UserConfigFile = "config.toml"
	// AppDirName is the directory used under the XDG config home
	AppDirName = "check-commits"
)

// LoadOptions selects where configuration files are searched
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set
	ConfigFile string
	// WorkDir is searched for the project config file, defaults to "."
	WorkDir string
	// UserConfigDir overrides $XDG_CONFIG_HOME/check-commits
	UserConfigDir string
	// Overrides are dotted keys applied last, e.g. from command line flags
	Overrides map[string]interface{}
}

// LoadConfiguration builds the effective configuration.
// Later layers win: defaults, user file, project file, explicit file, env,
// overrides.
func LoadConfiguration(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Optional user and project files
	for _, path := range optionalConfigPaths(opts) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", path).WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Explicit file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"config file %s not found", opts.ConfigFile).WithDetail("path", opts.ConfigFile)
		}
		if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", opts.ConfigFile).WithDetail("path", opts.ConfigFile)
		}
		logger.Debug().Str("path", opts.ConfigFile).Msg("Loaded explicit config file")
	}

	// 4. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 6. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 7. Post-process
	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func optionalConfigPaths(opts LoadOptions) []string {
	userDir := opts.UserConfigDir
	if userDir == "" {
		userDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	return []string{
		filepath.Join(userDir, UserConfigFile),
		filepath.Join(workDir, ProjectConfigFile),
	}
}

func postProcessConfig(cfg *Config) error {
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))

	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		cfg.Output.Color = ColorAuto
	default:
		return errors.Newf(errors.ErrConfigParse,
			"invalid output.color %q (want auto, always or never)", cfg.Output.Color)
	}

	return nil
}
