package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/ntpeters/base16-template-converter/pkg/errors"
	"github.com/ntpeters/base16-template-converter/pkg/logging"
)

const (
	// ProjectFileName is looked up in the working directory
	ProjectFileName = ".b16convert.toml"
	// EnvPrefix prefixes environment overrides
	EnvPrefix = "B16CONVERT_"
)

// Config is the effective converter configuration
type Config struct {
	Convert ConvertConfig `koanf:"convert" toml:"convert"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
}

// ConvertConfig controls the conversion itself
type ConvertConfig struct {
	SourceExtension string `koanf:"source_extension" toml:"source_extension"`
	TargetExtension string `koanf:"target_extension" toml:"target_extension"`
	StripHeader     bool   `koanf:"strip_header" toml:"strip_header"`
	FileMode        string `koanf:"file_mode" toml:"file_mode"`
}

// OutputConfig controls what is printed
type OutputConfig struct {
	ShowResidual bool   `koanf:"show_residual" toml:"show_residual"`
	MaxResidual  int    `koanf:"max_residual" toml:"max_residual"`
	Color        string `koanf:"color" toml:"color"`
	Progress     bool   `koanf:"progress" toml:"progress"`
}

// LoadOptions selects the files layered over the defaults
type LoadOptions struct {
	// ProjectDir holds the optional project file. Defaults to ".".
	ProjectDir string
	// ConfigFile is an explicit file; it must exist when set.
	ConfigFile string
	// SkipUser ignores the XDG user file.
	SkipUser bool
}

// UserConfigPath returns the per-user configuration file location
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
}

// Default returns the embedded defaults
func Default() (*Config, error) {
	return Load(LoadOptions{SkipUser: true, ProjectDir: os.DevNull})
}

// Load merges every configuration layer into a Config
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file, 3. project file
	var optional []string
	if !opts.SkipUser {
		optional = append(optional, UserConfigPath())
	}
	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}
	optional = append(optional, filepath.Join(projectDir, ProjectFileName))

	for _, path := range optional {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 4. Explicit file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
	}

	// 5. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read environment")
	}

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

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps B16CONVERT_OUTPUT__MAX_RESIDUAL to output.max_residual
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func (c *Config) validate() error {
	for _, ext := range []*string{&c.Convert.SourceExtension, &c.Convert.TargetExtension} {
		if *ext != "" && !strings.HasPrefix(*ext, ".") {
			*ext = "." + *ext
		}
	}
	if c.Convert.TargetExtension == "" {
		return errors.New(errors.ErrConfigParse, "convert.target_extension must not be empty")
	}
	if c.Convert.TargetExtension == c.Convert.SourceExtension {
		return errors.Newf(errors.ErrConfigParse,
			"convert.target_extension %q must differ from convert.source_extension", c.Convert.TargetExtension)
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.Newf(errors.ErrConfigParse, "output.color must be auto, always or never, got %q", c.Output.Color)
	}
	if c.Output.MaxResidual < 0 {
		return errors.New(errors.ErrConfigParse, "output.max_residual must not be negative")
	}
	return nil
}

// Mode parses convert.file_mode
func (c *Config) Mode() (fs.FileMode, error) {
	v, err := strconv.ParseUint(c.Convert.FileMode, 8, 32)
	if err != nil || v > 0o777 {
		return 0, errors.Newf(errors.ErrConfigParse, "convert.file_mode %q is not an octal permission", c.Convert.FileMode)
	}
	return fs.FileMode(v), nil
}

// Marshal renders the configuration as TOML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}
