// Package config loads subriptext settings.
//
// Sources are applied in order, later ones winning: built-in defaults, a
// YAML file, a .env file, SUBRIPTEXT_* environment variables. Command line
// flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/FanLemon/Subtitle/internal/logging"
)

const (
	EnvPrefix         = "SUBRIPTEXT"
	EnvConfigPath     = "SUBRIPTEXT_CONFIG"
	DefaultConfigFile = "subriptext.yaml"
	DefaultDotEnvFile = ".env"

	DefaultLogLevel  = "info"
	DefaultLogFormat = logging.FormatConsole
	DefaultFileMode  = "0644"
)

type Config struct {
	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" envconfig:"LOG_FORMAT"`
	NoColor   bool   `yaml:"no_color" envconfig:"NO_COLOR"`

	// FileMode is the octal permission of written subtitle files.
	FileMode string `yaml:"file_mode" envconfig:"FILE_MODE"`

	FFmpegPath  string `yaml:"ffmpeg_path" envconfig:"FFMPEG_PATH"`
	FFprobePath string `yaml:"ffprobe_path" envconfig:"FFPROBE_PATH"`
}

func Default() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		FileMode:  DefaultFileMode,
	}
}

// Load builds the configuration. path names the YAML file; when empty,
// $SUBRIPTEXT_CONFIG is used, then subriptext.yaml if it exists. An
// explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultConfigFile
	}

	if err := cfg.mergeYAML(path, explicit); err != nil {
		return Config{}, err
	}
	if err := LoadDotEnv(DefaultDotEnvFile); err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", DefaultDotEnvFile, err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeYAML(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	// fields absent from the file keep their current values
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error. Variables already set are not overridden.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	c.FileMode = strings.TrimSpace(c.FileMode)
	if c.FileMode == "" {
		c.FileMode = DefaultFileMode
	}
}

func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q: use console or json", c.LogFormat)
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	return nil
}

// Mode parses FileMode.
func (c Config) Mode() (os.FileMode, error) {
	n, err := strconv.ParseUint(c.FileMode, 8, 32)
	if err != nil || n == 0 || n > 0o777 {
		return 0, fmt.Errorf("invalid file mode %q: expected octal permissions such as 0644", c.FileMode)
	}
	return os.FileMode(n), nil
}

// LoggingOptions maps the configuration onto logger options.
func (c Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level:   c.LogLevel,
		Format:  c.LogFormat,
		NoColor: c.NoColor,
	}
}
